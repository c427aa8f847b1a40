package text

// A bunch of text utilities to help in generating pretty and meaningful
// prompts, banners, and error messages.

import (
	"strings"

	"github.com/fatih/color"
)

const (
	VERSION = "0.2.0"
	BULLET  = "  ▪ "
	PROMPT  = "→ "
	INDENT  = "  "
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func Red(s string) string {
	return red(s)
}

func Green(s string) string {
	return green(s)
}

func Cyan(s string) string {
	return cyan(s)
}

func Yellow(s string) string {
	return yellow(s)
}

func Emph(s string) string {
	return "'" + s + "'"
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 1 {
		padding = ","
	}
	titleText := " Kaleidoscope" + padding + " version " + VERSION + " "
	gem := cyan("◆")
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	logoString := "\n" +
		leftMargin + "╔" + bar + gem + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + gem + bar + "╝\n\n"
	return logoString
}
