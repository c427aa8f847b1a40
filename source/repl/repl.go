package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/lmorg/readline"

	"github.com/guilload/kaleidoscope/source/err"
	"github.com/guilload/kaleidoscope/source/session"
	"github.com/guilload/kaleidoscope/source/text"
)

// Start runs the interactive loop, feeding each line to the session and
// printing the value of every top-level expression. The session is shared
// across lines, so definitions and operators persist.
func Start(s *session.Session, out io.Writer) {
	rline := readline.NewInstance()
	for {
		rline.SetPrompt(text.PROMPT)
		line, e := rline.Readline()
		if e != nil {
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if line == "quit" {
			break
		}

		results, evalErr := s.Do("REPL input", line)
		for _, result := range results {
			fmt.Fprintln(out, result)
		}
		if evalErr != nil {
			fmt.Fprint(out, text.Red(err.GetList(err.Errors{evalErr})))
		}
	}
}
