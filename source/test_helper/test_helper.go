package test_helper

import (
	"testing"

	"github.com/guilload/kaleidoscope/source/err"
	"github.com/guilload/kaleidoscope/source/session"
	"github.com/guilload/kaleidoscope/source/settings"
	"github.com/guilload/kaleidoscope/source/text"
)

// Auxiliary types and functions for testing the parser and evaluator.

type TestItem struct {
	Input string
	Want  string
}

// RunTest runs each test against a fresh session, so operator registrations
// made by one test can't leak into the next.
func RunTest(t *testing.T, tests []TestItem, F func(s *session.Session, input string) (string, *err.Error)) {
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		s := session.New()
		got, e := F(s, test.Input)
		if e != nil {
			println(text.Red(test.Input))
			println("There were errors processing the line: \n" + err.GetList(err.Errors{e}))
		}
		if test.Want != got {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.Input, test.Want, got)
		}
	}
}
