// Package exitcode defines the stable exit-code taxonomy shared with calling
// automation and the error type that carries a run outcome to the top level.
package exitcode

import "fmt"

// Symbol is a symbolic termination reason.
type Symbol string

// Symbolic outcomes. Engine exit statuses are passed through verbatim and
// never appear here.
const (
	OK            Symbol = "ok"
	InvalidSystem Symbol = "invalid_system"
	InvalidValues Symbol = "invalid_values"
	ManifestError Symbol = "manifest_error"
	NoAnswerFile  Symbol = "no_answer_file"
	UnknownModule Symbol = "unknown_module"
	WrongHostname Symbol = "wrong_hostname"
)

// codes is the fixed symbol-to-status mapping. It is a published contract;
// changing a value is a breaking change for downstream automation.
var codes = map[Symbol]int{
	OK:            0,
	InvalidSystem: 20,
	InvalidValues: 21,
	ManifestError: 22,
	NoAnswerFile:  23,
	UnknownModule: 24,
	WrongHostname: 26,
}

// Translate maps code to a numeric exit status. Integers pass through
// unchanged. An unrecognized symbol or type is a programming error and
// panics; it must never be reachable for valid inputs.
func Translate(code any) int {
	switch v := code.(type) {
	case int:
		return v
	case Symbol:
		n, ok := codes[v]
		if !ok {
			panic(fmt.Sprintf("exitcode: unknown symbol %q", v))
		}
		return n
	default:
		panic(fmt.Sprintf("exitcode: cannot translate %T", code))
	}
}
