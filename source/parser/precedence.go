package parser

// Bounds on the precedence a user-defined binary operator may declare.
const (
	MinPrecedence = 1
	MaxPrecedence = 100
)

// A PrecedenceTable maps an operator symbol to its binding strength: higher
// binds tighter. There is one table per parsing session. It outlives every
// individual top-level parse, because a 'binary' definition parsed as item N
// must change how item N+1 parses, and so it is threaded by pointer into
// every parser rather than reconstructed.
type PrecedenceTable map[string]int

// The built-in operators. Note that '1 = 2 < 3' parses as '1 = (2 < 3)',
// and so on down the table.
func NewPrecedenceTable() *PrecedenceTable {
	pt := PrecedenceTable{
		"=":  2,
		"<":  10,
		"<=": 10,
		">":  10,
		">=": 10,
		"+":  20,
		"-":  20,
		"*":  40,
		"/":  40,
	}
	return &pt
}

// Precedence returns -1 for anything not in the table, which is what makes
// the climbing loop in parseBinopRight terminate on non-operators.
func (pt *PrecedenceTable) Precedence(op string) int {
	if prec, ok := (*pt)[op]; ok {
		return prec
	}
	return -1
}

// Add inserts or overwrites an entry. Precedences outside [1, 100] are the
// parser's to reject before it ever calls this.
func (pt *PrecedenceTable) Add(op string, prec int) bool {
	if prec < MinPrecedence || prec > MaxPrecedence {
		return false
	}
	(*pt)[op] = prec
	return true
}
