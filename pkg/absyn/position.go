// Package absyn defines the abstract syntax tree that the constant-folding
// pass (pkg/constfold) walks. Lexing and parsing that would produce this
// tree from IEC 61131-3 source text are out of scope for this module; the
// node kinds below exist to make that contract concrete so the pass has
// something to visit and tests have something to build by hand.
package absyn

import "fmt"

// Position records where a symbol came from in the source text. It mirrors
// matiec's symbol_c location fields (first_file, first_line, first_column,
// last_line, last_column); the folding pass itself never emits per-node
// diagnostics and does not read Position at all (its one-time
// platform-capability warning carries no source location).
type Position struct {
	File        string
	FirstLine   int
	FirstColumn int
	LastLine    int
	LastColumn  int
}

func (p Position) String() string {
	if p.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d-%d..%d-%d", p.File, p.FirstLine, p.FirstColumn, p.LastLine, p.LastColumn)
}
