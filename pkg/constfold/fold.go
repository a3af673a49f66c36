package constfold

import (
	"math"

	"github.com/na-bdan/matiec/pkg/absyn"
)

// Folder is the pass driver: created once, run once, then discarded —
// the counters below live on the instance, never on a package global.
type Folder struct {
	ErrorCount   int
	WarningFound bool
	Warnings     []string
}

// NewFolder constructs a Folder and performs the one-shot host-platform
// IEC 60559 capability check. The Go language definition already
// guarantees float64 is IEEE-754 binary64 on every platform the toolchain
// targets, so this probe is structurally unable to fail today; it is kept
// as a runtime check rather than assumed away, the same way matiec probes
// std::numeric_limits<real64_t>::is_iec559 at runtime instead of relying on
// a compile-time assertion.
func NewFolder() *Folder {
	f := &Folder{}
	if !hostIsIEC60559() {
		f.WarningFound = true
		f.Warnings = append(f.Warnings, "host float64 implementation is not IEC 60559/IEEE-754; overflow detection in the F64 domain may be imprecise")
	}
	return f
}

func hostIsIEC60559() bool {
	one := 1.0
	inf := one / 0.0
	nan := inf - inf
	return math.IsInf(inf, 1) && math.IsNaN(nan)
}

// Fold runs the constant-folding pass over the expression tree rooted at
// root, annotating every node it can determine a value for. It returns the
// pass's ErrorCount, which the pass itself never increments: an internal
// error panics rather than being counted or returning a partial result.
func (f *Folder) Fold(root absyn.Expr) int {
	foldExpr(root)
	return f.ErrorCount
}
