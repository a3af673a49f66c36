package constfold

import (
	"cmp"
	"fmt"
	"math"

	"github.com/na-bdan/matiec/pkg/absyn"
)

// foldExpr is the post-order visitor: it folds every child before
// combining their annotations, exactly as matiec's generated visit(*)
// family does one node kind at a time. The non-foldable leaves
// (bit-string, string and time literals, variable references, calls) are
// listed explicitly and produce no slots; any node type this switch does
// not list is an internal error and panics.
func foldExpr(node absyn.Expr) {
	switch n := node.(type) {
	case *absyn.IntegerLit:
		seedIntLiteral(n.Annotation(), n)
	case *absyn.HexIntegerLit:
		seedIntLiteral(n.Annotation(), n)
	case *absyn.OctalIntegerLit:
		seedIntLiteral(n.Annotation(), n)
	case *absyn.BinaryIntegerLit:
		seedIntLiteral(n.Annotation(), n)
	case *absyn.RealLit:
		foldRealLit(n)
	case *absyn.BitStringLit, *absyn.StringLit, *absyn.TimeLit:
		// Reserved/out-of-scope leaves: no slots produced.
	case *absyn.BoolTrueLit:
		n.Const.SetBoolConst(true)
	case *absyn.BoolFalseLit:
		n.Const.SetBoolConst(false)
	case *absyn.IntegerLiteralLit:
		foldExpr(n.Value)
		copyLiteralWrap(&n.Const, n.Value)
	case *absyn.RealLiteralLit:
		foldExpr(n.Value)
		copyLiteralWrap(&n.Const, n.Value)
	case *absyn.BooleanLiteralLit:
		foldExpr(n.Value)
		copyLiteralWrap(&n.Const, n.Value)
	case *absyn.VariableRef:
		// Folding variables is out of scope; the reference produces no slots.
	case *absyn.FunctionCall:
		for _, arg := range n.Args {
			foldExpr(arg)
		}
		// Folding calls is out of scope; the call node itself produces no slots.
	case *absyn.OrExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldOr(n)
	case *absyn.XorExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldXor(n)
	case *absyn.AndExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldAnd(n)
	case *absyn.EquExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldComparisonInto(&n.BinExpr, "=")
	case *absyn.NotEquExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldComparisonInto(&n.BinExpr, "<>")
	case *absyn.LtExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldComparisonInto(&n.BinExpr, "<")
	case *absyn.GtExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldComparisonInto(&n.BinExpr, ">")
	case *absyn.LeExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldComparisonInto(&n.BinExpr, "<=")
	case *absyn.GeExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldComparisonInto(&n.BinExpr, ">=")
	case *absyn.AddExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldAdd(n)
	case *absyn.SubExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldSub(n)
	case *absyn.MulExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldMul(n)
	case *absyn.DivExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldDiv(n)
	case *absyn.ModExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldMod(n)
	case *absyn.PowerExpr:
		foldExpr(n.L)
		foldExpr(n.R)
		foldPower(n)
	case *absyn.NegIntegerExpr:
		foldExpr(n.X)
		foldNegInteger(n)
	case *absyn.NegRealExpr:
		foldExpr(n.X)
		foldNegReal(n)
	case *absyn.NegExpr:
		foldExpr(n.X)
		foldNeg(n)
	case *absyn.NotExpr:
		foldExpr(n.X)
		foldNot(n)
	default:
		panic(fmt.Sprintf("constfold: unhandled expression type: %T", node))
	}
}

func seedIntLiteral(ann *absyn.ConstAnnotation, node absyn.Expr) {
	if v, overflow := ExtractI64(node); overflow {
		ann.SetI64Overflow()
	} else {
		ann.SetI64Const(v)
	}
	if v, overflow := ExtractU64(node); overflow {
		ann.SetU64Overflow()
	} else {
		ann.SetU64Const(v)
	}
}

func foldRealLit(n *absyn.RealLit) {
	if v, overflow := ExtractF64(n); overflow {
		n.Const.SetF64Overflow()
	} else {
		n.Const.SetF64Const(v)
	}
}

// copyLiteralWrap implements the "typed literal" rule: a <type>#<value>
// wrapper simply inherits whichever slots the wrapped literal produced.
// Slots are shared rather than copied by value since neither side mutates
// a slot once written — the tree is read-only with respect to these
// annotations once folding returns.
func copyLiteralWrap(dst *absyn.ConstAnnotation, wrapped absyn.Expr) {
	src := wrapped.Annotation()
	if src.Bool != nil {
		dst.Bool = src.Bool
	}
	if src.I64 != nil {
		dst.I64 = src.I64
	}
	if src.U64 != nil {
		dst.U64 = src.U64
	}
	if src.F64 != nil {
		dst.F64 = src.F64
	}
}

func setI64OrOverflow(ann *absyn.ConstAnnotation, v int64, overflow bool) {
	if overflow {
		ann.SetI64Overflow()
	} else {
		ann.SetI64Const(v)
	}
}

func setU64OrOverflow(ann *absyn.ConstAnnotation, v uint64, overflow bool) {
	if overflow {
		ann.SetU64Overflow()
	} else {
		ann.SetU64Const(v)
	}
}

func setF64OrOverflow(ann *absyn.ConstAnnotation, v float64) {
	if CheckOverflowF64(v) {
		ann.SetF64Overflow()
	} else {
		ann.SetF64Const(v)
	}
}

// --- logical/bitwise binary: OR, XOR, AND -----------------------------------

func foldOr(n *absyn.OrExpr) {
	l, r := n.L.Annotation(), n.R.Annotation()
	if l.BoolStatus() == absyn.Const && r.BoolStatus() == absyn.Const {
		n.Const.SetBoolConst(l.BoolValue() || r.BoolValue())
	}
	if l.U64Status() == absyn.Const && r.U64Status() == absyn.Const {
		n.Const.SetU64Const(l.U64Value() | r.U64Value())
	}
}

func foldXor(n *absyn.XorExpr) {
	l, r := n.L.Annotation(), n.R.Annotation()
	if l.BoolStatus() == absyn.Const && r.BoolStatus() == absyn.Const {
		n.Const.SetBoolConst(l.BoolValue() != r.BoolValue())
	}
	if l.U64Status() == absyn.Const && r.U64Status() == absyn.Const {
		n.Const.SetU64Const(l.U64Value() ^ r.U64Value())
	}
}

func foldAnd(n *absyn.AndExpr) {
	l, r := n.L.Annotation(), n.R.Annotation()
	if l.BoolStatus() == absyn.Const && r.BoolStatus() == absyn.Const {
		n.Const.SetBoolConst(l.BoolValue() && r.BoolValue())
	}
	if l.U64Status() == absyn.Const && r.U64Status() == absyn.Const {
		n.Const.SetU64Const(l.U64Value() & r.U64Value())
	}
}

// --- comparisons -------------------------------------------------------------

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareOp[T cmp.Ordered](op string, a, b T) bool {
	switch op {
	case "=":
		return a == b
	case "<>":
		return a != b
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	default:
		panic("constfold: unknown comparison operator " + op)
	}
}

// foldComparisonInto backs all six relational operators (=, <>, <, >, <=,
// >=): each is defined over all four domains and always produces a BOOL
// result, so every domain that has Const operands writes into the same
// single BOOL slot (matiec gets this for free via its DO_BINARY_OPER
// macro; here one shared function plays that role).
func foldComparisonInto(be *absyn.BinExpr, op string) {
	l, r := be.L.Annotation(), be.R.Annotation()
	if l.BoolStatus() == absyn.Const && r.BoolStatus() == absyn.Const {
		be.Const.SetBoolConst(compareOp(op, b2i(l.BoolValue()), b2i(r.BoolValue())))
	}
	if l.U64Status() == absyn.Const && r.U64Status() == absyn.Const {
		be.Const.SetBoolConst(compareOp(op, l.U64Value(), r.U64Value()))
	}
	if l.I64Status() == absyn.Const && r.I64Status() == absyn.Const {
		be.Const.SetBoolConst(compareOp(op, l.I64Value(), r.I64Value()))
	}
	if l.F64Status() == absyn.Const && r.F64Status() == absyn.Const {
		be.Const.SetBoolConst(compareOp(op, l.F64Value(), r.F64Value()))
	}
}

// --- arithmetic: +, -, * -----------------------------------------------------

func foldAdd(n *absyn.AddExpr) {
	l, r := n.L.Annotation(), n.R.Annotation()
	if l.U64Status() == absyn.Const && r.U64Status() == absyn.Const {
		a, b := l.U64Value(), r.U64Value()
		setU64OrOverflow(&n.Const, a+b, CheckOverflowU64Sum(a, b))
	}
	if l.I64Status() == absyn.Const && r.I64Status() == absyn.Const {
		a, b := l.I64Value(), r.I64Value()
		setI64OrOverflow(&n.Const, a+b, CheckOverflowI64Sum(a, b))
	}
	if l.F64Status() == absyn.Const && r.F64Status() == absyn.Const {
		setF64OrOverflow(&n.Const, l.F64Value()+r.F64Value())
	}
}

func foldSub(n *absyn.SubExpr) {
	l, r := n.L.Annotation(), n.R.Annotation()
	if l.U64Status() == absyn.Const && r.U64Status() == absyn.Const {
		a, b := l.U64Value(), r.U64Value()
		setU64OrOverflow(&n.Const, a-b, CheckOverflowU64Sub(a, b))
	}
	if l.I64Status() == absyn.Const && r.I64Status() == absyn.Const {
		a, b := l.I64Value(), r.I64Value()
		setI64OrOverflow(&n.Const, a-b, CheckOverflowI64Sub(a, b))
	}
	if l.F64Status() == absyn.Const && r.F64Status() == absyn.Const {
		setF64OrOverflow(&n.Const, l.F64Value()-r.F64Value())
	}
}

func foldMul(n *absyn.MulExpr) {
	l, r := n.L.Annotation(), n.R.Annotation()
	if l.U64Status() == absyn.Const && r.U64Status() == absyn.Const {
		a, b := l.U64Value(), r.U64Value()
		setU64OrOverflow(&n.Const, a*b, CheckOverflowU64Mul(a, b))
	}
	if l.I64Status() == absyn.Const && r.I64Status() == absyn.Const {
		a, b := l.I64Value(), r.I64Value()
		setI64OrOverflow(&n.Const, a*b, CheckOverflowI64Mul(a, b))
	}
	if l.F64Status() == absyn.Const && r.F64Status() == absyn.Const {
		setF64OrOverflow(&n.Const, l.F64Value()*r.F64Value())
	}
}

// --- division and modulo -----------------------------------------------------

// foldDiv always runs the overflow check before the division itself, since
// Go panics on an integer divide by zero exactly where C invokes UB.
func foldDiv(n *absyn.DivExpr) {
	l, r := n.L.Annotation(), n.R.Annotation()
	if l.U64Status() == absyn.Const && r.U64Status() == absyn.Const {
		a, b := l.U64Value(), r.U64Value()
		if CheckOverflowU64Div(a, b) {
			n.Const.SetU64Overflow()
		} else {
			n.Const.SetU64Const(a / b)
		}
	}
	if l.I64Status() == absyn.Const && r.I64Status() == absyn.Const {
		a, b := l.I64Value(), r.I64Value()
		if CheckOverflowI64Div(a, b) {
			n.Const.SetI64Overflow()
		} else {
			n.Const.SetI64Const(a / b)
		}
	}
	if l.F64Status() == absyn.Const && r.F64Status() == absyn.Const {
		setF64OrOverflow(&n.Const, l.F64Value()/r.F64Value())
	}
}

// foldMod's zero-divisor carve-out: unlike DIV, a zero right operand is
// CONST 0, not OVERFLOW.
func foldMod(n *absyn.ModExpr) {
	l, r := n.L.Annotation(), n.R.Annotation()
	if l.U64Status() == absyn.Const && r.U64Status() == absyn.Const {
		a, b := l.U64Value(), r.U64Value()
		if b == 0 {
			n.Const.SetU64Const(0)
		} else {
			n.Const.SetU64Const(a % b)
		}
	}
	if l.I64Status() == absyn.Const && r.I64Status() == absyn.Const {
		a, b := l.I64Value(), r.I64Value()
		switch {
		case b == 0:
			n.Const.SetI64Const(0)
		case CheckOverflowI64Mod(a, b):
			n.Const.SetI64Overflow()
		default:
			n.Const.SetI64Const(a % b)
		}
	}
}

// --- power --------------------------------------------------------------------

func foldPower(n *absyn.PowerExpr) {
	l, r := n.L.Annotation(), n.R.Annotation()
	if l.F64Status() != absyn.Const {
		return
	}
	base := l.F64Value()
	if r.I64Status() == absyn.Const {
		setF64OrOverflow(&n.Const, math.Pow(base, float64(r.I64Value())))
	}
	if r.U64Status() == absyn.Const {
		setF64OrOverflow(&n.Const, math.Pow(base, float64(r.U64Value())))
	}
}

// --- unary --------------------------------------------------------------------

// foldNegInteger handles the literal-specific round trip to MIN_I64: the
// only way a literal can fold to MIN_I64 is a NegIntegerExpr over an operand
// whose positive-lexeme I64 interpretation already overflowed but whose
// U64 interpretation equals -MIN_I64.
func foldNegInteger(n *absyn.NegIntegerExpr) {
	x := n.X.Annotation()
	switch x.I64Status() {
	case absyn.Const:
		n.Const.SetI64Const(-x.I64Value())
	case absyn.Overflow:
		if x.U64Status() == absyn.Const && x.U64Value() == uint64(maxI64)+1 {
			n.Const.SetI64Const(minI64)
		} else {
			n.Const.SetI64Overflow()
		}
		// A negative literal has no valid unsigned representation; mark U64
		// Overflow rather than leaving it absent (see DESIGN.md).
		n.Const.SetU64Overflow()
	}
}

func foldNegReal(n *absyn.NegRealExpr) {
	x := n.X.Annotation()
	if x.F64Status() == absyn.Const {
		setF64OrOverflow(&n.Const, -x.F64Value())
	}
}

func foldNeg(n *absyn.NegExpr) {
	x := n.X.Annotation()
	if x.I64Status() == absyn.Const {
		a := x.I64Value()
		if CheckOverflowI64Neg(a) {
			n.Const.SetI64Overflow()
		} else {
			n.Const.SetI64Const(-a)
		}
	}
	if x.F64Status() == absyn.Const {
		setF64OrOverflow(&n.Const, -x.F64Value())
	}
}

func foldNot(n *absyn.NotExpr) {
	x := n.X.Annotation()
	if x.BoolStatus() == absyn.Const {
		n.Const.SetBoolConst(!x.BoolValue())
	}
	if x.U64Status() == absyn.Const {
		n.Const.SetU64Const(^x.U64Value())
	}
}
