// Package constfold implements the constant-folding pass: a post-order
// visitor over pkg/absyn trees that annotates every expression whose value
// is statically determinable, across all four numeric domains at once.
package constfold

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/na-bdan/matiec/pkg/absyn"
)

// stripSeparators removes the cosmetic digit-separator underscores from a
// literal's lexeme text. "16#FF_FF" and "1_000" both need this before any
// base-specific parse.
func stripSeparators(text string) string {
	if !strings.Contains(text, "_") {
		return text
	}
	return strings.ReplaceAll(text, "_", "")
}

// literalBase returns the numeric base and the digit substring (with the
// "16#"/"8#"/"2#" prefix, if any, already removed) for a literal node.
// Decimal integers and reals carry no prefix and use base 10.
func literalBase(node absyn.Expr) (base int, digits string) {
	switch n := node.(type) {
	case *absyn.HexIntegerLit:
		return 16, cutPrefix(n.Text, "16#")
	case *absyn.OctalIntegerLit:
		return 8, cutPrefix(n.Text, "8#")
	case *absyn.BinaryIntegerLit:
		return 2, cutPrefix(n.Text, "2#")
	case *absyn.IntegerLit:
		return 10, n.Text
	case *absyn.RealLit:
		return 10, n.Text
	default:
		panic("constfold: literalBase called on non-literal node")
	}
}

func cutPrefix(s, prefix string) string {
	if rest, ok := strings.CutPrefix(s, prefix); ok {
		return rest
	}
	return s
}

// ExtractI64 parses a literal node's text as a signed 64-bit two's
// complement value, using the base implied by the node's literal kind. The
// bool return is true iff the magnitude does not fit in int64 — the literal
// is always written as an unsigned digit string (the parser hands unary
// minus to the AST as a separate NegIntegerExpr node, never as a '-' inside
// the lexeme), so overflow here means "too large in magnitude to be a
// positive int64", i.e. u > MaxInt64, not merely too large for uint64.
func ExtractI64(node absyn.Expr) (int64, bool) {
	base, digits := literalBase(node)
	text := stripSeparators(digits)

	u, err := strconv.ParseUint(text, base, 64)
	if err == nil {
		if u > math.MaxInt64 {
			return 0, true
		}
		return int64(u), false
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, true
	}
	panic("constfold: extract_i64 on lexically invalid literal: " + text)
}

// ExtractU64 parses a literal node's text as an unsigned 64-bit value.
func ExtractU64(node absyn.Expr) (uint64, bool) {
	base, digits := literalBase(node)
	text := stripSeparators(digits)

	u, err := strconv.ParseUint(text, base, 64)
	if err == nil {
		return u, false
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, true
	}
	panic("constfold: extract_u64 on lexically invalid literal: " + text)
}

// ExtractF64 parses a real literal's text as a 64-bit IEEE-754 double.
func ExtractF64(node absyn.Expr) (float64, bool) {
	_, digits := literalBase(node)
	text := stripSeparators(digits)

	f, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return f, false
	}
	if errors.Is(err, strconv.ErrRange) {
		return f, true
	}
	panic("constfold: extract_f64 on lexically invalid literal: " + text)
}
