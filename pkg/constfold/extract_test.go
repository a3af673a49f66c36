package constfold

import (
	"testing"

	"github.com/na-bdan/matiec/pkg/absyn"
)

func TestExtractI64(t *testing.T) {
	tests := []struct {
		name     string
		node     absyn.Expr
		want     int64
		overflow bool
	}{
		{"decimal", &absyn.IntegerLit{NumLit: absyn.NumLit{Text: "44"}}, 44, false},
		{"decimal with separators", &absyn.IntegerLit{NumLit: absyn.NumLit{Text: "1_000_000"}}, 1000000, false},
		{"hex", &absyn.HexIntegerLit{NumLit: absyn.NumLit{Text: "16#FF"}}, 255, false},
		{"octal", &absyn.OctalIntegerLit{NumLit: absyn.NumLit{Text: "8#17"}}, 15, false},
		{"binary", &absyn.BinaryIntegerLit{NumLit: absyn.NumLit{Text: "2#1010"}}, 10, false},
		{"max i64 fits", &absyn.IntegerLit{NumLit: absyn.NumLit{Text: "9223372036854775807"}}, 9223372036854775807, false},
		{"max i64 plus 1 overflows", &absyn.IntegerLit{NumLit: absyn.NumLit{Text: "9223372036854775808"}}, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, overflow := ExtractI64(tc.node)
			if overflow != tc.overflow {
				t.Fatalf("overflow = %v, want %v", overflow, tc.overflow)
			}
			if !overflow && got != tc.want {
				t.Fatalf("value = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestExtractU64(t *testing.T) {
	tests := []struct {
		name     string
		node     absyn.Expr
		want     uint64
		overflow bool
	}{
		{"decimal", &absyn.IntegerLit{NumLit: absyn.NumLit{Text: "44"}}, 44, false},
		{"min_i64 magnitude fits u64", &absyn.IntegerLit{NumLit: absyn.NumLit{Text: "9223372036854775808"}}, 9223372036854775808, false},
		{"max u64 fits", &absyn.IntegerLit{NumLit: absyn.NumLit{Text: "18446744073709551615"}}, 18446744073709551615, false},
		{"overflow", &absyn.IntegerLit{NumLit: absyn.NumLit{Text: "18446744073709551616"}}, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, overflow := ExtractU64(tc.node)
			if overflow != tc.overflow {
				t.Fatalf("overflow = %v, want %v", overflow, tc.overflow)
			}
			if !overflow && got != tc.want {
				t.Fatalf("value = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestExtractF64(t *testing.T) {
	node := &absyn.RealLit{NumLit: absyn.NumLit{Text: "22.2"}}
	v, overflow := ExtractF64(node)
	if overflow {
		t.Fatalf("unexpected overflow")
	}
	if v != 22.2 {
		t.Fatalf("value = %v, want 22.2", v)
	}
}

func TestExtractI64InvalidLexemePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on lexically invalid literal")
		}
	}()
	ExtractI64(&absyn.IntegerLit{NumLit: absyn.NumLit{Text: "12x34"}})
}
