package constfold

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/na-bdan/matiec/pkg/absyn"
)

// slotExpectation mirrors one domain's row in testdata/scenarios.yaml:
// "status" is one of absent/undefined/const/overflow, "value" only
// meaningful when status is const.
type slotExpectation struct {
	Status string  `yaml:"status"`
	Value  float64 `yaml:"value"`
}

type boolSlotExpectation struct {
	Status string `yaml:"status"`
	Value  bool   `yaml:"value"`
}

type scenarioExpectation struct {
	I64  slotExpectation     `yaml:"i64"`
	U64  slotExpectation     `yaml:"u64"`
	F64  slotExpectation     `yaml:"f64"`
	Bool boolSlotExpectation `yaml:"bool"`
}

type scenario struct {
	Name   string               `yaml:"name"`
	Expr   string               `yaml:"expr"`
	Expect scenarioExpectation `yaml:"expect"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

// intLit and realLit are tiny builders so the tree-construction code below
// reads close to the expression text it represents.
func intLit(text string) *absyn.IntegerLit   { return &absyn.IntegerLit{NumLit: absyn.NumLit{Text: text}} }
func hexLit(text string) *absyn.HexIntegerLit {
	return &absyn.HexIntegerLit{NumLit: absyn.NumLit{Text: text}}
}
func realLit(text string) *absyn.RealLit { return &absyn.RealLit{NumLit: absyn.NumLit{Text: text}} }

// builders maps each scenario's "name" key to the absyn tree it represents.
// The YAML fixture owns the expected annotations; the tree shape itself
// stays Go, mirroring how the parser's own fixtures keep grammar
// productions in Go and expected token streams in the YAML payload.
var builders = map[string]func() absyn.Expr{
	"add_2_3": func() absyn.Expr {
		return &absyn.AddExpr{BinExpr: absyn.BinExpr{L: intLit("2"), R: intLit("3")}}
	},
	"sub_real": func() absyn.Expr {
		return &absyn.SubExpr{BinExpr: absyn.BinExpr{L: realLit("22.2"), R: realLit("5.0")}}
	},
	"add_i64_overflow": func() absyn.Expr {
		return &absyn.AddExpr{BinExpr: absyn.BinExpr{L: intLit("9223372036854775807"), R: intLit("1")}}
	},
	"div_zero_int": func() absyn.Expr {
		return &absyn.DivExpr{BinExpr: absyn.BinExpr{L: intLit("1"), R: intLit("0")}}
	},
	"mod_zero": func() absyn.Expr {
		return &absyn.ModExpr{BinExpr: absyn.BinExpr{L: intLit("7"), R: intLit("0")}}
	},
	"div_zero_float": func() absyn.Expr {
		return &absyn.DivExpr{BinExpr: absyn.BinExpr{L: realLit("1.0"), R: realLit("0.0")}}
	},
	"bool_and": func() absyn.Expr {
		return &absyn.AndExpr{BinExpr: absyn.BinExpr{L: &absyn.BoolTrueLit{}, R: &absyn.BoolFalseLit{}}}
	},
	"hex_or": func() absyn.Expr {
		return &absyn.OrExpr{BinExpr: absyn.BinExpr{L: hexLit("16#FF"), R: hexLit("16#0F")}}
	},
	"power": func() absyn.Expr {
		return &absyn.PowerExpr{BinExpr: absyn.BinExpr{L: realLit("2.0"), R: intLit("10")}}
	},
	"neg_min_i64": func() absyn.Expr {
		return &absyn.NegIntegerExpr{UnExpr: absyn.UnExpr{X: intLit("9223372036854775808")}}
	},
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("reading testdata/scenarios.yaml: %v", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatalf("unmarshaling testdata/scenarios.yaml: %v", err)
	}
	return file.Scenarios
}

func assertSlot(t *testing.T, domain string, want slotExpectation, status absyn.ConstStatus, value float64) {
	t.Helper()
	switch want.Status {
	case "absent", "undefined":
		if status != absyn.Undefined {
			t.Errorf("%s: status = %v, want Undefined/Absent", domain, status)
		}
	case "const":
		if status != absyn.Const {
			t.Errorf("%s: status = %v, want Const", domain, status)
			return
		}
		if value != want.Value {
			t.Errorf("%s: value = %v, want %v", domain, value, want.Value)
		}
	case "overflow":
		if status != absyn.Overflow {
			t.Errorf("%s: status = %v, want Overflow", domain, status)
		}
	default:
		t.Fatalf("%s: unknown expected status %q in fixture", domain, want.Status)
	}
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			build, ok := builders[sc.Name]
			if !ok {
				t.Fatalf("no tree builder registered for scenario %q (%s)", sc.Name, sc.Expr)
			}
			root := build()
			f := NewFolder()
			if errCount := f.Fold(root); errCount != 0 {
				t.Fatalf("Fold returned %d errors", errCount)
			}

			ann := root.Annotation()
			assertSlot(t, "i64", sc.Expect.I64, ann.I64Status(), float64(ann.I64Value()))
			assertSlot(t, "u64", sc.Expect.U64, ann.U64Status(), float64(ann.U64Value()))
			assertSlot(t, "f64", sc.Expect.F64, ann.F64Status(), ann.F64Value())

			switch want := sc.Expect.Bool; want.Status {
			case "absent", "undefined":
				if ann.BoolStatus() != absyn.Undefined {
					t.Errorf("bool: status = %v, want Undefined/Absent", ann.BoolStatus())
				}
			case "const":
				if ann.BoolStatus() != absyn.Const || ann.BoolValue() != want.Value {
					t.Errorf("bool: got (%v, %v), want (const, %v)", ann.BoolStatus(), ann.BoolValue(), want.Value)
				}
			case "overflow":
				if ann.BoolStatus() != absyn.Overflow {
					t.Errorf("bool: status = %v, want Overflow", ann.BoolStatus())
				}
			default:
				t.Fatalf("bool: unknown expected status %q in fixture", want.Status)
			}
		})
	}
}
