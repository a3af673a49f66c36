package main

import "github.com/na-bdan/matiec/pkg/absyn"

// scenario pairs a human-readable description with a builder that
// constructs the absyn tree it describes. These mirror the worked
// examples in the fold pass's own acceptance table; pkg/constfold's test
// suite drives the same shapes from testdata/scenarios.yaml.
type scenario struct {
	describe string
	build    func() absyn.Expr
}

func intLit(text string) *absyn.IntegerLit {
	return &absyn.IntegerLit{NumLit: absyn.NumLit{Text: text}}
}

func hexLit(text string) *absyn.HexIntegerLit {
	return &absyn.HexIntegerLit{NumLit: absyn.NumLit{Text: text}}
}

func realLit(text string) *absyn.RealLit {
	return &absyn.RealLit{NumLit: absyn.NumLit{Text: text}}
}

var scenarios = map[string]scenario{
	"add": {
		describe: "2 + 3",
		build: func() absyn.Expr {
			return &absyn.AddExpr{BinExpr: absyn.BinExpr{L: intLit("2"), R: intLit("3")}}
		},
	},
	"sub-real": {
		describe: "22.2 - 5.0",
		build: func() absyn.Expr {
			return &absyn.SubExpr{BinExpr: absyn.BinExpr{L: realLit("22.2"), R: realLit("5.0")}}
		},
	},
	"add-overflow": {
		describe: "9223372036854775807 + 1",
		build: func() absyn.Expr {
			return &absyn.AddExpr{BinExpr: absyn.BinExpr{L: intLit("9223372036854775807"), R: intLit("1")}}
		},
	},
	"div-zero": {
		describe: "1 / 0",
		build: func() absyn.Expr {
			return &absyn.DivExpr{BinExpr: absyn.BinExpr{L: intLit("1"), R: intLit("0")}}
		},
	},
	"mod-zero": {
		describe: "7 MOD 0",
		build: func() absyn.Expr {
			return &absyn.ModExpr{BinExpr: absyn.BinExpr{L: intLit("7"), R: intLit("0")}}
		},
	},
	"div-zero-real": {
		describe: "1.0 / 0.0",
		build: func() absyn.Expr {
			return &absyn.DivExpr{BinExpr: absyn.BinExpr{L: realLit("1.0"), R: realLit("0.0")}}
		},
	},
	"bool-and": {
		describe: "TRUE AND FALSE",
		build: func() absyn.Expr {
			return &absyn.AndExpr{BinExpr: absyn.BinExpr{L: &absyn.BoolTrueLit{}, R: &absyn.BoolFalseLit{}}}
		},
	},
	"hex-or": {
		describe: "16#FF OR 16#0F",
		build: func() absyn.Expr {
			return &absyn.OrExpr{BinExpr: absyn.BinExpr{L: hexLit("16#FF"), R: hexLit("16#0F")}}
		},
	},
	"power": {
		describe: "2.0 ** 10",
		build: func() absyn.Expr {
			return &absyn.PowerExpr{BinExpr: absyn.BinExpr{L: realLit("2.0"), R: intLit("10")}}
		},
	},
	"neg-min-i64": {
		describe: "-9223372036854775808",
		build: func() absyn.Expr {
			return &absyn.NegIntegerExpr{UnExpr: absyn.UnExpr{X: intLit("9223372036854775808")}}
		},
	},
}
