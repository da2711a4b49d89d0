// Package feedkind flags raw string literals used where a model.FeedKind is
// expected. Feed ordering ties break on the kind value, so a typo'd literal
// silently reorders the feed instead of failing to compile.
package feedkind

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

const kindTypeName = "FeedKind"

var Analyzer = &analysis.Analyzer{
	Name: "feedkind",
	Doc:  "reports string literals assigned or compared to FeedKind values; use the FeedKind constants",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.AssignStmt:
				checkAssign(pass, node)
			case *ast.BinaryExpr:
				checkCompare(pass, node)
			}
			return true
		})
	}
	return nil, nil
}

func checkAssign(pass *analysis.Pass, assign *ast.AssignStmt) {
	for i, lhs := range assign.Lhs {
		if i >= len(assign.Rhs) {
			break
		}
		if isKindType(pass, lhs) && isStringLiteral(assign.Rhs[i]) {
			pass.Reportf(assign.Rhs[i].Pos(),
				"FeedKind assigned a string literal; use a FeedKind constant")
		}
	}
}

func checkCompare(pass *analysis.Pass, expr *ast.BinaryExpr) {
	if expr.Op != token.EQL && expr.Op != token.NEQ {
		return
	}
	if isKindType(pass, expr.X) && isStringLiteral(expr.Y) {
		pass.Reportf(expr.Y.Pos(),
			"FeedKind compared to a string literal; use a FeedKind constant")
	}
	if isKindType(pass, expr.Y) && isStringLiteral(expr.X) {
		pass.Reportf(expr.X.Pos(),
			"FeedKind compared to a string literal; use a FeedKind constant")
	}
}

func isKindType(pass *analysis.Pass, expr ast.Expr) bool {
	t := pass.TypesInfo.TypeOf(expr)
	if t == nil {
		return false
	}
	named, ok := t.(*types.Named)
	return ok && named.Obj().Name() == kindTypeName
}

func isStringLiteral(expr ast.Expr) bool {
	lit, ok := expr.(*ast.BasicLit)
	return ok && lit.Kind == token.STRING
}
