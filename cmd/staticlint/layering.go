package main

import (
	"go/ast"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// handlerPkgSuffix - пакеты HTTP слоя
const handlerPkgSuffix = "internal/handler"

// forbiddenImports - префиксы путей, недоступных HTTP слою
var forbiddenImports = []string{
	"database/sql",
	"github.com/jackc/pgx",
	"github.com/Popolzen/wishlists/internal/repository/database",
	"github.com/Popolzen/wishlists/internal/config/db",
}

// testOnlyImports разрешены только в _test.go
var testOnlyImports = []string{
	"github.com/Popolzen/wishlists/internal/repository/memory",
}

// LayeringAnalyzer запрещает HTTP слою обращаться к БД напрямую
var LayeringAnalyzer = &analysis.Analyzer{
	Name: "layering",
	Doc:  "запрещает импорт драйверов БД и конкретных хранилищ в internal/handler",
	Run:  runLayering,
}

func runLayering(pass *analysis.Pass) (any, error) {
	path := strings.TrimSuffix(pass.Pkg.Path(), "_test")
	if !strings.HasSuffix(path, handlerPkgSuffix) {
		return nil, nil
	}

	for _, file := range pass.Files {
		isTest := strings.HasSuffix(pass.Fset.File(file.Pos()).Name(), "_test.go")
		for _, spec := range file.Imports {
			checkImport(pass, spec, isTest)
		}
	}
	return nil, nil
}

func checkImport(pass *analysis.Pass, spec *ast.ImportSpec, isTest bool) {
	imported, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return
	}

	if hasPrefix(imported, forbiddenImports) {
		pass.Reportf(spec.Pos(), "импорт %s в HTTP слое запрещён, используйте repository.Repository", imported)
		return
	}
	if !isTest && hasPrefix(imported, testOnlyImports) {
		pass.Reportf(spec.Pos(), "импорт %s допустим только в тестах", imported)
	}
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
