package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	".git":         true,
	"deployment":   true,
	"_examples":    true,
	".vscode":      true,
	".idea":        true,
	"tmp":          true,
	"testdata":     true,
	"node_modules": true,
}

const sourceHeader = "// Source: "

// go run ./deployment/ci/check_mocks
func main() {
	mocks, err := findMocks(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking tree: %v\n", err)
		os.Exit(1)
	}

	hasError := false
	for _, mock := range mocks {
		problems, err := checkMock(".", mock)
		if err != nil {
			fmt.Printf("ERROR: %s: %v\n", mock, err)
			hasError = true
			continue
		}
		for _, p := range problems {
			fmt.Printf("ERROR: %s: %s\n", mock, p)
			hasError = true
		}
	}

	if hasError {
		fmt.Println("\nMocks are out of date, run: go run ./deployment/ci/gen_mocks")
		os.Exit(1)
	}

	fmt.Printf("%d mocks in sync.\n", len(mocks))
}

// findMocks returns every mock_*.go under root, relative to it.
func findMocks(root string) ([]string, error) {
	var mocks []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		name := info.Name()
		if strings.HasPrefix(name, "mock_") && strings.HasSuffix(name, ".go") {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			mocks = append(mocks, rel)
		}
		return nil
	})
	sort.Strings(mocks)
	return mocks, err
}

// checkMock compares the methods of every interface in the mock's source file with
// the methods generated on its Mock<Name> type.
func checkMock(root, mock string) ([]string, error) {
	fset := token.NewFileSet()
	mockFile, err := parser.ParseFile(fset, filepath.Join(root, mock), nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	source := sourceOf(mockFile)
	if source == "" {
		return nil, fmt.Errorf("missing %q header", strings.TrimSpace(sourceHeader))
	}

	srcFile, err := parser.ParseFile(fset, filepath.Join(root, source), nil, 0)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", source, err)
	}

	if mockFile.Name.Name != srcFile.Name.Name {
		return []string{fmt.Sprintf("package %s does not match source package %s", mockFile.Name.Name, srcFile.Name.Name)}, nil
	}

	ifaces := interfaceMethods(srcFile)
	mocked := receiverMethods(mockFile)

	var problems []string
	for _, name := range sortedKeys(ifaces) {
		got, ok := mocked["Mock"+name]
		if !ok {
			problems = append(problems, fmt.Sprintf("no Mock%s for interface %s", name, name))
			continue
		}
		for method, arity := range ifaces[name] {
			n, ok := got[method]
			switch {
			case !ok:
				problems = append(problems, fmt.Sprintf("Mock%s is missing %s", name, method))
			case n != arity:
				problems = append(problems, fmt.Sprintf("Mock%s.%s takes %d params, interface takes %d", name, method, n, arity))
			}
		}
		for method := range got {
			if _, ok := ifaces[name][method]; !ok && method != "EXPECT" {
				problems = append(problems, fmt.Sprintf("Mock%s.%s is not on interface %s", name, method, name))
			}
		}
	}
	sort.Strings(problems)

	return problems, nil
}

func sourceOf(f *ast.File) string {
	for _, group := range f.Comments {
		for _, c := range group.List {
			if strings.HasPrefix(c.Text, sourceHeader) {
				return strings.TrimSpace(strings.TrimPrefix(c.Text, sourceHeader))
			}
		}
	}
	return ""
}

// interfaceMethods maps interface name to method name to parameter count.
func interfaceMethods(f *ast.File) map[string]map[string]int {
	out := make(map[string]map[string]int)
	ast.Inspect(f, func(n ast.Node) bool {
		spec, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		iface, ok := spec.Type.(*ast.InterfaceType)
		if !ok {
			return false
		}
		methods := make(map[string]int)
		for _, m := range iface.Methods.List {
			fn, ok := m.Type.(*ast.FuncType)
			if !ok {
				continue
			}
			for _, name := range m.Names {
				methods[name.Name] = countParams(fn.Params)
			}
		}
		out[spec.Name.Name] = methods
		return false
	})
	return out
}

// receiverMethods maps pointer receiver type to method name to parameter count.
func receiverMethods(f *ast.File) map[string]map[string]int {
	out := make(map[string]map[string]int)
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 {
			continue
		}
		star, ok := fn.Recv.List[0].Type.(*ast.StarExpr)
		if !ok {
			continue
		}
		ident, ok := star.X.(*ast.Ident)
		if !ok || strings.HasSuffix(ident.Name, "MockRecorder") {
			continue
		}
		if out[ident.Name] == nil {
			out[ident.Name] = make(map[string]int)
		}
		out[ident.Name][fn.Name.Name] = countParams(fn.Type.Params)
	}
	return out
}

func countParams(fields *ast.FieldList) int {
	if fields == nil {
		return 0
	}
	n := 0
	for _, field := range fields.List {
		if len(field.Names) == 0 {
			n++
			continue
		}
		n += len(field.Names)
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
