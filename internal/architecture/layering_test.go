package architecture_test

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePrefix = "tempo/internal/modules/"

var layers = []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"}

// Import direction between layers is one-way: domain knows nothing,
// services know ports and domain, usecases add services, adapters sit
// at the edge. Modules talk to each other through port/in and dto only.
func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()

	var violations []string
	fset := token.NewFileSet()
	err := filepath.WalkDir(filepath.Join("..", "modules"), func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module, layer := classify(slash)
		if module == "" || layer == "" {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			target := strings.Trim(imp.Path.Value, `"`)
			if !strings.Contains(target, modulePrefix) {
				continue
			}
			if reason := checkImport(module, layer, target); reason != "" {
				violations = append(violations, fmt.Sprintf("%s (%s) imports %s: %s", slash, layer, target, reason))
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
	for _, v := range violations {
		t.Error(v)
	}
}

func classify(path string) (module, layer string) {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			module = parts[i+1]
			break
		}
	}
	for _, l := range layers {
		if strings.Contains(path, "/"+l+"/") {
			layer = l
			break
		}
	}
	return module, layer
}

func importedLayer(target string) string {
	for _, l := range layers {
		if strings.Contains(target, "/"+l+"/") || strings.HasSuffix(target, "/"+l) {
			return l
		}
	}
	return ""
}

func checkImport(module, layer, target string) string {
	targetLayer := importedLayer(target)
	sameModule := strings.Contains(target, modulePrefix+module+"/")

	if !sameModule {
		switch targetLayer {
		case "port/in", "dto":
			return ""
		case "service", "usecase", "adapter/in", "adapter/out":
			return "cross-module access must go through port/in or dto"
		}
	}

	switch layer {
	case "adapter/in":
		if targetLayer != "port/in" && targetLayer != "dto" {
			return "inbound adapters see only port/in and dto"
		}
	case "usecase":
		if targetLayer == "adapter/in" || targetLayer == "adapter/out" {
			return "usecases must not reach into adapters"
		}
	case "service":
		if targetLayer == "adapter/in" || targetLayer == "adapter/out" || targetLayer == "usecase" {
			return "services depend on ports and domain only"
		}
	case "domain":
		if targetLayer != "domain" && targetLayer != "" {
			return "domain stays free of outer layers"
		}
	}
	return ""
}
