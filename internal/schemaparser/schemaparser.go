// Package schemaparser extracts the operation schema from the dialect package sources:
// the methods of the Builder, StandardOps and CustomOps interfaces, with their doc
// comments and signatures as strings.
//
// It is consumed by cmd/dialect_generator to emit the per-operation metadata table.
package schemaparser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
)

// Method represents a single method from the dialect's schema interfaces
// with all its signature information as strings.
type Method struct {
	// Name is the method name
	Name string
	// Comments is the method documentation comment, one entry per line.
	Comments []string
	// Parameters of the method.
	Parameters []NameAndType
	// Outputs of the method.
	// Outputs names may contain all empty strings if they are not defined.
	Outputs []NameAndType
}

type NameAndType struct {
	Name, Type string
}

// schemaInterfaces are the interfaces whose methods make up the operation schema.
var schemaInterfaces = []string{"Builder", "StandardOps", "CustomOps"}

// ParseSchema returns all methods defined in the dialect's schema interfaces,
// in declaration order.
func ParseSchema() ([]Method, error) {
	root, err := findModuleRoot()
	if err != nil {
		return nil, err
	}
	return ParseSchemaInDir(filepath.Join(root, "dialect"))
}

// ParseSchemaInDir parses the schema from the dialect sources in the given directory.
func ParseSchemaInDir(dir string) ([]Method, error) {
	fileSet := token.NewFileSet()
	var methods []Method

	builderFile, err := parser.ParseFile(fileSet, filepath.Join(dir, "builder.go"),
		nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	standardOpsFile, err := parser.ParseFile(fileSet, filepath.Join(dir, "standard_ops.go"),
		nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	// File contents cache
	fileCache := make(map[string][]byte)
	getFileContent := func(fileName string) []byte {
		fileContent, ok := fileCache[fileName]
		if !ok {
			fileContent = must.M1(os.ReadFile(fileName))
			fileCache[fileName] = fileContent
		}
		return fileContent
	}

	// Extract the text from a node
	getText := func(node ast.Node) string {
		pos := fileSet.Position(node.Pos())
		fileName := pos.Filename
		fileContent := getFileContent(fileName)
		endOffset := fileSet.Position(node.End()).Offset
		if endOffset > len(fileContent) {
			exceptions.Panicf("end offset out of bounds for file %s", fileName)
		}
		return string(fileContent[pos.Offset:endOffset])
	}

	extractMethods := func(file *ast.File) {
		ast.Inspect(file, func(n ast.Node) bool {
			typeSpec, ok := n.(*ast.TypeSpec)
			if !ok {
				return true
			}
			interfaceType, ok := typeSpec.Type.(*ast.InterfaceType)
			if !ok {
				return true
			}
			if slices.Index(schemaInterfaces, typeSpec.Name.Name) == -1 {
				return true
			}
			for _, method := range interfaceType.Methods.List {
				funcType, ok := method.Type.(*ast.FuncType)
				if !ok {
					// Embedded interface, its methods are extracted from its own declaration.
					continue
				}

				m := Method{
					Name: method.Names[0].Name,
				}

				if method.Doc != nil {
					m.Comments = make([]string, 0, len(method.Doc.List))
					for _, comment := range method.Doc.List {
						m.Comments = append(m.Comments, comment.Text)
					}
				}

				if funcType.Params != nil {
					for _, param := range funcType.Params.List {
						paramType := getText(param.Type)
						for _, name := range param.Names {
							m.Parameters = append(m.Parameters, NameAndType{Name: name.Name, Type: paramType})
						}
					}
				}

				if funcType.Results != nil {
					for _, result := range funcType.Results.List {
						resultType := getText(result.Type)
						if len(result.Names) == 0 {
							m.Outputs = append(m.Outputs, NameAndType{Type: resultType})
						} else {
							for _, name := range result.Names {
								m.Outputs = append(m.Outputs, NameAndType{Name: name.Name, Type: resultType})
							}
						}
					}
				}

				methods = append(methods, m)
			}
			return true
		})
	}

	extractMethods(builderFile)
	extractMethods(standardOpsFile)

	return methods, nil
}

// findModuleRoot returns the absolute path to the module root directory
// by walking up the directory tree looking for the go.mod file.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (no go.mod file found)")
		}
		dir = parent
	}
}
