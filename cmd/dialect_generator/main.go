// dialect_generator emits the dialect's gen_op_defs.go file: one OpDef entry per
// operation declared in the Builder, StandardOps and CustomOps interfaces.
//
// Operands, attributes and result counts are derived from the method signatures,
// and traits from the classification sets below. It is meant to be run from the
// dialect directory, usually via `go generate`.
package main

import (
	"bytes"
	"cmp"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path"
	"slices"
	"strings"
	"text/template"
	"unicode"

	"github.com/gomlx/exceptions"
	"github.com/gomlir/gomlir/internal/schemaparser"
	"github.com/gomlir/gomlir/types"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	// methodsExcluded are interface methods that do not describe an operation.
	methodsExcluded = types.SetWith("Name", "OpShape")

	// commutativeOps are the binary operations whose operands can be swapped
	// without changing the result.
	commutativeOps = types.SetWith(
		"Add", "Mul", "Max", "Min", "Equal", "NotEqual", "LogicalAnd", "LogicalOr")

	// booleanResultOps always produce Bool results, whatever the operand dtype.
	booleanResultOps = types.SetWith(
		"Equal", "NotEqual", "GreaterOrEqual", "GreaterThan", "LessOrEqual", "LessThan",
		"LogicalAnd", "LogicalOr")

	// typePreservingOps are the unary operations whose result has the exact
	// shape and dtype of their operand.
	typePreservingOps = types.SetWith(
		"Abs", "Ceil", "Exp", "Floor", "Log", "LogicalNot", "Logistic", "Neg",
		"Reverse", "Round", "Rsqrt", "Sign", "Sqrt", "Tanh")
)

// attrKindForType maps the Go type of a non-operand parameter to the AttrKind
// that carries it in the operation's attribute list.
var attrKindForType = map[string]string{
	"int":                  "AttrInt",
	"float64":              "AttrFloat",
	"bool":                 "AttrBool",
	"string":               "AttrString",
	"[]int":                "AttrIntList",
	"...int":               "AttrIntList",
	"[][2]int":             "AttrIntPairList",
	"dtypes.DType":         "AttrDType",
	"shapes.Shape":         "AttrShape",
	"ConvolveAxesConfig":   "AttrAxesConfig",
	"PoolAxesConfig":       "AttrAxesConfig",
	"[]PadAxis":            "AttrPadList",
	"...PadAxis":           "AttrPadList",
	"ComputationSignature": "AttrSignature",
	"any":                  "AttrValue",
}

// opDefInfo holds one operation's metadata, with the operands, attributes and
// traits already rendered as Go literals for the template.
type opDefInfo struct {
	Name       string // method name, e.g. "MaxPoolWithArgmax".
	Mnemonic   string
	Operands   string // rendered []OperandSpec literal, empty if none.
	Attrs      string // rendered []AttrSpec literal, empty if none.
	NumResults int
	Traits     string // rendered types.SetWith(...) call.
}

// buildOpDefInfo converts one schema method into its opDefInfo.
func buildOpDefInfo(method schemaparser.Method) *opDefInfo {
	info := &opDefInfo{
		Name:     method.Name,
		Mnemonic: "lite." + toSnakeCase(method.Name),
	}

	params := method.Parameters
	if method.Name == "Constant" {
		// Constant carries its flat data and dimensions packed as a single value.
		params = []schemaparser.NameAndType{{Name: "value", Type: "any"}}
	}

	var operands, attrs []string
	for _, param := range params {
		switch param.Type {
		case "Op":
			kind := "OperandTensor"
			if param.Name == "tuple" {
				// The only tuple-valued operand in the schema is GetTupleElement's input.
				kind = "OperandTuple"
			}
			operands = append(operands, fmt.Sprintf("{Name: %q, Kind: %s}", param.Name, kind))
		case "[]Op", "...Op":
			operands = append(operands, fmt.Sprintf("{Name: %q, Kind: OperandVariadic}", param.Name))
		default:
			kind, ok := attrKindForType[param.Type]
			if !ok {
				exceptions.Panicf("method %s: no AttrKind registered for parameter %s of type %q",
					method.Name, param.Name, param.Type)
			}
			attrs = append(attrs, fmt.Sprintf("{Name: %q, Kind: %s}", param.Name, kind))
		}
	}
	info.Operands = renderSpecList("OperandSpec", operands)
	info.Attrs = renderSpecList("AttrSpec", attrs)

	for _, output := range method.Outputs {
		switch output.Type {
		case "error":
			// Not a result.
		case "Op":
			info.NumResults++
		case "[]Op":
			// The number of results matches the number of operands.
			info.NumResults = -1
		default:
			exceptions.Panicf("method %s: unexpected output type %q", method.Name, output.Type)
		}
		if info.NumResults == -1 {
			break
		}
	}

	traits := []string{"TraitNoSideEffect"}
	if commutativeOps.Has(method.Name) {
		traits = append(traits, "TraitCommutative")
	}
	if typePreservingOps.Has(method.Name) {
		traits = append(traits, "TraitSameOperandsAndResultType")
	}
	if booleanResultOps.Has(method.Name) {
		traits = append(traits, "TraitResultIsBoolean")
	}
	info.Traits = fmt.Sprintf("types.SetWith(%s)", strings.Join(traits, ", "))
	return info
}

// renderSpecList renders the entries as a []OperandSpec or []AttrSpec literal.
// Lists with up to two entries stay on one line.
func renderSpecList(elemType string, entries []string) string {
	if len(entries) == 0 {
		return ""
	}
	if len(entries) <= 2 {
		return fmt.Sprintf("[]%s{%s}", elemType, strings.Join(entries, ", "))
	}
	return fmt.Sprintf("[]%s{\n%s,\n}", elemType, strings.Join(entries, ",\n"))
}

// toSnakeCase converts a method name like "MaxPoolWithArgmax" to
// "max_pool_with_argmax".
func toSnakeCase(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// sortGroup keeps Parameter and Constant leading the table; everything else is
// sorted by name after them.
func sortGroup(name string) int {
	switch name {
	case "Parameter":
		return 0
	case "Constant":
		return 1
	default:
		return 2
	}
}

const opDefsFile = "gen_op_defs.go"

var opDefsTemplate = template.Must(template.New(opDefsFile).Parse(`// Code generated by "dialect_generator". DO NOT EDIT.

package dialect

import "github.com/gomlir/gomlir/types"

func init() {
{{- range .}}
	registerOpDef(OpDef{
		Type:     OpType{{.Name}},
		Mnemonic: "{{.Mnemonic}}",
{{- if .Operands}}
		Operands: {{.Operands}},
{{- end}}
{{- if .Attrs}}
		Attrs: {{.Attrs}},
{{- end}}
		NumResults: {{.NumResults}},
		Traits:     {{.Traits}},
	})
{{- end}}
}
`))

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	curDir := must.M1(os.Getwd())
	methods := must.M1(schemaparser.ParseSchemaInDir(curDir))

	var defs []*opDefInfo
	for _, method := range methods {
		if methodsExcluded.Has(method.Name) {
			continue
		}
		def := buildOpDefInfo(method)
		klog.V(1).Infof("%s -> %s: %d operand(s), results=%d", method.Name, def.Mnemonic,
			strings.Count(def.Operands, "{Name:"), def.NumResults)
		defs = append(defs, def)
	}
	slices.SortFunc(defs, func(a, b *opDefInfo) int {
		return cmp.Or(cmp.Compare(sortGroup(a.Name), sortGroup(b.Name)),
			strings.Compare(a.Name, b.Name))
	})

	var buf bytes.Buffer
	must.M(opDefsTemplate.Execute(&buf, defs))
	src := must.M1(format.Source(buf.Bytes()))

	fileName := path.Join(curDir, opDefsFile)
	must.M(os.WriteFile(fileName, src, 0644))
	fmt.Printf("✅ dialect_generator:\tsuccessfully generated %s\n", fileName)
}
