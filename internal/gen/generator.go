package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"maptuple/internal/plan"
)

// Generator renders a resolved plan into formatted Go source files.
type Generator struct {
	plan *plan.Plan
}

// NewGenerator creates a Generator for the given plan.
func NewGenerator(p *plan.Plan) *Generator {
	return &Generator{plan: p}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g. "tuple4.go"), relative to
	// the plan's output directory.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per arity in the plan.
func (g *Generator) Generate() ([]GeneratedFile, error) {
	var files []GeneratedFile

	for i := range g.plan.Arities {
		file, err := g.generateArity(&g.plan.Arities[i])
		if err != nil {
			return nil, fmt.Errorf("generating arity %d: %w", g.plan.Arities[i].N, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateArity renders the file for a single arity.
func (g *Generator) generateArity(ap *plan.ArityPlan) (*GeneratedFile, error) {
	data := g.buildTemplateData(ap)

	var buf bytes.Buffer
	if err := tupleTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.plan.Output != "" {
			_ = writeDebugUnformatted(g.plan.Output, data.Filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the tuple template. Everything is
// precomputed into strings so the template stays a plain layout.
type templateData struct {
	PackageName string
	Filename    string
	N           int
	TypeName    string
	// SelfType is the fully instantiated type, e.g. "Tuple4[T1, T2, T3, T4]".
	SelfType string
	// DeclParams is the declaration row, e.g. "T1, T2, T3, T4 any".
	DeclParams string
	// ParamList is the bare row, e.g. "T1, T2, T3, T4".
	ParamList string
	Fields    []fieldData
	CtorName  string
	// CtorArgs is the constructor parameter list, e.g. "v1 T1, v2 T2".
	CtorArgs string
	// CtorExpr is the constructor's composite literal.
	CtorExpr string
	// UnpackExpr lists the elements in order, e.g. "t.V1, t.V2".
	UnpackExpr string
	Maps       []mapData
}

type fieldData struct {
	Name  string
	Param string
}

// mapData holds the rendered pieces for one map function.
type mapData struct {
	FuncName  string
	Ordinal   string
	FieldName string
	// DeclParams is the function's type-parameter row, e.g. "T1, T2, R any".
	DeclParams string
	// InParam is the transformation's input type, e.g. "T2".
	InParam string
	// ResultType is the instantiated result type with R substituted at the
	// mapped position, e.g. "Tuple2[T1, R]".
	ResultType string
	// ResultExpr is the result composite literal: fn(t.X) at the mapped
	// position, a verbatim copy everywhere else.
	ResultExpr string
}

// buildTemplateData constructs the template data for one arity.
func (g *Generator) buildTemplateData(ap *plan.ArityPlan) *templateData {
	paramList := strings.Join(ap.TypeParams, ", ")

	data := &templateData{
		PackageName: g.plan.Package,
		Filename:    fmt.Sprintf("tuple%d.go", ap.N),
		N:           ap.N,
		TypeName:    ap.TypeName,
		SelfType:    fmt.Sprintf("%s[%s]", ap.TypeName, paramList),
		DeclParams:  paramList + " any",
		ParamList:   paramList,
		CtorName:    ap.CtorName,
	}

	ctorArgs := make([]string, 0, ap.N)
	ctorAssigns := make([]string, 0, ap.N)
	unpack := make([]string, 0, ap.N)

	for _, f := range ap.Fields {
		data.Fields = append(data.Fields, fieldData{Name: f.Name, Param: f.Param})
		ctorArgs = append(ctorArgs, f.Arg+" "+f.Param)
		ctorAssigns = append(ctorAssigns, f.Name+": "+f.Arg)
		unpack = append(unpack, "t."+f.Name)
	}

	data.CtorArgs = strings.Join(ctorArgs, ", ")
	data.CtorExpr = fmt.Sprintf("%s{%s}", data.SelfType, strings.Join(ctorAssigns, ", "))
	data.UnpackExpr = strings.Join(unpack, ", ")

	for _, mp := range ap.Maps {
		data.Maps = append(data.Maps, g.buildMapData(ap, &mp))
	}

	return data
}

// buildMapData constructs the rendered pieces for one (arity, position) pair.
func (g *Generator) buildMapData(ap *plan.ArityPlan, mp *plan.MapPlan) mapData {
	resultType := fmt.Sprintf("%s[%s]", ap.TypeName, strings.Join(mp.Results, ", "))

	assigns := make([]string, 0, ap.N)

	for i, f := range ap.Fields {
		if i == mp.Index-1 {
			assigns = append(assigns, fmt.Sprintf("%s: fn(t.%s)", f.Name, f.Name))
			continue
		}

		assigns = append(assigns, fmt.Sprintf("%s: t.%s", f.Name, f.Name))
	}

	return mapData{
		FuncName:   mp.FuncName,
		Ordinal:    mp.Ordinal,
		FieldName:  mp.Field.Name,
		DeclParams: strings.Join(ap.TypeParams, ", ") + ", R any",
		InParam:    mp.Field.Param,
		ResultType: resultType,
		ResultExpr: fmt.Sprintf("%s{%s}", resultType, strings.Join(assigns, ", ")),
	}
}

// Template for a single arity's file.

var tupleTemplate = template.Must(template.New("tuple").Parse(`// Code generated by tuplegen. DO NOT EDIT.

package {{.PackageName}}

// {{.TypeName}} is an ordered {{.N}}-tuple whose elements may have distinct types.
type {{.TypeName}}[{{.DeclParams}}] struct {
{{- range .Fields}}
	{{.Name}} {{.Param}}
{{- end}}
}

// {{.CtorName}} builds a {{.TypeName}} from its elements.
func {{.CtorName}}[{{.DeclParams}}]({{.CtorArgs}}) {{.SelfType}} {
	return {{.CtorExpr}}
}

// Unpack returns the elements in positional order.
func (t {{.SelfType}}) Unpack() ({{.ParamList}}) {
	return {{.UnpackExpr}}
}
{{range .Maps}}
// {{.FuncName}} replaces the {{.Ordinal}} element of t with fn(t.{{.FieldName}}), keeping
// every other element unchanged. fn is invoked exactly once; its result type
// becomes the element type at that position.
func {{.FuncName}}[{{.DeclParams}}](t {{$.SelfType}}, fn func({{.InParam}}) R) {{.ResultType}} {
	return {{.ResultExpr}}
}
{{end}}`))
