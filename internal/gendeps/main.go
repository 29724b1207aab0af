// Command gendeps generates the fixed-arity dependency group types
// (Dependencies2 through Dependencies16) and their resolved reference forms.
// The groups are mechanical expansions of the same shape, so they are
// generated rather than maintained by hand.
//
// Run it from the repository root via go generate (see dependency.go).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
)

const minArity, maxArity = 2, 16

type edge struct {
	Index int
	// Indices of the edges resolved before this one, whose references must be
	// released when this edge fails.
	Held []int
}

type group struct {
	N int
	// The type parameter list, e.g. "T0, T1".
	Params string
	Edges  []edge
}

var tmpl = template.Must(template.New("deps").Parse(`// Code generated by gendeps. DO NOT EDIT.

package incremental
{{range .}}
// Dependencies{{.N}} bundles {{.N}} edges resolved together as the input of a derived
// node. Edges resolve in declaration order and their dirtiness is OR-folded.
type Dependencies{{.N}}[{{.Params}} Value] struct {
{{- range .Edges}}
	d{{.Index}} *Dependency[T{{.Index}}]
{{- end}}
}

// NewDependencies{{.N}} bundles the given edges in declaration order.
func NewDependencies{{.N}}[{{.Params}} Value]({{range .Edges}}{{if .Index}}, {{end}}d{{.Index}} *Dependency[T{{.Index}}]{{end}}) *Dependencies{{.N}}[{{.Params}}] {
	return &Dependencies{{.N}}[{{.Params}}]{ {{- range .Edges}}{{if .Index}}, {{end}}d{{.Index}}: d{{.Index}}{{end}}}
}

// Resolve resolves every edge in order. If an edge fails, references acquired
// so far are released and the group aborts; fingerprints already observed by
// earlier edges stay recorded and are re-observed on the next pass.
func (d *Dependencies{{.N}}[{{.Params}}]) Resolve(v Visitor) (DepRef{{.N}}[{{.Params}}], error) {
	v.TouchDependencyGroup("Dependencies{{.N}}")
{{- $g := .}}
{{- range .Edges}}
	r{{.Index}}, err := d.d{{.Index}}.Resolve(v)
	if err != nil {
{{- range .Held}}
		r{{.}}.Release()
{{- end}}
		return DepRef{{$g.N}}[{{$g.Params}}]{}, err
	}
{{- end}}
	return DepRef{{.N}}[{{.Params}}]{ {{- range .Edges}}{{if .Index}}, {{end}}D{{.Index}}: r{{.Index}}{{end}}}, nil
}

// DepRef{{.N}} is the resolved form of Dependencies{{.N}}.
type DepRef{{.N}}[{{.Params}} Value] struct {
{{- range .Edges}}
	D{{.Index}} DepRef[T{{.Index}}]
{{- end}}
}

// IsDirty reports whether any edge observed a changed fingerprint.
func (r DepRef{{.N}}[{{.Params}}]) IsDirty() bool {
	return {{range .Edges}}{{if .Index}} || {{end}}r.D{{.Index}}.IsDirty(){{end}}
}

// Release returns every borrowed child reference.
func (r DepRef{{.N}}[{{.Params}}]) Release() {
{{- range .Edges}}
	r.D{{.Index}}.Release()
{{- end}}
}
{{end}}`))

func main() {
	out := flag.String("out", "dependencies.go", "output file")
	flag.Parse()

	var groups []group
	for n := minArity; n <= maxArity; n++ {
		g := group{N: n}
		for i := 0; i < n; i++ {
			if i > 0 {
				g.Params += ", "
			}
			g.Params += fmt.Sprintf("T%d", i)
			held := make([]int, i)
			for j := range held {
				held[j] = j
			}
			g.Edges = append(g.Edges, edge{Index: i, Held: held})
		}
		groups = append(groups, g)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, groups); err != nil {
		log.Fatalf("execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format generated source: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
