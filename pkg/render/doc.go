// Package render draws expression trees as node-link diagrams.
//
// # Overview
//
// [ToDOT] turns a [formula.Node] tree into Graphviz DOT source: operators
// become circles, input numbers become rounded boxes, and edges run from an
// operator to its operands, left operand first. [RenderSVG] lays the DOT out
// in-process and returns SVG bytes.
//
//	tree, err := f.Tree()
//	dot := render.ToDOT(tree, render.Options{Values: true})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Options
//
//   - Values: label operator nodes with the value of their subexpression
//   - Positions: label leaves with their input position
//
// # Dependencies
//
// SVG output uses [github.com/goccy/go-graphviz], which runs Graphviz as
// WebAssembly. Nothing needs to be installed on the host.
//
// [formula.Node]: github.com/matzehuels/reckon/pkg/formula
package render
