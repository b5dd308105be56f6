package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/reckon/pkg/formula"
	"github.com/matzehuels/reckon/pkg/observability"
)

// Options configures diagram generation.
type Options struct {
	// Values adds the subexpression value under each operator.
	Values bool

	// Positions adds the input position under each number.
	Positions bool
}

// ToDOT converts an expression tree to Graphviz DOT. Nodes are named n0,
// n1, ... in pre-order, so the root is always n0.
func ToDOT[N formula.Number[N]](root *formula.Node[N], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=20, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	id := 0
	var visit func(n *formula.Node[N]) string
	visit = func(n *formula.Node[N]) string {
		name := "n" + strconv.Itoa(id)
		id++
		fmt.Fprintf(&buf, "  %s [%s];\n", name, strings.Join(fmtAttrs(n, opts), ", "))
		if n.IsLeaf() {
			return name
		}
		left := visit(n.Left)
		right := visit(n.Right)
		edges = append(edges,
			fmt.Sprintf("  %s -> %s [taillabel=\"L\", labelfontsize=10];", name, left),
			fmt.Sprintf("  %s -> %s [taillabel=\"R\", labelfontsize=10];", name, right))
		return name
	}
	if root != nil {
		visit(root)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs[N formula.Number[N]](n *formula.Node[N], opts Options) []string {
	if n.IsLeaf() {
		label := n.Value.String()
		if opts.Positions {
			label += fmt.Sprintf("\n#%d", n.Index)
		}
		return []string{fmt.Sprintf("label=%q", label), "shape=box", "style=\"rounded,filled\""}
	}
	label := n.Op.Symbol()
	if opts.Values {
		label += "\n= " + n.Value.String()
	}
	return []string{fmt.Sprintf("label=%q", label), "shape=circle", "fillcolor=lightgrey"}
}

// RenderSVG lays out DOT source with Graphviz and returns the SVG.
func RenderSVG(ctx context.Context, dot string) (svg []byte, err error) {
	hooks := observability.Render()
	start := time.Now()
	hooks.OnRenderStart(ctx, "svg")
	defer func() {
		hooks.OnRenderComplete(ctx, "svg", len(svg), time.Since(start), err)
	}()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based <svg> header with one
// whose viewBox starts at the origin, so the diagram scales in a browser.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
