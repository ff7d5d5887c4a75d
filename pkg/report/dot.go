package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts cross-category averages to a Graphviz digraph. Each category
// is a node; each (source, target) pair becomes an edge labeled with the
// average number of target-category neighbors per source node.
func ToDOT(m map[string]map[string]float64, precision int) string {
	var buf bytes.Buffer
	buf.WriteString("digraph categories {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	seen := make(map[string]bool)
	for src, row := range m {
		seen[src] = true
		for dst := range row {
			seen[dst] = true
		}
	}
	for _, c := range sortedKeys(seen) {
		fmt.Fprintf(&buf, "  %s [label=%s];\n", dotQuote(c), dotQuote(displayCategory(c)))
	}

	buf.WriteString("\n")
	for _, src := range sortedKeys(m) {
		for _, dst := range sortedKeys(m[src]) {
			fmt.Fprintf(&buf, "  %s -> %s [label=%s];\n",
				dotQuote(src), dotQuote(dst), dotQuote(formatFloat(m[src][dst], precision)))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotQuote returns s as a DOT double-quoted string.
func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}

// RenderSVG lays out a DOT graph with Graphviz and returns the SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	return buf.Bytes(), nil
}
