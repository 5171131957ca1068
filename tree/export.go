package tree

import (
	"sort"
	"strings"

	"github.com/stratzilla/id3-decision-tree/pkg/errors"
)

// ExportMapping renders the fitted tree as a single-line, brace-delimited
// structure that exposes the node/child mapping verbatim:
//
//	{Outlook: {overcast: yes, rain: {Wind: {strong: no, weak: yes}}, sunny: {Humidity: {high: no, normal: yes}}}}
//
// Children are rendered in sorted value order so the output is
// deterministic.
func (c *ID3Classifier) ExportMapping() (string, error) {
	if !c.state.IsFitted() {
		return "", errors.NewNotFittedError("ID3Classifier", "ExportMapping")
	}
	var sb strings.Builder
	writeMapping(&sb, c.root)
	return sb.String(), nil
}

func writeMapping(sb *strings.Builder, n *node) {
	if n.isLeaf() {
		sb.WriteString(n.label)
		return
	}
	sb.WriteString("{")
	sb.WriteString(n.feature)
	sb.WriteString(": {")
	for i, v := range sortedValues(n) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v)
		sb.WriteString(": ")
		writeMapping(sb, n.children[v])
	}
	sb.WriteString("}}")
}

// ExportText renders the fitted tree as a human-readable nested dump with
// two spaces of indentation per tree depth. Feature lines alternate with
// value lines; a leaf's label is printed one level below its value:
//
//	Outlook
//	  overcast
//	    yes
//	  rain
//	    Wind
//	      ...
func (c *ID3Classifier) ExportText() (string, error) {
	if !c.state.IsFitted() {
		return "", errors.NewNotFittedError("ID3Classifier", "ExportText")
	}
	var sb strings.Builder
	writeText(&sb, c.root, 0)
	return sb.String(), nil
}

func writeText(sb *strings.Builder, n *node, indent int) {
	if n.isLeaf() {
		writeLine(sb, indent, n.label)
		return
	}
	writeLine(sb, indent, n.feature)
	for _, v := range sortedValues(n) {
		writeLine(sb, indent+1, v)
		writeText(sb, n.children[v], indent+2)
	}
}

func writeLine(sb *strings.Builder, indent int, s string) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(s)
	sb.WriteString("\n")
}

func sortedValues(n *node) []string {
	values := make([]string, 0, len(n.children))
	for v := range n.children {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
