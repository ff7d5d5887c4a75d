package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/copurchase/pkg/stats"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func writeText(w io.Writer, r *Report, precision int) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Source"), r.Source)
	fmt.Fprintf(&b, "%s\n\n", dimStyle.Render(fmt.Sprintf(
		"%d records, %d nodes (%d reconciled), %d catalog entries, %d categories",
		r.Records, r.Raw.Nodes, r.Reconciled.Nodes, r.Raw.CatalogEntries, r.Raw.Categories)))

	for _, name := range r.Statistics {
		st, ok := stats.Lookup(name)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(st.Title), dimStyle.Render("("+st.Input.String()+")"))
		b.WriteString(statisticTable(st.Name, r.Summary, precision))
		b.WriteString("\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
}

func statisticTable(name string, s *stats.Summary, precision int) string {
	switch name {
	case stats.NameCategoryCounts:
		t := newTable().Headers("Category", "Items")
		for _, c := range sortedKeys(s.CategoryCounts) {
			t.Row(displayCategory(c), strconv.Itoa(s.CategoryCounts[c]))
		}
		return t.Render()
	case stats.NameCrossCategory:
		return crossTable(s.CrossCategory, precision)
	}

	ratios, _ := s.Ratios(name)
	t := newTable().Headers("Category", "Value")
	for _, c := range sortedKeys(ratios) {
		t.Row(displayCategory(c), formatFloat(ratios[c], precision))
	}
	return t.Render()
}

// crossTable lays the averages out as a matrix, sources as rows. Pairs with
// no tally are left blank.
func crossTable(m map[string]map[string]float64, precision int) string {
	var cols []string
	for _, row := range m {
		for dst := range row {
			if !slices.Contains(cols, dst) {
				cols = append(cols, dst)
			}
		}
	}
	slices.Sort(cols)

	headers := []string{"From \\ To"}
	for _, c := range cols {
		headers = append(headers, displayCategory(c))
	}
	t := newTable().Headers(headers...)
	for _, src := range sortedKeys(m) {
		cells := []string{displayCategory(src)}
		for _, dst := range cols {
			v, ok := m[src][dst]
			if !ok {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, formatFloat(v, precision))
		}
		t.Row(cells...)
	}
	return t.Render()
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
