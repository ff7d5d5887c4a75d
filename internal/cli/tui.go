package cli

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/copurchase/pkg/stats"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	panelStyle        = lipgloss.NewStyle().PaddingLeft(2)
)

// =============================================================================
// CategoryListModel - Interactive category browser
// =============================================================================

// CategoryListModel is the bubbletea model for browsing per-category
// statistics. The left column lists categories; the right panel shows the
// selected category's values and its cross-category row.
type CategoryListModel struct {
	Summary    *stats.Summary
	Categories []string
	Precision  int
	Cursor     int
	Height     int
	Offset     int
}

// NewCategoryListModel creates a model over every category named in s.
func NewCategoryListModel(s *stats.Summary, precision int) CategoryListModel {
	return CategoryListModel{
		Summary:    s,
		Categories: summaryCategories(s),
		Precision:  precision,
		Height:     15,
	}
}

// summaryCategories collects the categories appearing in any statistic,
// sorted.
func summaryCategories(s *stats.Summary) []string {
	seen := make(map[string]bool)
	for c := range s.CategoryCounts {
		seen[c] = true
	}
	for _, m := range []map[string]float64{s.AverageDegree, s.AverageDegreeWithNeighbors, s.PurchasingLikelihood, s.SelfRecommendation} {
		for c := range m {
			seen[c] = true
		}
	}
	for src, row := range s.CrossCategory {
		seen[src] = true
		for dst := range row {
			seen[dst] = true
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

func (m CategoryListModel) Init() tea.Cmd {
	return nil
}

func (m CategoryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Categories)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(len(m.Categories)-1, 0)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	m.scroll()
	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *CategoryListModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

// Selected returns the category under the cursor.
func (m CategoryListModel) Selected() (string, bool) {
	if len(m.Categories) == 0 {
		return "", false
	}
	return m.Categories[m.Cursor], true
}

func (m CategoryListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Categories) == 0 {
		b.WriteString(listDimStyle.Render("  no categories"))
		return b.String()
	}

	var list strings.Builder
	end := min(m.Offset+m.Height, len(m.Categories))
	for i := m.Offset; i < end; i++ {
		name := displayName(m.Categories[i])
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render("▸ " + name))
		} else {
			list.WriteString(listNormalStyle.Render("  " + name))
		}
		list.WriteString("\n")
	}

	cat, _ := m.Selected()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), panelStyle.Render(m.detail(cat))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Categories))))

	return b.String()
}

func (m CategoryListModel) detail(cat string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleFunc := func(row, col int) lipgloss.Style {
		if row == -1 {
			return headerStyle
		}
		if col == 1 {
			return StyleNumber
		}
		return lipgloss.NewStyle()
	}

	s := m.Summary
	values := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Statistic", "Value").
		StyleFunc(styleFunc)
	if n, ok := s.CategoryCounts[cat]; ok {
		values.Row("Items", strconv.Itoa(n))
	}
	for _, st := range stats.Statistics {
		ratios, ok := s.Ratios(st.Name)
		if !ok {
			continue
		}
		if v, ok := ratios[cat]; ok {
			values.Row(st.Title, m.format(v))
		}
	}

	out := StyleTitle.Render(displayName(cat)) + "\n" + values.Render()

	row := s.CrossCategory[cat]
	if len(row) == 0 {
		return out
	}
	cross := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Neighbor category", "Avg per item").
		StyleFunc(styleFunc)
	for _, dst := range slices.Sorted(maps.Keys(row)) {
		cross.Row(displayName(dst), m.format(row[dst]))
	}
	return out + "\n" + cross.Render()
}

func (m CategoryListModel) format(v float64) string {
	return strconv.FormatFloat(v, 'f', m.Precision, 64)
}

func displayName(c string) string {
	if c == "" {
		return "(none)"
	}
	return c
}
