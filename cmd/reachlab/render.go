package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/reachlab/matrix"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorOK     = lipgloss.Color("#2CD7C7")
	colorFail   = lipgloss.Color("#E74C3C")
	colorMuted  = lipgloss.Color("#2C4A54")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	okStyle     = lipgloss.NewStyle().Foreground(colorOK)
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorFail)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func title(s string) string { return titleStyle.Render(s) + "\n" }

func status(ok bool) string {
	if ok {
		return okStyle.Render("PASS")
	}

	return failStyle.Render("FAIL")
}

// grid renders a bordered table.
func grid(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String() + "\n"
}

// indexHeaders returns "", "0", …, "n-1".
func indexHeaders(n int) []string {
	h := make([]string, n+1)
	for i := 0; i < n; i++ {
		h[i+1] = strconv.Itoa(i)
	}

	return h
}

func denseTable(m *matrix.Dense) string {
	n := m.Rows()
	if n == 0 {
		return mutedStyle.Render("(empty graph)") + "\n"
	}
	rows := make([][]string, n)
	for i, r := range m.ToRows() {
		rows[i] = make([]string, 0, n+1)
		rows[i] = append(rows[i], strconv.Itoa(i))
		for _, v := range r {
			rows[i] = append(rows[i], strconv.FormatInt(v, 10))
		}
	}

	return grid(indexHeaders(n), rows)
}

func walksTable(w *matrix.Walks) string {
	n := w.N()
	if n == 0 {
		return mutedStyle.Render("(empty graph)") + "\n"
	}
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]string, 0, n+1)
		rows[i] = append(rows[i], strconv.Itoa(i))
		for j := 0; j < n; j++ {
			v, _ := w.At(i, j)
			rows[i] = append(rows[i], v.String())
		}
	}

	return grid(indexHeaders(n), rows)
}
