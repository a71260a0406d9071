package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/herodex/internal/search"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

var (
	colorAccent = lipgloss.Color("#89b4fa")
	colorMuted  = lipgloss.Color("#6c7086")
	colorError  = lipgloss.Color("#f38ba8")
	colorWarn   = lipgloss.Color("#fab387")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e1e2e")).Background(colorAccent)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	loadingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWarn)
	dialogStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorError).Padding(1, 2)
	labelStyle    = lipgloss.NewStyle().Width(14)
)

// Column widths of the hero table.
var columns = []struct {
	title string
	width int
}{
	{"ID", 4},
	{"Nombre", 18},
	{"Poder", 24},
	{"Descripción", 40},
}

func (m model) View() string {
	var body string
	switch m.screen {
	case screenAdd, screenEdit:
		body = m.viewForm()
	default:
		body = m.viewList()
	}

	if m.confirm != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.viewConfirm())
	}
	if m.store.Loading().Busy() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", loadingStyle.Render("Cargando..."))
	}
	if m.status != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", mutedStyle.Render(m.status))
	}
	return body
}

func (m model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Héroes"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	pg := m.list.Page()
	b.WriteString(renderRow(headerStyle, columnTitles()))
	b.WriteString("\n")
	for i, h := range pg.Items {
		style := lipgloss.NewStyle()
		if i == m.cursor && m.confirm == nil {
			style = selectedStyle
		}
		b.WriteString(renderRow(style, heroCells(h)))
		b.WriteString("\n")
	}
	if len(pg.Items) == 0 {
		b.WriteString(mutedStyle.Render("No se encontraron héroes"))
		if h, ok := search.Suggest(m.store.GetAll(), m.list.Term()); ok {
			b.WriteString(mutedStyle.Render(fmt.Sprintf(". ¿Quisiste decir %s?", h.Name)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Página %d de %d (%d héroes)", pg.Index+1, pg.Count, pg.Total)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("/: buscar  a: agregar  e: editar  d: eliminar  n/p: página  q: salir"))
	return b.String()
}

func (m model) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.form.state.Title()))
	b.WriteString("\n")
	for i, inp := range m.form.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i] + ":"))
		b.WriteString(inp.View())
		b.WriteString("\n")
		if msg := m.form.fieldError(i); msg != "" {
			b.WriteString(labelStyle.Render(""))
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("enter: %s  esc: cancelar  tab: siguiente campo", m.form.state.SubmitLabel())))
	return b.String()
}

func (m model) viewConfirm() string {
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.confirm.Title()),
		m.confirm.Message(),
		"",
		mutedStyle.Render("s/y: eliminar  n/esc: cancelar"),
	))
}

func columnTitles() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.title
	}
	return out
}

func heroCells(h types.Hero) []string {
	return []string{fmt.Sprint(h.ID), h.Name, h.Power, h.Description}
}

func renderRow(style lipgloss.Style, cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		w := columns[i].width
		parts[i] = fmt.Sprintf("%-*s", w, truncate(cell, w-1))
	}
	return style.Render(strings.Join(parts, " "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
