package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gags88/reminder-pwa/internal/models"
)

const displayDateLayout = "Jan 2, 2006"

func (m *Model) View() string {
	sections := []string{
		m.viewForm(),
		"",
		m.viewList(),
	}

	if ts := m.viewToasts(); ts != "" {
		sections = append(sections, "", ts)
	}

	sections = append(sections, "", m.styles.Help.Render(
		"tab: switch focus • enter: submit/edit • esc: cancel edit • d: delete • r: refresh • q: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewForm() string {
	header := "Create a Reminder"
	if m.mode == modeEditing {
		header = "Edit Reminder"
	}

	lines := []string{
		m.styles.Header.Render(header),
		"",
		m.styles.Label.Render("Title"),
		m.titleInput.View(),
	}
	if msg, ok := m.formErrs["title"]; ok {
		lines = append(lines, m.styles.Error.Render(msg))
	}

	lines = append(lines,
		m.styles.Label.Render("Due Date"),
		m.dateInput.View(),
	)
	if msg, ok := m.formErrs["date"]; ok {
		lines = append(lines, m.styles.Error.Render(msg))
	}

	action := "enter: add reminder"
	if m.mode == modeEditing {
		action = "enter: update reminder"
	}
	lines = append(lines, "", m.styles.Muted.Render(action))

	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) viewList() string {
	if len(m.reminders) == 0 {
		return m.styles.Muted.Render("No reminders yet.")
	}

	cards := make([]string, 0, len(m.reminders))
	for i, r := range m.reminders {
		cards = append(cards, m.viewCard(r, m.focus == focusList && i == m.cursor))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m *Model) viewCard(r models.Reminder, selected bool) string {
	title := m.styles.CardTitle.Render(r.Title)
	if selected {
		title = m.styles.Selected.Render("> " + r.Title)
	}

	due := r.Date
	if d, err := time.Parse(models.DateLayout, r.Date); err == nil {
		due = d.Format(displayDateLayout)
	}

	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.styles.DueLine.Render("Due: "+due),
	))
}

func (m *Model) viewToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		text := t.title
		if t.body != "" {
			text += ": " + t.body
		}
		style := m.styles.ToastInfo
		if t.level == toastError {
			style = m.styles.ToastErr
		}
		lines = append(lines, style.Render(text))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
