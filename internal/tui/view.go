package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/socratiq/internal/ui/theme"
)

var (
	tutorLabel   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	studentLabel = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(theme.Error)
	statusStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(m.width).Render("socratiq"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(m.width).Render("a tutor that only asks questions"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseProblemInput:
		b.WriteString(theme.Body.Render("What problem should we work on?"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
	case phaseSummary:
		b.WriteString(m.renderSummary())
	default:
		b.WriteString(m.renderConversation())
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	v.SetContent(b.String())
	return v
}

func (m Model) renderConversation() string {
	var b strings.Builder
	wrap := theme.Body.Width(max(20, m.width-10))

	for _, msg := range m.messages {
		if msg.role == "tutor" {
			b.WriteString(tutorLabel.Render("tutor"))
		} else {
			b.WriteString(studentLabel.Render("you"))
		}
		b.WriteString("  ")
		b.WriteString(wrap.Render(msg.text))
		b.WriteString("\n\n")
	}

	if m.phase == phaseThinking {
		b.WriteString(theme.Hint.Render("thinking..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.sess != nil {
		st := m.sess.State()
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(fmt.Sprintf(
			"depth %d/5 · %s · %s · esc ends the session",
			st.Depth, st.Level, st.Stage)))
	}
	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder
	s := m.summary

	b.WriteString(theme.Body.Render("Session summary"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Turns            %d\n", s.Turns)
	fmt.Fprintf(&b, "  Deepest level    %d/5\n", s.MaxDepth)
	fmt.Fprintf(&b, "  Avg confidence   %.2f\n", s.AvgConfidence)
	if len(s.ConceptsLearned) > 0 {
		fmt.Fprintf(&b, "  Learned          %s\n", strings.Join(s.ConceptsLearned, ", "))
	}
	if len(s.ConceptsStruggled) > 0 {
		fmt.Fprintf(&b, "  Struggled        %s\n", strings.Join(s.ConceptsStruggled, ", "))
	}
	if s.Compliant {
		b.WriteString("  " + theme.Correct.Render("No direct answers were given") + "\n")
	} else {
		fmt.Fprintf(&b, "  Direct answers   %d\n", s.DirectAnswerCount)
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("enter to exit"))
	return b.String()
}
