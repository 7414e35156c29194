// Package tui renders the tutoring conversation as a terminal chat.
package tui

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/socratiq/internal/analytics"
	"github.com/abhisek/socratiq/internal/engine"
)

type phase int

const (
	phaseProblemInput phase = iota
	phaseThinking
	phaseChatting
	phaseSummary
)

type chatMessage struct {
	role string // "tutor" or "student"
	text string
}

// sessionStartedMsg carries the result of opening a session.
type sessionStartedMsg struct {
	sess    *engine.Session
	opening string
	err     error
}

// tutorReplyMsg carries the result of one turn.
type tutorReplyMsg struct {
	reply string
	err   error
}

// sessionEndedMsg carries the finalized summary.
type sessionEndedMsg struct {
	analytics engine.Analytics
	err       error
}

// Model is the root chat model.
type Model struct {
	engine  *engine.Engine
	service *analytics.Service

	phase    phase
	sess     *engine.Session
	messages []chatMessage
	summary  engine.Analytics
	errMsg   string
	input    textinput.Model
	width    int
	height   int
}

// New builds the chat model. The analytics service refreshes the
// student profile when a session ends; it may be nil in tests.
func New(eng *engine.Engine, svc *analytics.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a math problem to work on..."
	ti.CharLimit = 400
	ti.Focus()
	return Model{
		engine:  eng,
		service: svc,
		input:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case sessionStartedMsg:
		if msg.err != nil {
			m.phase = phaseProblemInput
			m.errMsg = friendlyError(msg.err)
			return m, nil
		}
		m.sess = msg.sess
		m.errMsg = ""
		m.messages = append(m.messages, chatMessage{role: "tutor", text: msg.opening})
		m.phase = phaseChatting
		m.input.Placeholder = "Your thinking..."
		return m, nil

	case tutorReplyMsg:
		if msg.err != nil {
			// Upstream failure: nothing advanced, so put the student's
			// message back in the input for a retry.
			if n := len(m.messages); n > 0 && m.messages[n-1].role == "student" {
				m.input.SetValue(m.messages[n-1].text)
				m.messages = m.messages[:n-1]
			}
			m.phase = phaseChatting
			m.errMsg = friendlyError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.messages = append(m.messages, chatMessage{role: "tutor", text: msg.reply})
		m.phase = phaseChatting
		return m, nil

	case sessionEndedMsg:
		m.summary = msg.analytics
		if msg.err != nil {
			m.errMsg = friendlyError(msg.err)
		}
		m.phase = phaseSummary
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.sess != nil && m.phase != phaseSummary {
			return m, tea.Sequence(m.endSession(), tea.Quit)
		}
		return m, tea.Quit

	case "esc":
		if m.phase == phaseChatting {
			m.phase = phaseThinking
			return m, m.endSession()
		}
		return m, tea.Quit

	case "enter":
		switch m.phase {
		case phaseProblemInput:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.phase = phaseThinking
			return m, m.startSession(text)

		case phaseChatting:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.messages = append(m.messages, chatMessage{role: "student", text: text})
			m.phase = phaseThinking
			return m, m.respond(text)

		case phaseSummary:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startSession(problemText string) tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		sess, opening, err := eng.StartProblem(context.Background(), problemText)
		return sessionStartedMsg{sess: sess, opening: opening, err: err}
	}
}

func (m Model) respond(utterance string) tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		reply, err := sess.RespondToStudent(context.Background(), utterance)
		return tutorReplyMsg{reply: reply, err: err}
	}
}

func (m Model) endSession() tea.Cmd {
	sess := m.sess
	svc := m.service
	eng := m.engine
	return func() tea.Msg {
		ctx := context.Background()
		summary := sess.SessionAnalytics()
		err := sess.End(ctx)
		if err == nil && svc != nil {
			_, err = svc.RefreshProfile(ctx, eng.Profile())
		}
		return sessionEndedMsg{analytics: summary, err: err}
	}
}

func friendlyError(err error) string {
	switch {
	case err == nil:
		return ""
	case strings.Contains(err.Error(), "completion service"):
		return "The tutor is unreachable right now. Press Enter to retry your last message."
	default:
		return err.Error()
	}
}
