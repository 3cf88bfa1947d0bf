package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/planpilothq/planpilot/internal/cli/formatter"
	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/planpilothq/planpilot/internal/service"
)

// chatModel is the interactive conversation view. While a request is in
// flight the input is blurred and keystrokes are ignored, making the
// one-request-at-a-time rule visible in the UI.
type chatModel struct {
	app    *App
	planID string
	title  string

	input    textinput.Model
	messages []string
	waiting  bool
}

type chatResultMsg struct {
	res *service.ChatResult
	err error
}

func newChatModel(app *App, plan *domain.EventPlan) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	m := &chatModel{
		app:    app,
		planID: plan.PlanID,
		title:  plan.EventMetadata.Title,
		input:  ti,
	}

	m.messages = append(m.messages, formatter.FormatChatWelcome(m.title))
	if transcript := formatter.FormatTranscript(plan.AIContext.Messages); transcript != "" {
		m.messages = append(m.messages, transcript)
	}

	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.waiting {
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			return m.send(text)
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case chatResultMsg:
		m.waiting = false
		m.input.Focus()
		switch {
		case errors.Is(msg.err, service.ErrSuperseded):
			// A newer message took over; nothing to show for this one.
		case msg.err != nil:
			m.messages = append(m.messages, formatter.StyleRed.Render("error: ")+msg.err.Error())
		default:
			m.messages = append(m.messages, formatter.FormatAssistantTurn(msg.res.Reply))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(formatter.Dim("thinking..."))
		return b.String()
	}

	b.WriteString(formatter.StyleBlue.Render("you") + formatter.Dim(" › "))
	b.WriteString(m.input.View())
	return b.String()
}

func (m *chatModel) send(text string) (tea.Model, tea.Cmd) {
	m.messages = append(m.messages, formatter.FormatUserTurn(text))
	m.waiting = true
	m.input.Blur()

	app, planID := m.app, m.planID
	return m, func() tea.Msg {
		res, err := app.Chat.Send(context.Background(), planID, text)
		return chatResultMsg{res: res, err: err}
	}
}
