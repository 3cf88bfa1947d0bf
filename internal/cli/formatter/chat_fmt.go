package formatter

import (
	"strings"

	"github.com/planpilothq/planpilot/internal/domain"
)

// FormatChatWelcome renders the banner shown when the chat view opens.
func FormatChatWelcome(title string) string {
	if title == "" {
		title = "your event"
	}
	return StyleHeader.Render("PlanPilot") + "\n" +
		Dim("Chatting about "+title+". Type a message and press Enter. Esc to leave.")
}

// FormatUserTurn renders a user chat line.
func FormatUserTurn(content string) string {
	return StyleBlue.Render("you") + Dim(" › ") + content
}

// FormatAssistantTurn renders an assistant chat line, indenting wrapped
// continuation lines under the badge.
func FormatAssistantTurn(content string) string {
	lines := strings.Split(content, "\n")
	var b strings.Builder
	b.WriteString(StylePurple.Render("pilot") + Dim(" › ") + lines[0])
	for _, line := range lines[1:] {
		b.WriteString("\n        " + line)
	}
	return b.String()
}

// FormatTranscript renders a full conversation history.
func FormatTranscript(turns []domain.ConversationTurn) string {
	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n")
		}
		if turn.Role == domain.RoleUser {
			b.WriteString(FormatUserTurn(turn.Content))
		} else {
			b.WriteString(FormatAssistantTurn(turn.Content))
		}
	}
	return b.String()
}
