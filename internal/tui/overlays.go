package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// confirmModel asks before a destructive action on a user or stream.
type confirmModel struct {
	kind    string
	subject string
}

func (m confirmModel) View() string {
	question := fmt.Sprintf("Delete %s %q?", m.kind, m.subject)
	return renderOverlay(titleStyle.Render(question), "y yes    n/esc no")
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return renderOverlay(errorStyle.Render("Error")+"\n\n"+m.message, "enter / esc close")
}

func renderOverlay(body, hint string) string {
	return overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, "", helpStyle.Render(hint)))
}
