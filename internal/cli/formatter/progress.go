package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a bare bar like ████░░░░ at the given fill ratio.
func RenderBar(pct float64, width int, style lipgloss.Style) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return style.Render(bar)
}

// RenderSpendProgress renders spend against target like [████░░░░]  45%.
// Color tracks how much of the budget is consumed: green below 66%,
// yellow up to 100%, red beyond.
func RenderSpendProgress(pct float64, width int) string {
	style := StyleGreen
	if pct > 1 {
		style = StyleRed
	} else if pct > 0.66 {
		style = StyleYellow
	}
	display := pct
	if display > 1 {
		display = 1
	}
	return fmt.Sprintf("[%s] %3.0f%%", RenderBar(display, width, style), pct*100)
}
