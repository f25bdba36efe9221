package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RISE theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconRise    = "🌅"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconBolt    = "⚡"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconClock   = "⏰"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "done":
		return Good.Render("done")
	case "scheduled":
		return Warn.Render("scheduled")
	default:
		return Muted.Render(status)
	}
}

func CategoryIcon(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "mind":
		return "🧠"
	case "fitness":
		return "💪"
	case "vitality":
		return "🥗"
	case "wealth":
		return "💰"
	case "charisma":
		return "✨"
	default:
		return "📌"
	}
}

// XPBar renders profile progress toward the next level as a fixed
// width bar, e.g. [█████░░░░░] 50/100.
func XPBar(xp, threshold int) string {
	const width = 10
	if threshold <= 0 {
		threshold = 1
	}
	filled := xp * width / threshold
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d/%d", Gold.Render(bar), xp, threshold)
}
