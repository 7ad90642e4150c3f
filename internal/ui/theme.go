package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Petrack theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPet     = "🐶"
	IconHeart   = "❤️"
	IconCoin    = "🪙"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFire    = "🔥"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconBag     = "🎒"
	IconShop    = "🛒"
	IconBook    = "📚"
	IconFood    = "🍖"
	IconToy     = "🎾"
	IconPotion  = "🧪"
	IconCollar  = "🎀"
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
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
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

// HealthText colors the health value by how close the pet is to trouble.
func HealthText(health int) string {
	s := fmt.Sprintf("%d/100", health)
	switch {
	case health > 80:
		return Good.Render(s)
	case health > 50:
		return H2.Render(s)
	case health > 20:
		return Warn.Render(s)
	default:
		return Bad.Render(s)
	}
}

// HealthMood is the one-word description shown next to the pet.
func HealthMood(health int) string {
	switch {
	case health > 80:
		return "thriving"
	case health > 50:
		return "content"
	case health > 20:
		return "hungry"
	default:
		return "miserable"
	}
}

// HealthBar renders a fixed-width bar of filled and empty cells.
func HealthBar(health int, width int) string {
	if width <= 0 {
		width = 20
	}
	if health < 0 {
		health = 0
	}
	if health > 100 {
		health = 100
	}
	filled := health * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case health > 50:
		return Good.Render(bar)
	case health > 20:
		return Warn.Render(bar)
	default:
		return Bad.Render(bar)
	}
}

// CategoryIcon maps an item category to its emoji.
func CategoryIcon(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "food":
		return IconFood
	case "toy":
		return IconToy
	case "medicine":
		return IconPotion
	case "accessory":
		return IconCollar
	default:
		return IconBag
	}
}

// DifficultyText colors the difficulty label by its XP weight.
func DifficultyText(difficulty string) string {
	switch strings.ToUpper(strings.TrimSpace(difficulty)) {
	case "LOW":
		return Good.Render("LOW")
	case "HIGH":
		return Bad.Render("HIGH")
	default:
		return Warn.Render("MEDIUM")
	}
}
