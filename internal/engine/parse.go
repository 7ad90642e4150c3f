package engine

import "strings"

// ParseDifficulty parses user input to a Difficulty.
// Supported: low, medium, high (and the first letters l/m/h).
// Empty or unrecognized input returns DefaultDifficulty.
func ParseDifficulty(input string) Difficulty {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "low", "l", "easy":
		return DifficultyLow
	case "medium", "m", "med":
		return DifficultyMedium
	case "high", "h", "hard":
		return DifficultyHigh
	default:
		return DefaultDifficulty
	}
}
