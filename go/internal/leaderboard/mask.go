package leaderboard

import "strings"

// MaskName hides most of a username, e.g. "Nottingham" -> "NOT***AM".
// Names of five characters or fewer are shown as is.
func MaskName(name string) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	if len(runes) <= 5 {
		return name
	}

	first := strings.ToUpper(string(runes[:3]))
	last := strings.ToUpper(string(runes[len(runes)-2:]))
	return first + "***" + last
}
