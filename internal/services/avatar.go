package services

import (
	"strings"
	"unicode"
)

// initials builds an avatar from the first letters of the first two words of name.
func initials(name, fallback string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return fallback
	}

	letters := make([]rune, 0, 2)
	for _, w := range words {
		if len(letters) == 2 {
			break
		}
		letters = append(letters, unicode.ToUpper([]rune(w)[0]))
	}
	return string(letters)
}
