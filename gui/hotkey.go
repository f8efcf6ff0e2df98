package gui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseHotkey strips "~X~" markup from label and returns the clean text and
// the lowercased hotkey, or 0 when there is none
func ParseHotkey(label string) (string, rune) {
	start := strings.IndexByte(label, '~')
	if start < 0 {
		return label, 0
	}
	end := strings.IndexByte(label[start+1:], '~')
	if end < 0 {
		return label, 0
	}
	end += start + 1

	inner := label[start+1 : end]
	clean := label[:start] + inner + label[end+1:]
	r, _ := utf8.DecodeRuneInString(inner)
	if r == utf8.RuneError {
		return clean, 0
	}
	return clean, unicode.ToLower(r)
}

// CleanupHotkey returns label without hotkey markup
func CleanupHotkey(label string) string {
	clean, _ := ParseHotkey(label)
	return clean
}
