package style

import "strings"

// TruncateEnd shortens s to at most maxLen runes, ending it with "..."
// when there is room. It reports whether s was shortened.
func TruncateEnd(s string, maxLen int) (string, bool) {
	r := []rune(s)
	if len(r) <= maxLen {
		return s, false
	}
	if maxLen <= 3 {
		return string(r[:maxLen]), true
	}
	return string(r[:maxLen-3]) + "...", true
}

// WrapText breaks s into lines of at most width runes at spaces. Words
// longer than width get a line of their own.
func WrapText(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len([]rune(line))+1+len([]rune(w)) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}

// CharsPerLine returns how many font cells fit in px pixels
func CharsPerLine(px int) int {
	const cellWidth = 7 // basicfont.Face7x13
	n := px / cellWidth
	if n < 1 {
		return 1
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
