package utils

import (
	"strings"
	"unicode/utf8"
)

// ChunkLines joins lines with newlines into messages of at most chunkSize
// bytes, never splitting a line. A single line longer than chunkSize is split
// on rune boundaries.
func ChunkLines(lines []string, chunkSize int) []string {
	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, line := range lines {
		if len(line) > chunkSize {
			flush()
			chunks = append(chunks, splitRunes(line, chunkSize)...)
			continue
		}

		extra := len(line)
		if current.Len() > 0 {
			extra++
		}
		if current.Len()+extra > chunkSize {
			flush()
		}

		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}
	flush()

	return chunks
}

func splitRunes(s string, chunkSize int) []string {
	var parts []string
	start := 0
	for i, r := range s {
		if i > start && i-start+utf8.RuneLen(r) > chunkSize {
			parts = append(parts, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}
