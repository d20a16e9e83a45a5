package render

import "strings"

// Bullet is the single glyph every list line starts with.
const Bullet = "•"

// Bulletize splits free text into lines, drops blank ones, and makes every line start
// with exactly one Bullet. Existing "-", "*" or "•" markers are replaced, not doubled.
func Bulletize(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		body := trimmed
		switch {
		case strings.HasPrefix(body, Bullet):
			body = strings.TrimPrefix(body, Bullet)
		case strings.HasPrefix(body, "-"), strings.HasPrefix(body, "*"):
			body = body[1:]
		}
		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}
		out = append(out, Bullet+" "+body)
	}
	return out
}
