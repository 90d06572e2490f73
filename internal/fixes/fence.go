package fixes

import "strings"

// isFenceLine reports whether line opens or closes a code fence.
func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// mapLines applies transform to every line outside code fences and
// returns the rejoined content. Fence lines themselves and everything
// between them pass through untouched.
func mapLines(content string, transform func(string) string) string {
	lines := strings.Split(content, "\n")
	inFence := false
	for i, line := range lines {
		if isFenceLine(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		lines[i] = transform(line)
	}
	return strings.Join(lines, "\n")
}
