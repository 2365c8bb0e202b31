package tutor

import (
	"fmt"
	"strings"
)

// Turn is one prior exchange line from a chat session.
type Turn struct {
	Content string
	IsUser  bool
}

// renderTranscript formats prior turns as a labeled conversation block the
// model can read for continuity. Turns with no text (image-only rows) are
// skipped. Returns "" when there is no usable history.
func renderTranscript(history []Turn) string {
	if len(history) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n=== 이전 대화 내용 ===\n")

	wrote := false
	for _, turn := range history {
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		speaker := "AI 선생님"
		if turn.IsUser {
			speaker = "학생"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, turn.Content)
		wrote = true
	}
	if !wrote {
		return ""
	}

	b.WriteString("\n=== 현재 질문 ===\n")
	return b.String()
}
