package query

import (
	"fmt"
	"strings"

	"tasklog/internal/domain"
)

const systemPrompt = `You are a helpful assistant analyzing task log data. Answer the user's question based ONLY on the task data provided in the prompt.

RULES:
1. Use only the task data provided. Never invent tasks, dates, or hours.
2. Provide a clear and concise answer, appropriate for a terminal.
3. If the data cannot answer the question, say so instead of guessing.`

// buildUserPrompt serializes the records as a numbered table followed by
// the verbatim question.
func buildUserPrompt(records []domain.Record, question string) string {
	var b strings.Builder

	b.WriteString("Task data:\n")
	for i, rec := range records {
		fmt.Fprintf(&b, "%d. Date: %s, Hours: %s, Task: %s\n",
			i+1, rec.Date, domain.FormatHours(rec.Hours), rec.Task)
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(question)

	return b.String()
}
