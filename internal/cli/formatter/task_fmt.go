package formatter

import (
	"fmt"
	"strings"

	"tasklog/internal/domain"
)

// FormatAdded renders the confirmation line printed after a successful add.
func FormatAdded(rec domain.Record) string {
	return fmt.Sprintf("%s Logged %s on %s (%s hours)",
		render(StyleGreen, "✔"),
		Bold(fmt.Sprintf("%q", rec.Task)),
		rec.Date,
		domain.FormatHours(rec.Hours),
	)
}

// FormatQueryHeader renders the model/question banner shown before the answer.
func FormatQueryHeader(model, question string) string {
	var b strings.Builder
	b.WriteString(Dim(fmt.Sprintf("Querying tasks using model %q...", model)))
	b.WriteString("\n")
	b.WriteString(render(StyleHeader, "Question: "))
	b.WriteString(question)
	b.WriteString("\n")
	return b.String()
}

// FormatAnswer renders the model's answer.
func FormatAnswer(answer string) string {
	return render(StyleHeader, "Answer:") + "\n" + strings.TrimSpace(answer)
}

// FormatNoTasks renders the empty-log notice for the query path.
func FormatNoTasks() string {
	return render(StyleYellow, "No tasks found in the log.")
}
