// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"geotask/internal/service"
)

// FormatTask formats a single task line.
// Format: "{N:>4}  [x] {TITLE}  ({LAT}, {LON})" with coordinates to four
// decimal places, omitted when the task carries no location.
func FormatTask(w io.Writer, num int, task service.Task) {
	box := " "
	if task.Completed {
		box = "x"
	}
	line := fmt.Sprintf("%4d  [%s] %s", num, box, normalizeTitle(task.Title))
	if task.Location != nil {
		line += fmt.Sprintf("  (%.4f, %.4f)", task.Location.Latitude, task.Location.Longitude)
	}
	fmt.Fprintln(w, line)
}

// FormatSession formats the whoami output.
func FormatSession(w io.Writer, email, userID string) {
	fmt.Fprintf(w, "%s (%s)\n", email, userID)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
