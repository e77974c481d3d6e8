package ui

import (
	"fmt"
	"strings"

	"deen/internal/core"
)

// RenderProgress renders one day's row as a bordered two-column table.
// Values come back from the store as raw strings; free-text fields are
// shown verbatim, numeric fields as logged-count / target.
func RenderProgress(schema core.Schema, row core.Row) string {
	var b strings.Builder

	b.WriteString(Header.Render(fmt.Sprintf("Progress for %s", row.Date)))
	b.WriteString("\n")

	nameWidth := 0
	for _, f := range schema.Fields() {
		if len(f.Name) > nameWidth {
			nameWidth = len(f.Name)
		}
	}

	var lines []string
	for i, f := range schema.Fields() {
		value := ""
		if i < len(row.Values) {
			value = row.Values[i]
		}
		lines = append(lines, formatLine(f, value, nameWidth))
	}
	b.WriteString(Panel.Render(strings.Join(lines, "\n")))
	return b.String()
}

func formatLine(f core.Field, value string, nameWidth int) string {
	name := fmt.Sprintf("%-*s", nameWidth, strings.ReplaceAll(f.Name, "_", " "))
	if f.FreeText {
		if value == core.SeedValue || value == "" {
			return fmt.Sprintf("%s  %s", name, Muted.Render("—"))
		}
		return fmt.Sprintf("%s  %s", name, value)
	}
	target := fmt.Sprintf("%d", f.Default)
	if value == target {
		return fmt.Sprintf("%s  %s", name, Good.Render(value+" / "+target))
	}
	return fmt.Sprintf("%s  %s", name, Muted.Render(value+" / "+target))
}
