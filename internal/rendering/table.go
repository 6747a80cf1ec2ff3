package rendering

import (
	"strings"

	"github.com/jonathan/resume-renderer/internal/ranking"
)

// tableStyleSnippet disables cell borders inside the skills table without
// touching any other table styling the document stylesheet sets up.
const tableStyleSnippet = "<style>\n    td, th {\n        border: none!important;\n    }\n</style>\n"

// bulletMarker prefixes each filled skills cell. Markdown list syntax would
// not survive inside a table cell, so the bullet is raw HTML.
const bulletMarker = "<span>&bull;</span> "

// buildSkillsTable lays ragged entry lists out as a fixed-width table: one
// column per category in the given order, one row per entry index up to the
// longest list, and a blank cell wherever a category has run out of entries.
func buildSkillsTable(columns []ranking.SkillColumn) string {
	if len(columns) == 0 {
		return ""
	}

	longest := 0
	names := make([]string, len(columns))
	for i, column := range columns {
		names[i] = column.Category
		if len(column.Group.Entries) > longest {
			longest = len(column.Group.Entries)
		}
	}

	var sb strings.Builder
	sb.WriteString("| " + strings.Join(names, " | ") + " |\n")
	for range columns {
		sb.WriteString("|:--- ")
	}
	sb.WriteString("|\n")

	for row := 0; row < longest; row++ {
		sb.WriteString("| ")
		for _, column := range columns {
			if row < len(column.Group.Entries) {
				sb.WriteString(bulletMarker + column.Group.Entries[row])
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
