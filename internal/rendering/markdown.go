// Package rendering turns a validated resume into its canonical Markdown
// form. Each section is built by a pure function and the document is their
// concatenation in fixed order; no builder reorders or filters the model.
package rendering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-renderer/internal/ranking"
	"github.com/jonathan/resume-renderer/internal/types"
)

// attribution is the fixed footer line identifying the generator.
const attribution = "\n*Generated with [resume-renderer](https://github.com/jonathan/resume-renderer)*"

// RenderMarkdown renders the whole resume: header, summary, skills,
// experience, education, and the attribution footer, in that order. The
// style block is emitted verbatim at the top of the document, so the
// Markdown file doubles as the styled source for HTML conversion.
func RenderMarkdown(resume *types.Resume, styleBlock string) string {
	var sb strings.Builder
	sb.WriteString(buildHeader(resume, styleBlock))
	sb.WriteString(buildSummary(resume))
	sb.WriteString(buildSkills(resume))
	sb.WriteString(buildExperience(resume))
	sb.WriteString(buildEducation(resume))
	sb.WriteString(attribution)
	return sb.String()
}

// buildHeader emits the style block, the candidate name as the document
// heading, and a contact line of the form "city, state | phone | email".
func buildHeader(resume *types.Resume, styleBlock string) string {
	var sb strings.Builder
	sb.WriteString(styleBlock)
	sb.WriteString("\n\n")
	sb.WriteString("# " + resume.Contact.Name + "\n")
	sb.WriteString(fmt.Sprintf("%s, %s | %s | %s\n",
		resume.Contact.Address.City,
		resume.Contact.Address.State,
		resume.Contact.Phone,
		resume.Contact.Email,
	))
	sb.WriteString("\n")
	return sb.String()
}

// buildSummary emits the professional summary section.
func buildSummary(resume *types.Resume) string {
	return "# Professional Summary\n" + resume.Summary + "\n\n"
}

// buildSkills emits the skills section: a border-disabling style snippet for
// the table, then the rank-ordered skills table.
func buildSkills(resume *types.Resume) string {
	var sb strings.Builder
	sb.WriteString("# Skills\n\n")
	sb.WriteString(tableStyleSnippet)
	sb.WriteString(buildSkillsTable(ranking.SkillsByRank(resume, false)))
	sb.WriteString("\n\n")
	return sb.String()
}

// buildExperience emits one block per experience entry in document order. An
// entry without an end date is rendered as running to "present".
func buildExperience(resume *types.Resume) string {
	var sb strings.Builder
	sb.WriteString("# Professional Experience\n")
	for _, entry := range resume.Experience {
		sb.WriteString("## " + entry.Title)
		if entry.Focus != nil && *entry.Focus != "" {
			sb.WriteString(" - " + *entry.Focus)
		}
		sb.WriteString("\n")

		end := "present"
		if entry.End != nil && *entry.End != "" {
			end = *entry.End
		}
		sb.WriteString(fmt.Sprintf("**%s** | %s - %s | *%s*\n\n", entry.Institution, entry.Start, end, entry.Location))

		sb.WriteString(entry.Summary)
		sb.WriteString("\n\n")
		for _, highlight := range entry.Highlights {
			sb.WriteString(" * " + highlight + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// buildEducation emits one block per education entry in document order.
// Focus and Minor lines appear only when those fields carry a value; a nil
// end date renders as an empty cell.
func buildEducation(resume *types.Resume) string {
	var sb strings.Builder
	sb.WriteString("# Education and Course Work\n")
	for _, entry := range resume.Education {
		sb.WriteString("## " + entry.Degree + "\n")

		end := ""
		if entry.End != nil {
			end = *entry.End
		}
		sb.WriteString(fmt.Sprintf("**%s** | %s | *%s*\n\n", entry.Institution, end, entry.Location))

		sb.WriteString("*GPA*: " + formatGPA(entry.GPA) + "\n\n")
		if entry.Specialty != nil && *entry.Specialty != "" {
			sb.WriteString("*Focus*: " + *entry.Specialty + "\n\n")
		}
		if entry.Minor != nil && *entry.Minor != "" {
			sb.WriteString("*Minor*: " + *entry.Minor + "\n\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// formatGPA renders a GPA without trailing zeros, so 3.50 prints as 3.5.
func formatGPA(gpa float64) string {
	return strconv.FormatFloat(gpa, 'f', -1, 64)
}
