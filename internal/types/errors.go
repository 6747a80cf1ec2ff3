package types

import (
	"fmt"
	"sort"
	"strings"
)

// FieldError is a single violation found while validating a resume.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every violation found in a resume document:
// per-field failures plus, for skills, the full mapping of colliding ranks to
// the category names that share them.
type ValidationError struct {
	Fields         []FieldError
	DuplicateRanks map[int][]string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume validation failed:\n")
	n := 0
	for _, fieldErr := range ve.Fields {
		n++
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", n, fieldErr.Field, fieldErr.Message))
	}
	for _, rank := range ve.sortedDuplicateRanks() {
		n++
		sb.WriteString(fmt.Sprintf("  %d. skills: rank %d assigned to %s (ranks must be unique)\n", n, rank, strings.Join(ve.DuplicateRanks[rank], ", ")))
	}
	return sb.String()
}

// sortedDuplicateRanks returns the colliding ranks in ascending order so the
// rendered message is deterministic.
func (ve *ValidationError) sortedDuplicateRanks() []int {
	ranks := make([]int, 0, len(ve.DuplicateRanks))
	for rank := range ve.DuplicateRanks {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)
	return ranks
}

// empty reports whether no violations were recorded.
func (ve *ValidationError) empty() bool {
	return len(ve.Fields) == 0 && len(ve.DuplicateRanks) == 0
}
