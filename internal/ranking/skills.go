// Package ranking orders resume skill groups by their display rank.
package ranking

import (
	"sort"

	"github.com/jonathan/resume-renderer/internal/types"
)

// SkillColumn pairs a skill category name with its group.
type SkillColumn struct {
	Category string
	Group    types.SkillGroup
}

// SkillsByRank returns the resume's skill groups ordered by ascending rank,
// or descending when reverse is set. Rank uniqueness is enforced when the
// resume is validated; if that invariant is broken upstream, which group is
// paired with a colliding rank is arbitrary.
func SkillsByRank(resume *types.Resume, reverse bool) []SkillColumn {
	names := resume.Skills.Names()

	ranks := make([]int, 0, len(names))
	for _, name := range names {
		group, _ := resume.Skills.Get(name)
		ranks = append(ranks, group.Rank)
	}
	if reverse {
		sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	} else {
		sort.Ints(ranks)
	}

	ordered := make([]SkillColumn, 0, len(ranks))
	for _, rank := range ranks {
		for _, name := range names {
			group, _ := resume.Skills.Get(name)
			if group.Rank != rank {
				continue
			}
			ordered = append(ordered, SkillColumn{Category: name, Group: group})
			break
		}
	}
	return ordered
}
