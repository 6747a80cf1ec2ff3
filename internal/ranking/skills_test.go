package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-renderer/internal/types"
)

func skillsResume(pairs ...types.SkillPair) *types.Resume {
	return &types.Resume{Skills: types.NewSkillGroups(pairs...)}
}

func TestSkillsByRank_Ascending(t *testing.T) {
	resume := skillsResume(
		types.SkillPair{Name: "spam", Group: types.SkillGroup{Rank: 3, Entries: []string{"a"}}},
		types.SkillPair{Name: "waffles", Group: types.SkillGroup{Rank: 1, Entries: []string{"b"}}},
	)

	columns := SkillsByRank(resume, false)
	require.Len(t, columns, 2)
	assert.Equal(t, "waffles", columns[0].Category)
	assert.Equal(t, "spam", columns[1].Category)
	assert.Equal(t, []string{"b"}, columns[0].Group.Entries)
}

func TestSkillsByRank_Descending(t *testing.T) {
	resume := skillsResume(
		types.SkillPair{Name: "spam", Group: types.SkillGroup{Rank: 3}},
		types.SkillPair{Name: "waffles", Group: types.SkillGroup{Rank: 1}},
	)

	columns := SkillsByRank(resume, true)
	require.Len(t, columns, 2)
	assert.Equal(t, "spam", columns[0].Category)
	assert.Equal(t, "waffles", columns[1].Category)
}

func TestSkillsByRank_SparseRanks(t *testing.T) {
	// Ranks need not be contiguous; only their relative order matters.
	resume := skillsResume(
		types.SkillPair{Name: "rare", Group: types.SkillGroup{Rank: 40}},
		types.SkillPair{Name: "common", Group: types.SkillGroup{Rank: -2}},
		types.SkillPair{Name: "typical", Group: types.SkillGroup{Rank: 7}},
	)

	columns := SkillsByRank(resume, false)
	require.Len(t, columns, 3)
	assert.Equal(t, "common", columns[0].Category)
	assert.Equal(t, "typical", columns[1].Category)
	assert.Equal(t, "rare", columns[2].Category)
}

func TestSkillsByRank_Empty(t *testing.T) {
	resume := skillsResume()
	assert.Empty(t, SkillsByRank(resume, false))
}
