package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeStats(t *testing.T) {
	c := Course{
		// stale values that must be overwritten
		TotalSections:        99,
		TotalLectures:        99,
		TotalDurationSeconds: 99,
		Sections: []Section{
			{
				Title: "Intro",
				Lectures: []Lecture{
					{Title: "Welcome", DurationSeconds: 300},
					{Title: "Setup", DurationSeconds: 200},
				},
			},
			{Title: "Empty"},
			{
				Title: "Basics",
				Lectures: []Lecture{
					{Title: "Variables", DurationSeconds: 500},
				},
			},
		},
	}

	c.RecomputeStats()

	assert.Equal(t, 3, c.TotalSections)
	assert.Equal(t, 3, c.TotalLectures)
	assert.Equal(t, int64(1000), c.TotalDurationSeconds)
}

func TestRecomputeStatsEmptyCourse(t *testing.T) {
	c := Course{TotalSections: 5, TotalLectures: 5, TotalDurationSeconds: 5}
	c.RecomputeStats()

	assert.Zero(t, c.TotalSections)
	assert.Zero(t, c.TotalLectures)
	assert.Zero(t, c.TotalDurationSeconds)
}

func TestIsPublished(t *testing.T) {
	assert.True(t, (&Course{State: StatePublished}).IsPublished())
	assert.False(t, (&Course{State: StateDraft}).IsPublished())
	assert.False(t, (&Course{State: StatePublished, IsDeleted: true}).IsPublished())
	assert.False(t, (&Course{State: StateArchived}).IsPublished())
}
