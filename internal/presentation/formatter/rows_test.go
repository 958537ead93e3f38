package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivertam/pants-off-podrick/internal/core/model"
	"github.com/rivertam/pants-off-podrick/internal/core/score"
)

func sampleResult() *score.Result {
	march := model.MonthKey{Year: 2024, Month: time.March}
	return &score.Result{
		Months:  []model.MonthKey{march},
		Authors: []string{"111", "222"},
		Scores: map[model.MonthKey]map[string]*model.MonthlyRecord{
			march: {
				"111": {Morning: 3, Proper: 2, MissedDays: 28},
				"222": {Evening: 1, MissedDays: 30},
			},
		},
	}
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows(sampleResult(), map[string]string{"111": "alice", "222": "bob"})

	require.Len(t, rows, 3)
	assert.True(t, rows[0].IsHeader())
	assert.Equal(t, "March, 2024", rows[0].Month)
	assert.Equal(t, "alice", rows[1].Name)
	assert.Equal(t, 3, rows[1].Morning)
	assert.Equal(t, "bob", rows[2].Name)
	assert.Equal(t, 1, rows[2].Evening)
}

func TestBuildRowsFallsBackToAuthorID(t *testing.T) {
	rows := BuildRows(sampleResult(), map[string]string{"111": "alice"})

	require.Len(t, rows, 3)
	assert.Equal(t, "222", rows[2].Name, "unresolved identity never drops the row")
}
