package myths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantCategory Category
		wantRegion   Region
	}{
		{
			name:         "nutrition query",
			query:        "is it safe to eat eggs and drink milk while pregnant",
			wantCategory: CategoryNutrition,
			wantRegion:   RegionGlobal,
		},
		{
			name:         "activity query",
			query:        "can I exercise and swim in the second trimester",
			wantCategory: CategoryActivity,
			wantRegion:   RegionGlobal,
		},
		{
			name:         "traditional query with region",
			query:        "my elder in Kenya says herbs make labor faster",
			wantCategory: CategoryTraditional,
			wantRegion:   RegionEastAfrica,
		},
		{
			name:         "symptoms query with region",
			query:        "bad heartburn and nausea, common belief in India",
			wantCategory: CategorySymptoms,
			wantRegion:   RegionSouthAsia,
		},
		{
			name:         "no vocabulary hits falls back to general and global",
			query:        "hello there",
			wantCategory: CategoryGeneral,
			wantRegion:   RegionGlobal,
		},
		{
			name:         "higher score wins over declaration order",
			query:        "heartburn pain and nausea after I eat",
			wantCategory: CategorySymptoms,
			wantRegion:   RegionGlobal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.query)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantRegion, got.Region)
		})
	}
}

func TestSearchRanksByKeywordOverlap(t *testing.T) {
	class, matches := Search("is it safe to eat eggs for protein during pregnancy", 0)
	assert.Equal(t, CategoryNutrition, class.Category)

	require.NotEmpty(t, matches)
	assert.Equal(t, "nutrition-eggs", matches[0].Record.ID)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestSearchRegionFilter(t *testing.T) {
	_, matches := Search("in India people avoid cold curd and citrus fruit, should I eat them", 0)
	require.NotEmpty(t, matches)
	assert.Equal(t, "nutrition-cold-food", matches[0].Record.ID)
	for _, m := range matches {
		assert.Contains(t, []Region{RegionSouthAsia, RegionGlobal}, m.Record.Region)
	}
}

func TestSearchLimit(t *testing.T) {
	_, unlimited := Search("can I exercise, walk and swim or should I rest", 0)
	require.NotEmpty(t, unlimited)

	_, limited := Search("can I exercise, walk and swim or should I rest", 1)
	assert.Len(t, limited, 1)
	assert.Equal(t, unlimited[0].Record.ID, limited[0].Record.ID)
}

func TestSearchZeroOverlapExcluded(t *testing.T) {
	_, matches := Search("food diet meal", 0)
	for _, m := range matches {
		assert.Greater(t, m.Score, 0)
	}
}

func TestSearchDeterministic(t *testing.T) {
	query := "herbs and traditional remedy for labor"
	_, first := Search(query, 0)
	for i := 0; i < 5; i++ {
		_, again := Search(query, 0)
		assert.Equal(t, first, again)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	a := Records()
	require.NotEmpty(t, a)
	a[0].ID = "mutated"
	b := Records()
	assert.NotEqual(t, "mutated", b[0].ID)
}
