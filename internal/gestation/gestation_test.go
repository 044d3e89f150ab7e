package gestation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampWeek(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{2, 4}, {-10, 4}, {4, 4}, {20, 20}, {42, 42}, {50, 42},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampWeek(tt.in), "ClampWeek(%d)", tt.in)
	}
}

func TestTrimesterBoundaries(t *testing.T) {
	assert.Equal(t, TrimesterFirst, TrimesterFor(4))
	assert.Equal(t, TrimesterFirst, TrimesterFor(12))
	assert.Equal(t, TrimesterSecond, TrimesterFor(13))
	assert.Equal(t, TrimesterSecond, TrimesterFor(27))
	assert.Equal(t, TrimesterThird, TrimesterFor(28))
	assert.Equal(t, TrimesterThird, TrimesterFor(42))
}

func TestContextForClampsOutOfRangeWeeks(t *testing.T) {
	low := ContextFor(2)
	assert.Equal(t, 4, low.Week)
	assert.Equal(t, "first trimester", low.TrimesterName)

	high := ContextFor(50)
	assert.Equal(t, 42, high.Week)
	assert.Equal(t, "third trimester", high.TrimesterName)
}

func TestNormsForFallsBackToWeek20(t *testing.T) {
	// Week 21 has no row of its own; the fallback entry must be substituted.
	_, hasRow := clinicalNorms[21]
	require.False(t, hasRow, "test requires a sparse week")

	assert.Equal(t, clinicalNorms[FallbackWeek], NormsFor(21))
}

func TestContextForIsDeterministic(t *testing.T) {
	a := ContextFor(24)
	b := ContextFor(24)
	assert.Equal(t, a, b)
}

func TestContextForPopulatesAllFields(t *testing.T) {
	gc := ContextFor(24)
	assert.Equal(t, 24, gc.Week)
	assert.Equal(t, TrimesterSecond, gc.Trimester)
	assert.NotEmpty(t, gc.BabySize)
	assert.NotEmpty(t, gc.KeyDevelopments)
	assert.NotEmpty(t, gc.TypicalSymptoms)
	assert.NotEmpty(t, gc.NormalFetalHeartRate)
	assert.NotEmpty(t, gc.ExpectedMovements)
	assert.Contains(t, gc.WeekDescription, "24 weeks")
}

func TestWeekDescriptionTemplatePerTrimester(t *testing.T) {
	assert.Contains(t, ContextFor(8).WeekDescription, "first trimester")
	assert.Contains(t, ContextFor(20).WeekDescription, "second trimester")
	assert.Contains(t, ContextFor(36).WeekDescription, "third trimester")
}

func TestBuildClinicalContext(t *testing.T) {
	block := BuildClinicalContext(30)

	assert.Contains(t, block, "Gestational week: 30 (third trimester)")
	assert.Contains(t, block, "Blood pressure")
	assert.Contains(t, block, "160/110")
	assert.Contains(t, block, "Amniotic fluid index")
	// Third-trimester hemoglobin cutoff.
	assert.Contains(t, block, "11.0 g/dL")

	// Second trimester uses the lower cutoff.
	assert.Contains(t, BuildClinicalContext(20), "10.5 g/dL")
}

func TestEveryNormsRowIsComplete(t *testing.T) {
	require.Contains(t, clinicalNorms, FallbackWeek)
	for week, entry := range clinicalNorms {
		assert.GreaterOrEqual(t, week, MinWeek)
		assert.LessOrEqual(t, week, MaxWeek)
		assert.NotEmpty(t, entry.BabySize, "week %d", week)
		assert.NotEmpty(t, entry.KeyDevelopments, "week %d", week)
		assert.NotEmpty(t, entry.TypicalSymptoms, "week %d", week)
		assert.NotEmpty(t, entry.Normal.FetalHeartRate, "week %d", week)
	}
}

func TestBuildClinicalContextLineOrder(t *testing.T) {
	block := BuildClinicalContext(12)
	lines := strings.Split(block, "\n")
	require.Greater(t, len(lines), 6)
	assert.True(t, strings.HasPrefix(lines[0], "Gestational week:"))
	assert.True(t, strings.HasPrefix(lines[1], "Baby size:"))
}
