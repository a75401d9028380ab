package report

import (
	"testing"

	"benchgate/internal/results"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setOf(pairs map[string][]float64) results.Set {
	set := results.Set{}
	for name, samples := range pairs {
		set.Add(name, samples...)
	}
	return set
}

func TestCompareClassification(t *testing.T) {
	base := setOf(map[string][]float64{
		"Faster":  {1000},
		"Slower":  {1000},
		"Steady":  {1000},
		"Dropped": {500},
	})
	head := setOf(map[string][]float64{
		"Faster": {800},  // -20%
		"Slower": {1200}, // +20%
		"Steady": {1050}, // +5%
		"Added":  {300},
	})

	c := Compare(base, head)
	require.Len(t, c.Rows, 5)

	// Union order is lexicographic.
	names := make([]string, 0, len(c.Rows))
	for _, r := range c.Rows {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Added", "Dropped", "Faster", "Slower", "Steady"}, names)

	byName := map[string]Row{}
	for _, r := range c.Rows {
		byName[r.Name] = r
	}

	assert.Equal(t, Improved, byName["Faster"].Outcome)
	assert.Equal(t, Regressed, byName["Slower"].Outcome)
	assert.Equal(t, Neutral, byName["Steady"].Outcome)
	assert.Equal(t, Incomparable, byName["Added"].Outcome)
	assert.False(t, byName["Added"].HasBase)
	assert.Equal(t, Incomparable, byName["Dropped"].Outcome)
	assert.False(t, byName["Dropped"].HasHead)
}

func TestCompareThresholdBoundary(t *testing.T) {
	base := setOf(map[string][]float64{"B": {1000}})

	// Exactly +10% is not a regression.
	c := Compare(base, setOf(map[string][]float64{"B": {1100}}))
	assert.Equal(t, Neutral, c.Rows[0].Outcome)

	// The tiniest step past the threshold is.
	c = Compare(base, setOf(map[string][]float64{"B": {1100.001}}))
	assert.Equal(t, Regressed, c.Rows[0].Outcome)

	// Same strictness on the improvement side.
	c = Compare(base, setOf(map[string][]float64{"B": {900}}))
	assert.Equal(t, Neutral, c.Rows[0].Outcome)

	c = Compare(base, setOf(map[string][]float64{"B": {899.99}}))
	assert.Equal(t, Improved, c.Rows[0].Outcome)
}

func TestCompareThroughputScenario(t *testing.T) {
	baseDoc := `[{"benchmark": "Enforce", "primaryMetric": {"score": 1000000, "scoreUnit": "ops/s"}}]`
	headDoc := `[{"benchmark": "Enforce", "primaryMetric": {"score": 500000, "scoreUnit": "ops/s"}}]`

	c := Compare(results.Parse([]byte(baseDoc)), results.Parse([]byte(headDoc)))
	require.Len(t, c.Rows, 1)

	r := c.Rows[0]
	assert.InDelta(t, 1000, r.BaseMean, 1e-9)
	assert.InDelta(t, 2000, r.HeadMean, 1e-9)
	assert.InDelta(t, 1.0, r.Diff, 1e-9)
	assert.Equal(t, Regressed, r.Outcome)
	assert.Equal(t, "+100.00%", diffCell(r))
}

func TestCompareZeroBaseMean(t *testing.T) {
	base := setOf(map[string][]float64{"Idle": {0}})
	head := setOf(map[string][]float64{"Idle": {500}})

	c := Compare(base, head)
	require.Len(t, c.Rows, 1)
	assert.False(t, c.Rows[0].HasDiff)
	assert.Equal(t, Neutral, c.Rows[0].Outcome)
	assert.Equal(t, "-", diffCell(c.Rows[0]))
}

func TestCompareEmptyAggregate(t *testing.T) {
	base := results.Set{}
	base.Add("Hollow") // aggregate exists but holds no samples
	head := setOf(map[string][]float64{"Hollow": {100}})

	c := Compare(base, head)
	require.Len(t, c.Rows, 1)
	assert.Equal(t, Incomparable, c.Rows[0].Outcome)
}

func TestCompareThresholdFunc(t *testing.T) {
	base := setOf(map[string][]float64{"Loose": {1000}, "Tight": {1000}})
	head := setOf(map[string][]float64{"Loose": {1300}, "Tight": {1300}})

	c := Compare(base, head, WithThresholdFunc(func(name string) float64 {
		if name == "Loose" {
			return 0.50
		}
		return DefaultThreshold
	}))

	byName := map[string]Row{}
	for _, r := range c.Rows {
		byName[r.Name] = r
	}
	assert.Equal(t, Neutral, byName["Loose"].Outcome)
	assert.Equal(t, Regressed, byName["Tight"].Outcome)
}

func TestCompareDeterminism(t *testing.T) {
	base := setOf(map[string][]float64{"a": {1}, "b": {2}, "c": {3}, "d": {4}})
	head := setOf(map[string][]float64{"c": {3}, "e": {5}, "a": {2}})

	first := Compare(base, head, WithRevisions("abcdef0123", "9876543210")).Text()
	for i := 0; i < 10; i++ {
		again := Compare(base, head, WithRevisions("abcdef0123", "9876543210")).Text()
		assert.Equal(t, first, again)
	}
}

func TestCounts(t *testing.T) {
	base := setOf(map[string][]float64{"I": {1000}, "R": {1000}, "N": {1000}, "Gone": {1}})
	head := setOf(map[string][]float64{"I": {500}, "R": {2000}, "N": {1000}})

	imp, reg, neu, inc := Compare(base, head).Counts()
	assert.Equal(t, 1, imp)
	assert.Equal(t, 1, reg)
	assert.Equal(t, 1, neu)
	assert.Equal(t, 1, inc)
}

func TestRegressionsWorstFirst(t *testing.T) {
	base := setOf(map[string][]float64{"Mild": {1000}, "Bad": {1000}, "Fine": {1000}})
	head := setOf(map[string][]float64{"Mild": {1200}, "Bad": {3000}, "Fine": {1000}})

	regs := Compare(base, head).Regressions()
	require.Len(t, regs, 2)
	assert.Equal(t, "Bad", regs[0].Name)
	assert.Equal(t, "Mild", regs[1].Name)
}
