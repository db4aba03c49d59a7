package portfolio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func statSizes(stats []LanguageStat) map[string]int {
	sizes := make(map[string]int, len(stats))
	for _, stat := range stats {
		sizes[stat.Name] = stat.Size
	}
	return sizes
}

func statNames(stats []LanguageStat) []string {
	var names []string
	for _, stat := range stats {
		names = append(names, stat.Name)
	}
	return names
}

func TestFinalizeVisibilityFloor(t *testing.T) {
	acc := NewLanguageAccumulator()
	acc.Add("A", ThemedColors{}, 95)
	acc.Add("B", ThemedColors{}, 5)

	stats := acc.Finalize()
	require.Equal(t, []string{"A", "B"}, statNames(stats))
	require.Equal(t, map[string]int{"A": 95, "B": 7}, statSizes(stats))
}

func TestFinalizeFloorAppliesAfterTruncation(t *testing.T) {
	acc := NewLanguageAccumulator()
	// 10.9% truncates to 10 and is boosted, 11.1% truncates to 11 and is not.
	acc.Add("A", ThemedColors{}, 781)
	acc.Add("B", ThemedColors{}, 109)
	acc.Add("C", ThemedColors{}, 111)

	stats := acc.Finalize()
	require.Equal(t, map[string]int{"A": 78, "B": 12, "C": 11}, statSizes(stats))
	require.Equal(t, []string{"A", "B", "C"}, statNames(stats))
}

func TestFinalizeAccumulatesAcrossRepositories(t *testing.T) {
	acc := NewLanguageAccumulator()
	acc.Add("Go", ThemedColors{}, 300)
	acc.Add("TypeScript", ThemedColors{}, 500)
	acc.Add("Go", ThemedColors{}, 200)
	require.Equal(t, 500, acc.Size("Go"))
	require.Equal(t, 2, acc.Len())

	stats := acc.Finalize()
	require.Equal(t, map[string]int{"Go": 50, "TypeScript": 50}, statSizes(stats))
	require.Equal(t, []string{"Go", "TypeScript"}, statNames(stats), "ties keep insertion order")
}

func TestFinalizeTopN(t *testing.T) {
	acc := NewLanguageAccumulator()
	names := []string{"L1", "L2", "L3", "L4", "L5", "L6", "L7", "L8", "L9", "L10"}
	sizes := []int{5, 15, 20, 40, 60, 90, 120, 150, 200, 300}
	for i, name := range names {
		acc.Add(name, ThemedColors{}, sizes[i])
	}

	stats := acc.Finalize()
	require.Len(t, stats, MaxLanguageStats)
	require.Equal(t, []string{"L10", "L9", "L8", "L7", "L6", "L5", "L4", "L3"}, statNames(stats))
	require.Equal(t, []int{30, 20, 15, 12, 11, 8, 6, 4}, []int{
		stats[0].Size, stats[1].Size, stats[2].Size, stats[3].Size,
		stats[4].Size, stats[5].Size, stats[6].Size, stats[7].Size,
	})
}

func TestFinalizeZeroTotal(t *testing.T) {
	require.Empty(t, NewLanguageAccumulator().Finalize())

	acc := NewLanguageAccumulator()
	acc.Add("JSON", ThemedColors{}, 0)
	stats := acc.Finalize()
	require.NotNil(t, stats)
	require.Empty(t, stats)
}

func TestFinalizeTwicePanics(t *testing.T) {
	acc := NewLanguageAccumulator()
	acc.Add("Go", ThemedColors{}, 1)
	acc.Finalize()
	require.Panics(t, func() { acc.Finalize() })
	require.Panics(t, func() { acc.Add("Go", ThemedColors{}, 1) })
}

func TestFinalizeKeepsLatestColors(t *testing.T) {
	first, err := DeriveColors("#ff0000")
	require.NoError(t, err)
	second, err := DeriveColors("#0000ff")
	require.NoError(t, err)

	acc := NewLanguageAccumulator()
	acc.Add("Go", first, 1)
	acc.Add("Go", second, 1)

	stats := acc.Finalize()
	require.Len(t, stats, 1)
	require.Equal(t, second, stats[0].Colors)
}
