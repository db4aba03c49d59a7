package portfolio

import (
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	// MaxLanguageStats is the maximum number of languages kept in the
	// language distribution.
	MaxLanguageStats = 8
	// languageVisibilityThreshold is the normalized size at or below which
	// languageVisibilityBoost is added so that small slices remain visible in
	// a chart.
	languageVisibilityThreshold = 10
	languageVisibilityBoost     = 2
)

// LanguageUsage is a language used by a single repository.
type LanguageUsage struct {
	Name   string       `json:"name"`
	Colors ThemedColors `json:"colors"`
}

// LanguageStat is the share of a language across every retained repository.
type LanguageStat struct {
	Name   string       `json:"name"`
	Colors ThemedColors `json:"colors"`
	// Size is the adjusted integer percentage of the language. Sizes do not
	// necessarily sum to 100.
	Size int `json:"size"`
}

type languageTotal struct {
	colors ThemedColors
	size   int
}

// LanguageAccumulator sums the size of each language across repositories.
// It is built up while repositories are normalized and finalized once.
type LanguageAccumulator struct {
	order     []string
	totals    map[string]*languageTotal
	finalized bool
}

func NewLanguageAccumulator() *LanguageAccumulator {
	return &LanguageAccumulator{totals: make(map[string]*languageTotal)}
}

// Add adds size units to the language. The most recently seen colors win.
func (a *LanguageAccumulator) Add(name string, colors ThemedColors, size int) {
	if a.finalized {
		panic("invariant error: cannot add to a finalized language accumulator")
	}
	total, ok := a.totals[name]
	if !ok {
		total = &languageTotal{}
		a.totals[name] = total
		a.order = append(a.order, name)
	}
	total.colors = colors
	total.size += size
}

// Size returns the accumulated raw size of the language.
func (a *LanguageAccumulator) Size(name string) int {
	if total, ok := a.totals[name]; ok {
		return total.size
	}
	return 0
}

// Len returns the number of distinct languages.
func (a *LanguageAccumulator) Len() int {
	return len(a.order)
}

// Finalize converts the raw sizes into the normalized language distribution:
// each size becomes floor(100 * size / total), sizes at or below the
// visibility threshold are boosted, and only the largest MaxLanguageStats
// languages are kept in descending order. Ties keep insertion order.
//
// An accumulator with a zero total size yields an empty distribution.
func (a *LanguageAccumulator) Finalize() []LanguageStat {
	if a.finalized {
		panic("invariant error: language accumulator finalized twice")
	}
	a.finalized = true

	totalSize := 0
	for _, name := range a.order {
		totalSize += a.totals[name].size
	}
	if totalSize == 0 {
		logrus.WithField("languages", len(a.order)).Warn("no language size accumulated, skipping language stats")
		return []LanguageStat{}
	}

	stats := make([]LanguageStat, 0, len(a.order))
	for _, name := range a.order {
		total := a.totals[name]
		size := 100 * total.size / totalSize
		if size <= languageVisibilityThreshold {
			size += languageVisibilityBoost
		}
		stats = append(stats, LanguageStat{Name: name, Colors: total.colors, Size: size})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Size > stats[j].Size
	})
	if len(stats) > MaxLanguageStats {
		stats = stats[:MaxLanguageStats]
	}
	return stats
}
