package portfolio

import "github.com/HiDeoo/hideoo.dev/internal/config"

// PipelineOptsFromConfig builds the pipeline options from the loaded
// configuration.
func PipelineOptsFromConfig() PipelineOpts {
	repos := config.Hideoo.Repositories

	languageOverrides := make(map[string]Overridden, len(repos.LanguageOverrides))
	for _, o := range repos.LanguageOverrides {
		edges := make(Overridden, 0, len(o.Languages))
		for _, l := range o.Languages {
			edges = append(edges, PartialEdge{Name: l.Name, Color: l.Color})
		}
		languageOverrides[o.Repository] = edges
	}

	colorOverrides := make(map[string]string, len(repos.ColorOverrides))
	for _, o := range repos.ColorOverrides {
		colorOverrides[o.Name] = o.Color
	}

	return PipelineOpts{
		Normalizer: NormalizerOpts{
			BanList:           repos.BanList,
			LanguageOverrides: languageOverrides,
			ColorOverrides:    colorOverrides,
		},
		Owner:             config.Hideoo.GitHub.Owner,
		ContributionCount: config.Hideoo.Contributions.Count,
	}
}
