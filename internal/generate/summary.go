package generate

import (
	"github.com/EmpoweredVote/senkyo-guide/internal/electiondocs"
	"github.com/EmpoweredVote/senkyo-guide/internal/registry"
)

// BuildSummaries projects each prefecture to its index entry, keeping the
// order of prefs. The block name is resolved from the registry.
func BuildSummaries(prefs []electiondocs.Prefecture) []electiondocs.PrefectureSummary {
	out := make([]electiondocs.PrefectureSummary, 0, len(prefs))
	for _, p := range prefs {
		s := p.Summary()
		s.BlockName = registry.BlockName(p.BlockCode)
		out = append(out, s)
	}
	return out
}
