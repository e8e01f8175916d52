package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/GardenPlanner_Go/internal/domain"
)

// maxSuggestDistance bounds how far a misspelling may be from a crop name
// before no suggestion is offered.
const maxSuggestDistance = 3

type candidate struct {
	kind  domain.CropKind
	score float64
}

// Resolve maps free text ("Spicy Pepper", "spicy-pepper", "pepper", "tomatoe")
// to a crop kind. Exact and unique prefix or near matches resolve; anything
// else fails with domain.ErrUnknownCrop, naming the closest crop if one exists.
func (t *Table) Resolve(name string) (domain.CropKind, error) {
	token := normalizeName(name)
	if token == "" {
		return domain.CropNone, fmt.Errorf(ErrFmtNoMatch, domain.ErrUnknownCrop, name)
	}

	results := make([]candidate, 0, len(t.cropOrder))
	for _, kind := range t.cropOrder {
		score, ok := matchScore(token, kind, normalizeName(t.crops[kind].Name))
		if ok {
			results = append(results, candidate{kind: kind, score: score})
		}
	}

	if len(results) == 0 {
		if best, ok := t.closest(token); ok {
			return domain.CropNone, fmt.Errorf(ErrFmtNoMatchSuggest, domain.ErrUnknownCrop, name, best)
		}
		return domain.CropNone, fmt.Errorf(ErrFmtNoMatch, domain.ErrUnknownCrop, name)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].kind < results[j].kind
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	if best.score < 1.0 && len(results) > 1 && best.score-results[1].score < 0.05 {
		return domain.CropNone, fmt.Errorf(ErrFmtAmbiguousMatch, domain.ErrUnknownCrop, name, best.kind, results[1].kind)
	}
	return best.kind, nil
}

// matchScore rates token against a crop's kind and display name
func matchScore(token string, kind domain.CropKind, display string) (float64, bool) {
	k := string(kind)
	switch {
	case token == k || token == display:
		return 1.0, true
	case len(token) >= 3 && (strings.HasPrefix(k, token) || strings.HasSuffix(k, "_"+token)):
		return 0.9, true
	}

	dist := levenshtein.ComputeDistance(token, k)
	if dist > levenshteinLimit(len(k)) {
		return 0, false
	}
	return 0.72 - 0.08*float64(dist), true
}

// closest returns the crop nearest to token by edit distance, within maxSuggestDistance
func (t *Table) closest(token string) (domain.CropKind, bool) {
	best := domain.CropNone
	bestDist := maxSuggestDistance + 1
	for _, kind := range t.cropOrder {
		if d := levenshtein.ComputeDistance(token, string(kind)); d < bestDist {
			best, bestDist = kind, d
		}
	}
	return best, best != domain.CropNone
}

func levenshteinLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}

// ResolveFertiliser maps free text to a fertiliser kind by kind or display name
func (t *Table) ResolveFertiliser(name string) (domain.FertiliserKind, error) {
	token := normalizeName(name)
	for _, kind := range t.fertOrder {
		if token == string(kind) || token == normalizeName(t.fertilisers[kind].Name) {
			return kind, nil
		}
	}
	return domain.FertiliserNone, fmt.Errorf(ErrFmtUnknownFertiliserKind, domain.ErrUnknownFertiliser, name)
}
