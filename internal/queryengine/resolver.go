package queryengine

import (
	"slices"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSimilarityCutoff is the minimum ratio a candidate must reach.
const DefaultSimilarityCutoff = 0.6

// Resolver picks the known team name most similar to a query. Names and
// queries are compared case- and accent-insensitively. Candidates are scanned
// in lexicographic order and only a strictly higher ratio replaces the current
// best, so ties go to the lexicographically smallest name.
type Resolver struct {
	names  []string
	keys   [][]string
	cutoff float64
}

func NewResolver(names []string, cutoff float64) *Resolver {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultSimilarityCutoff
	}

	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	keys := make([][]string, len(sorted))
	for i, name := range sorted {
		keys[i] = comparisonKey(name)
	}

	return &Resolver{names: sorted, keys: keys, cutoff: cutoff}
}

func (r *Resolver) Cutoff() float64 {
	return r.cutoff
}

// Resolve applies the resolver's own cutoff.
func (r *Resolver) Resolve(query string) (string, bool) {
	return r.ResolveWithCutoff(query, r.cutoff)
}

func (r *Resolver) ResolveWithCutoff(query string, cutoff float64) (string, bool) {
	target := comparisonKey(query)
	if len(target) == 0 || len(r.names) == 0 {
		return "", false
	}

	matcher := difflib.NewMatcher(nil, target)
	best := -1
	bestScore := 0.0
	for i, key := range r.keys {
		matcher.SetSeq1(key)
		if matcher.RealQuickRatio() < cutoff || matcher.QuickRatio() < cutoff {
			continue
		}
		score := matcher.Ratio()
		if score < cutoff {
			continue
		}
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return "", false
	}
	return r.names[best], true
}

// Similarity returns the ratio between two names under the resolver's folding.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(comparisonKey(a), comparisonKey(b)).Ratio()
}

// comparisonKey folds case and strips combining marks, then splits into runes.
func comparisonKey(s string) []string {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripAccents, s)
	if err != nil {
		plain = s
	}
	folded := cases.Fold().String(strings.Join(strings.Fields(plain), " "))

	out := make([]string, 0, len(folded))
	for _, r := range folded {
		out = append(out, string(r))
	}
	return out
}
