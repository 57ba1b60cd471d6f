package teamname

import (
	"slices"
	"strings"
)

// Alias maps one raw spelling of a club to its canonical display name.
type Alias struct {
	Variant   string
	Canonical string
}

// AliasTable is the immutable lookup data used by a Normalizer.
type AliasTable struct {
	lookup     map[string]string
	variants   map[string][]string
	canonicals []string
	states     map[string]struct{}
	stateCodes []string
}

// NewAliasTable builds a table from ordered aliases and recognized state codes.
// Every canonical name also maps from its own lowercase form. When a variant
// appears twice the first mapping wins.
func NewAliasTable(aliases []Alias, states []string) *AliasTable {
	t := &AliasTable{
		lookup:   make(map[string]string, len(aliases)),
		variants: make(map[string][]string),
		states:   make(map[string]struct{}, len(states)),
	}

	for _, item := range aliases {
		canonical := strings.TrimSpace(item.Canonical)
		key := foldKey(item.Variant)
		if canonical == "" || key == "" {
			continue
		}
		if _, ok := t.variants[canonical]; !ok {
			t.variants[canonical] = nil
			t.canonicals = append(t.canonicals, canonical)
		}
		if _, exists := t.lookup[key]; exists {
			continue
		}
		t.lookup[key] = canonical
		if key != strings.ToLower(canonical) {
			t.variants[canonical] = append(t.variants[canonical], key)
		}
	}

	for _, canonical := range t.canonicals {
		self := foldKey(canonical)
		if _, exists := t.lookup[self]; !exists {
			t.lookup[self] = canonical
		}
	}

	for _, code := range states {
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) == 0 {
			continue
		}
		if _, exists := t.states[code]; exists {
			continue
		}
		t.states[code] = struct{}{}
		t.stateCodes = append(t.stateCodes, code)
	}
	slices.Sort(t.stateCodes)

	return t
}

// Canonicals returns canonical names in the order they were first declared.
func (t *AliasTable) Canonicals() []string {
	return slices.Clone(t.canonicals)
}

// States returns the recognized state codes, sorted.
func (t *AliasTable) States() []string {
	return slices.Clone(t.stateCodes)
}

func (t *AliasTable) canonicalFor(key string) (string, bool) {
	name, ok := t.lookup[key]
	return name, ok
}

func (t *AliasTable) variantsOf(canonical string) []string {
	return slices.Clone(t.variants[canonical])
}

func (t *AliasTable) isState(code string) bool {
	_, ok := t.states[code]
	return ok
}

// foldKey lowercases and collapses runs of whitespace to single spaces.
func foldKey(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}
