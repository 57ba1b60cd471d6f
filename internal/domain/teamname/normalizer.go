package teamname

import (
	"strings"
	"sync"
)

// Team describes what the normalizer knows about one raw name.
type Team struct {
	Input   string   `json:"input"`
	Name    string   `json:"name"`
	Known   bool     `json:"known"`
	State   string   `json:"state,omitempty"`
	Aliases []string `json:"aliases"`
}

// Normalizer maps raw team spellings to canonical names. Results are cached
// per raw input for the lifetime of the instance. Safe for concurrent use.
type Normalizer struct {
	table *AliasTable
	cache sync.Map
}

// NewNormalizer returns a normalizer over table, or over the built-in table
// when table is nil.
func NewNormalizer(table *AliasTable) *Normalizer {
	if table == nil {
		table = DefaultAliasTable()
	}
	return &Normalizer{table: table}
}

func (n *Normalizer) Table() *AliasTable {
	return n.table
}

// Normalize returns the canonical name for raw, or raw trimmed when no alias
// matches directly or after stripping a "-<STATE>" suffix.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	if cached, ok := n.cache.Load(raw); ok {
		return cached.(string)
	}

	result, _ := n.lookup(raw)
	actual, _ := n.cache.LoadOrStore(raw, result)
	return actual.(string)
}

func (n *Normalizer) lookup(raw string) (string, bool) {
	key := foldKey(raw)
	if name, ok := n.table.canonicalFor(key); ok {
		return name, true
	}

	for _, code := range n.table.stateCodes {
		suffix := "-" + strings.ToLower(code)
		if !strings.HasSuffix(key, suffix) {
			continue
		}
		base := strings.TrimSpace(strings.TrimSuffix(key, suffix))
		if name, ok := n.table.canonicalFor(base); ok {
			return name, true
		}
	}

	return strings.TrimSpace(raw), false
}

// ExtractState returns the uppercase state code when raw ends with
// "-<CODE>" for a recognized code.
func (n *Normalizer) ExtractState(raw string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	idx := strings.LastIndexByte(upper, '-')
	if idx < 0 {
		return "", false
	}
	code := upper[idx+1:]
	if !n.table.isState(code) {
		return "", false
	}
	return code, true
}

// Aliases lists every known variant of canonical except its own lowercase
// form, in declaration order.
func (n *Normalizer) Aliases(canonical string) []string {
	return n.table.variantsOf(canonical)
}

// IsCanonical reports whether name is one of the table's canonical names.
func (n *Normalizer) IsCanonical(name string) bool {
	_, ok := n.table.variants[name]
	return ok
}

func (n *Normalizer) Describe(raw string) Team {
	name, known := n.lookup(raw)
	if raw != "" {
		n.cache.LoadOrStore(raw, name)
	}
	state, _ := n.ExtractState(raw)
	aliases := n.Aliases(name)
	if aliases == nil {
		aliases = []string{}
	}
	return Team{
		Input:   raw,
		Name:    name,
		Known:   known,
		State:   state,
		Aliases: aliases,
	}
}
