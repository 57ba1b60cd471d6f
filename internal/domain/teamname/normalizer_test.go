package teamname

import (
	"slices"
	"sync"
	"testing"
)

func TestNormalize_CanonicalNamesAreIdempotent(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil)
	for _, canonical := range n.Table().Canonicals() {
		if got := n.Normalize(canonical); got != canonical {
			t.Fatalf("Normalize(%q)=%q, want unchanged", canonical, got)
		}
		if got := n.Normalize(n.Normalize(canonical)); got != canonical {
			t.Fatalf("double Normalize(%q)=%q", canonical, got)
		}
	}
}

func TestNormalize_Variants(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "state suffix", in: "Palmeiras-SP", want: "Palmeiras"},
		{name: "short official", in: "SE Palmeiras", want: "Palmeiras"},
		{name: "long official", in: "Sociedade Esportiva Palmeiras", want: "Palmeiras"},
		{name: "padded long form", in: "  Clube de Regatas do Flamengo  ", want: "Flamengo"},
		{name: "internal whitespace", in: "Clube   de Regatas\tdo  Flamengo", want: "Flamengo"},
		{name: "mixed case", in: "fLuMiNeNsE", want: "Fluminense"},
		{name: "abbreviation", in: "SPFC", want: "São Paulo"},
		{name: "nickname", in: "Galo", want: "Atlético Mineiro"},
		{name: "diacritics", in: "GRÊMIO FBPA", want: "Grêmio"},
		{name: "unaccented", in: "gremio", want: "Grêmio"},
		{name: "suffix on alias", in: "Inter-RS", want: "Internacional"},
		{name: "suffix on canonical with accent", in: "São Paulo-SP", want: "São Paulo"},
		{name: "unknown team keeps spelling", in: "  Ituano FC ", want: "Ituano FC"},
		{name: "unknown state suffix", in: "Flamengo-XX", want: "Flamengo-XX"},
		{name: "empty", in: "", want: ""},
		{name: "blank", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_AliasConvergence(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil)
	a := n.Normalize("Palmeiras-SP")
	b := n.Normalize("SE Palmeiras")
	c := n.Normalize("Sociedade Esportiva Palmeiras")
	if a != "Palmeiras" || b != a || c != a {
		t.Fatalf("expected all variants to converge on Palmeiras, got %q %q %q", a, b, c)
	}
}

func TestNormalize_DeterministicUnderConcurrency(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil)
	inputs := []string{"Palmeiras-SP", "cr flamengo", "Unknown FC", "Vasco", "  chape "}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = NewNormalizer(nil).Normalize(in)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for worker := 0; worker < 16; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := 0; round < 50; round++ {
				for i, in := range inputs {
					if got := n.Normalize(in); got != want[i] {
						errs <- in
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for in := range errs {
		t.Fatalf("nondeterministic result for %q", in)
	}
}

func TestExtractState(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil)
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "Flamengo-RJ", want: "RJ", wantOK: true},
		{in: "Palmeiras-sp", want: "SP", wantOK: true},
		{in: "Brasília-DF ", want: "DF", wantOK: true},
		{in: "Flamengo", wantOK: false},
		{in: "Flamengo-ZZ", wantOK: false},
		{in: "Flamengo RJ", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := n.ExtractState(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("ExtractState(%q)=(%q,%v) want=(%q,%v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAliases_ExcludesOwnLowercaseForm(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil)
	got := n.Aliases("Flamengo")
	want := []string{"flamengo-rj", "clube de regatas do flamengo", "cr flamengo"}
	if !slices.Equal(got, want) {
		t.Fatalf("Aliases(Flamengo)=%v want=%v", got, want)
	}

	for _, canonical := range n.Table().Canonicals() {
		for _, alias := range n.Aliases(canonical) {
			if got := n.Normalize(alias); got != canonical {
				t.Fatalf("alias %q of %q normalizes to %q", alias, canonical, got)
			}
		}
	}

	if got := n.Aliases("Nobody FC"); len(got) != 0 {
		t.Fatalf("expected no aliases for unknown team, got %v", got)
	}
}

func TestAliases_DuplicateVariantKeptOnce(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil)
	count := 0
	for _, alias := range n.Aliases("Atlético Mineiro") {
		if alias == "atletico-mg" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected atletico-mg once, got %d", count)
	}
}

func TestNewNormalizer_CustomTable(t *testing.T) {
	t.Parallel()

	table := NewAliasTable([]Alias{
		{Variant: "tricolor", Canonical: "Fluminense"},
		{Variant: "tricolor", Canonical: "São Paulo"},
		{Variant: "mengão", Canonical: "Flamengo"},
	}, []string{"rj", " sp "})
	n := NewNormalizer(table)

	if got := n.Normalize("Tricolor"); got != "Fluminense" {
		t.Fatalf("expected first mapping to win, got %q", got)
	}
	if got := n.Normalize("Mengão-RJ"); got != "Flamengo" {
		t.Fatalf("expected suffix stripping with custom states, got %q", got)
	}
	if got := n.Normalize("flamengo"); got != "Flamengo" {
		t.Fatalf("expected canonical self-mapping, got %q", got)
	}
	if got := n.Normalize("Palmeiras-SP"); got != "Palmeiras-SP" {
		t.Fatalf("custom table must not use built-in aliases, got %q", got)
	}
	if got := n.Aliases("São Paulo"); len(got) != 0 {
		t.Fatalf("expected shadowed variant to be dropped, got %v", got)
	}
	if got := table.States(); !slices.Equal(got, []string{"RJ", "SP"}) {
		t.Fatalf("unexpected states: %v", got)
	}
	if _, ok := n.ExtractState("Bahia-BA"); ok {
		t.Fatalf("BA is not recognized by the custom table")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil)
	got := n.Describe("Vasco da Gama-RJ")
	if got.Name != "Vasco da Gama" || !got.Known || got.State != "RJ" {
		t.Fatalf("unexpected description: %+v", got)
	}
	if len(got.Aliases) == 0 {
		t.Fatalf("expected aliases for Vasco da Gama")
	}

	unknown := n.Describe("Ituano")
	if unknown.Known || unknown.Name != "Ituano" || unknown.Aliases == nil || len(unknown.Aliases) != 0 {
		t.Fatalf("unexpected description for unknown team: %+v", unknown)
	}
}

func TestDefaultAliasTable_States(t *testing.T) {
	t.Parallel()

	if got := len(DefaultAliasTable().States()); got != 27 {
		t.Fatalf("expected 27 state codes, got %d", got)
	}
}
