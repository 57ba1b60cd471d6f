package match

// Format distinguishes round-robin leagues from knockout cups.
type Format string

const (
	FormatLeague  Format = "league"
	FormatCup     Format = "cup"
	FormatUnknown Format = "unknown"
)

const (
	CompetitionBrasileirao  = "Brasileirão Série A"
	CompetitionCopaDoBrasil = "Copa do Brasil"
	CompetitionLibertadores = "Copa Libertadores"
)

var competitionFormats = map[string]Format{
	CompetitionBrasileirao:  FormatLeague,
	CompetitionCopaDoBrasil: FormatCup,
	CompetitionLibertadores: FormatCup,
}

// Competition summarizes one competition present in the data.
type Competition struct {
	Name    string
	Format  Format
	Seasons []int
	Matches int
}

// FormatOf returns the known format of a competition name.
func FormatOf(name string) Format {
	if format, ok := competitionFormats[name]; ok {
		return format
	}
	return FormatUnknown
}
