package teamname

var defaultStates = []string{
	"SP", "RJ", "MG", "RS", "PR", "SC", "BA", "PE", "CE", "GO",
	"DF", "ES", "AM", "PA", "MT", "MS", "AL", "SE", "RN", "PB",
	"PI", "MA", "TO", "RO", "AC", "RR", "AP",
}

var defaultAliases = []Alias{
	{Variant: "palmeiras-sp", Canonical: "Palmeiras"},
	{Variant: "se palmeiras", Canonical: "Palmeiras"},
	{Variant: "sociedade esportiva palmeiras", Canonical: "Palmeiras"},
	{Variant: "palmeiras", Canonical: "Palmeiras"},

	{Variant: "corinthians-sp", Canonical: "Corinthians"},
	{Variant: "sport club corinthians paulista", Canonical: "Corinthians"},
	{Variant: "sc corinthians paulista", Canonical: "Corinthians"},
	{Variant: "corinthians", Canonical: "Corinthians"},

	{Variant: "sao paulo-sp", Canonical: "São Paulo"},
	{Variant: "sao paulo", Canonical: "São Paulo"},
	{Variant: "são paulo fc", Canonical: "São Paulo"},
	{Variant: "são paulo", Canonical: "São Paulo"},
	{Variant: "spfc", Canonical: "São Paulo"},

	{Variant: "flamengo-rj", Canonical: "Flamengo"},
	{Variant: "clube de regatas do flamengo", Canonical: "Flamengo"},
	{Variant: "cr flamengo", Canonical: "Flamengo"},
	{Variant: "flamengo", Canonical: "Flamengo"},

	{Variant: "fluminense-rj", Canonical: "Fluminense"},
	{Variant: "fluminense football club", Canonical: "Fluminense"},
	{Variant: "fluminense fc", Canonical: "Fluminense"},
	{Variant: "fluminense", Canonical: "Fluminense"},

	{Variant: "botafogo-rj", Canonical: "Botafogo"},
	{Variant: "botafogo de futebol e regatas", Canonical: "Botafogo"},
	{Variant: "botafogo fr", Canonical: "Botafogo"},
	{Variant: "botafogo", Canonical: "Botafogo"},

	{Variant: "vasco-rj", Canonical: "Vasco da Gama"},
	{Variant: "vasco da gama-rj", Canonical: "Vasco da Gama"},
	{Variant: "club de regatas vasco da gama", Canonical: "Vasco da Gama"},
	{Variant: "cr vasco da gama", Canonical: "Vasco da Gama"},
	{Variant: "vasco da gama", Canonical: "Vasco da Gama"},
	{Variant: "vasco", Canonical: "Vasco da Gama"},

	{Variant: "gremio-rs", Canonical: "Grêmio"},
	{Variant: "grêmio-rs", Canonical: "Grêmio"},
	{Variant: "gremio fbpa", Canonical: "Grêmio"},
	{Variant: "grêmio fbpa", Canonical: "Grêmio"},
	{Variant: "gremio", Canonical: "Grêmio"},
	{Variant: "grêmio", Canonical: "Grêmio"},

	{Variant: "internacional-rs", Canonical: "Internacional"},
	{Variant: "sport club internacional", Canonical: "Internacional"},
	{Variant: "sc internacional", Canonical: "Internacional"},
	{Variant: "internacional", Canonical: "Internacional"},
	{Variant: "inter", Canonical: "Internacional"},

	{Variant: "atletico-mg", Canonical: "Atlético Mineiro"},
	{Variant: "atlético-mg", Canonical: "Atlético Mineiro"},
	{Variant: "atletico mineiro", Canonical: "Atlético Mineiro"},
	{Variant: "atlético mineiro", Canonical: "Atlético Mineiro"},
	{Variant: "clube atletico mineiro", Canonical: "Atlético Mineiro"},
	{Variant: "atletico-mg", Canonical: "Atlético Mineiro"},
	{Variant: "galo", Canonical: "Atlético Mineiro"},

	{Variant: "cruzeiro-mg", Canonical: "Cruzeiro"},
	{Variant: "cruzeiro esporte clube", Canonical: "Cruzeiro"},
	{Variant: "cruzeiro ec", Canonical: "Cruzeiro"},
	{Variant: "cruzeiro", Canonical: "Cruzeiro"},

	{Variant: "santos-sp", Canonical: "Santos"},
	{Variant: "santos fc", Canonical: "Santos"},
	{Variant: "santos futebol clube", Canonical: "Santos"},
	{Variant: "santos", Canonical: "Santos"},

	{Variant: "atletico-pr", Canonical: "Atlético Paranaense"},
	{Variant: "atlético-pr", Canonical: "Atlético Paranaense"},
	{Variant: "atletico paranaense", Canonical: "Atlético Paranaense"},
	{Variant: "atlético paranaense", Canonical: "Atlético Paranaense"},
	{Variant: "club athletico paranaense", Canonical: "Atlético Paranaense"},
	{Variant: "cap", Canonical: "Atlético Paranaense"},

	{Variant: "bahia-ba", Canonical: "Bahia"},
	{Variant: "esporte clube bahia", Canonical: "Bahia"},
	{Variant: "ec bahia", Canonical: "Bahia"},
	{Variant: "bahia", Canonical: "Bahia"},

	{Variant: "vitoria-ba", Canonical: "Vitória"},
	{Variant: "vitória-ba", Canonical: "Vitória"},
	{Variant: "esporte clube vitoria", Canonical: "Vitória"},
	{Variant: "vitoria", Canonical: "Vitória"},
	{Variant: "vitória", Canonical: "Vitória"},

	{Variant: "sport-pe", Canonical: "Sport Recife"},
	{Variant: "sport club do recife", Canonical: "Sport Recife"},
	{Variant: "sport recife", Canonical: "Sport Recife"},
	{Variant: "sport", Canonical: "Sport Recife"},

	{Variant: "ceara-ce", Canonical: "Ceará"},
	{Variant: "ceará-ce", Canonical: "Ceará"},
	{Variant: "ceara sporting club", Canonical: "Ceará"},
	{Variant: "ceara", Canonical: "Ceará"},
	{Variant: "ceará", Canonical: "Ceará"},

	{Variant: "fortaleza-ce", Canonical: "Fortaleza"},
	{Variant: "fortaleza esporte clube", Canonical: "Fortaleza"},
	{Variant: "fortaleza ec", Canonical: "Fortaleza"},
	{Variant: "fortaleza", Canonical: "Fortaleza"},

	{Variant: "coritiba-pr", Canonical: "Coritiba"},
	{Variant: "coritiba foot ball club", Canonical: "Coritiba"},
	{Variant: "coritiba fc", Canonical: "Coritiba"},
	{Variant: "coritiba", Canonical: "Coritiba"},

	{Variant: "avai-sc", Canonical: "Avaí"},
	{Variant: "avaí-sc", Canonical: "Avaí"},
	{Variant: "avai futebol clube", Canonical: "Avaí"},
	{Variant: "avai", Canonical: "Avaí"},
	{Variant: "avaí", Canonical: "Avaí"},

	{Variant: "chapecoense-sc", Canonical: "Chapecoense"},
	{Variant: "associacao chapecoense de futebol", Canonical: "Chapecoense"},
	{Variant: "chapecoense", Canonical: "Chapecoense"},
	{Variant: "chape", Canonical: "Chapecoense"},

	{Variant: "goias-go", Canonical: "Goiás"},
	{Variant: "goiás-go", Canonical: "Goiás"},
	{Variant: "goias esporte clube", Canonical: "Goiás"},
	{Variant: "goias", Canonical: "Goiás"},
	{Variant: "goiás", Canonical: "Goiás"},
}

// DefaultAliasTable returns the built-in table of Brazilian clubs and the 27
// state and federal district codes.
func DefaultAliasTable() *AliasTable {
	return NewAliasTable(defaultAliases, defaultStates)
}
