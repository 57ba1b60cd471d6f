package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.SearchMatches)
	mux.HandleFunc("GET /v1/matches/biggest-wins", handler.BiggestWins)
	mux.HandleFunc("GET /v1/matches/average-goals", handler.AverageGoals)
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/competitions/{competition}/standings", handler.GetCompetitionStandings)
	mux.HandleFunc("GET /v1/rankings/goals", handler.GoalRankings)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{team}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{team}/stats", handler.GetTeamStats)
	mux.HandleFunc("GET /v1/teams/{team}/home-record", handler.GetTeamHomeRecord)
	mux.HandleFunc("GET /v1/teams/{team}/away-record", handler.GetTeamAwayRecord)
	mux.HandleFunc("GET /v1/head-to-head", handler.HeadToHead)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/brazilians-at-brazilian-clubs", handler.BrazilianPlayersAtBrazilianClubs)
}
