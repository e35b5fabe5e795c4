package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedTeamRoutes(mux, handler, verifier)
	registerAuthorizedPlayerRoutes(mux, handler, verifier)
	registerAuthorizedRosterRoutes(mux, handler, verifier)
}

func registerAuthorizedTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
}

func registerAuthorizedPlayerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayersByTeam)))
	mux.Handle("POST /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PUT /v1/teams/{teamID}/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/teams/{teamID}/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))
}

func registerAuthorizedRosterRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/teams/{teamID}/rosters", RequireAuth(verifier, http.HandlerFunc(handler.ListRostersByTeam)))
	mux.Handle("POST /v1/teams/{teamID}/rosters", RequireAuth(verifier, http.HandlerFunc(handler.CreateRoster)))
	mux.Handle("POST /v1/teams/{teamID}/rosters/reconcile", RequireAuth(verifier, http.HandlerFunc(handler.ReconcileRosters)))
	mux.Handle("GET /v1/rosters/{rosterID}", RequireAuth(verifier, http.HandlerFunc(handler.GetRoster)))
	mux.Handle("PUT /v1/rosters/{rosterID}", RequireAuth(verifier, http.HandlerFunc(handler.SaveRoster)))
	mux.Handle("DELETE /v1/rosters/{rosterID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteRoster)))
}
