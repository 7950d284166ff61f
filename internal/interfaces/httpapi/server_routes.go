package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// Draft-room reads stay public so spectators can follow a draft by link;
// everything that mutates or is scoped to an owner requires a token.
func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/modes/{mode}/players", handler.ListModePlayers)
	mux.HandleFunc("GET /v1/drafts/{draftID}", handler.GetDraft)
	mux.HandleFunc("GET /v1/drafts/{draftID}/players", handler.ListAvailablePlayers)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/drafts", RequireAuth(verifier, http.HandlerFunc(handler.CreateDraft)))
	mux.Handle("GET /v1/drafts", RequireAuth(verifier, http.HandlerFunc(handler.ListMyDrafts)))
	mux.Handle("DELETE /v1/drafts/{draftID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteDraft)))
	mux.Handle("POST /v1/drafts/{draftID}/picks", RequireAuth(verifier, http.HandlerFunc(handler.SelectPlayer)))
	mux.Handle("POST /v1/drafts/{draftID}/autopick", RequireAuth(verifier, http.HandlerFunc(handler.AutoPick)))
}
