package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListModePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListModePlayers")
	defer span.End()

	mode := strings.TrimSpace(r.PathValue("mode"))
	players, err := h.playerService.PlayersForMode(ctx, mode)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListAvailablePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAvailablePlayers")
	defer span.End()

	draftID := strings.TrimSpace(r.PathValue("draftID"))
	players, err := h.playerService.AvailablePlayers(ctx, draftID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}
