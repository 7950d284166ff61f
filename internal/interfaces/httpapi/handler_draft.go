package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/andrasetya/draft-league/internal/usecase"
)

func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDraft")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createDraftRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	d, err := h.draftService.CreateDraft(ctx, usecase.CreateDraftInput{
		Name:              req.Name,
		Mode:              req.Mode,
		TeamCount:         req.TeamCount,
		Owner:             principal,
		OwnerTeamName:     req.TeamName,
		OpponentTeamNames: req.OpponentTeamNames,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create draft failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, draftToDTO(ctx, d))
}

func (h *Handler) ListMyDrafts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyDrafts")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	drafts, err := h.draftService.ListDraftsByOwner(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list drafts failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftsToDTO(ctx, drafts))
}

func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraft")
	defer span.End()

	draftID := strings.TrimSpace(r.PathValue("draftID"))

	d, err := h.draftService.GetDraft(ctx, draftID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(ctx, d))
}

func (h *Handler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteDraft")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	draftID := strings.TrimSpace(r.PathValue("draftID"))
	if err := h.draftService.DeleteDraft(ctx, draftID, principal.UserID); err != nil {
		h.logger.WarnContext(ctx, "delete draft failed", "user_id", principal.UserID, "draft_id", draftID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) SelectPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectPlayer")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req selectPlayerRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	draftID := strings.TrimSpace(r.PathValue("draftID"))
	d, err := h.draftService.SelectPlayer(ctx, usecase.SelectPlayerInput{
		DraftID:  draftID,
		PlayerID: req.PlayerID,
		TeamID:   req.TeamID,
		Slot:     req.Slot,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "select player failed",
			"user_id", principal.UserID,
			"draft_id", draftID,
			"player_id", req.PlayerID,
			"team_id", req.TeamID,
			"slot", req.Slot,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(ctx, d))
}

func (h *Handler) AutoPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AutoPick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	draftID := strings.TrimSpace(r.PathValue("draftID"))
	d, err := h.draftService.AutoPick(ctx, draftID)
	if err != nil {
		h.logger.WarnContext(ctx, "auto pick failed", "user_id", principal.UserID, "draft_id", draftID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftToDTO(ctx, d))
}
