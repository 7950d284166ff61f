package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/andrasetya/draft-league/internal/infrastructure/account/statictoken"
	"github.com/andrasetya/draft-league/internal/infrastructure/repository/memory"
	idgen "github.com/andrasetya/draft-league/internal/platform/id"
	"github.com/andrasetya/draft-league/internal/platform/logging"
	"github.com/andrasetya/draft-league/internal/usecase"
)

const testToken = "test-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	draftRepo := memory.NewDraftRepository()
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	clubs := []string{"Manchester City", "Liverpool", "Real Madrid", "Barcelona"}

	draftSvc := usecase.NewDraftService(draftRepo, playerRepo, clubs, idgen.NewRandomGenerator(), logger)
	playerSvc := usecase.NewPlayerService(playerRepo, draftRepo, clubs, nil, logger)
	handler := NewHandler(draftSvc, playerSvc, logger)
	verifier := statictoken.NewVerifier(map[string]string{testToken: "u1"})

	return NewRouter(handler, verifier, logger, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

type draftEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       draftDTO         `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func decodeDraft(t *testing.T, rec *httptest.ResponseRecorder) draftDTO {
	t.Helper()

	var env draftEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, rec.Body.String())
	}

	return env.Data
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status %d, want 200", rec.Code)
	}
}

func TestRouter_ModePlayersIsPublic(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/v1/modes/premier_league/players", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("mode players status %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var env struct {
		Data []playerDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode players: %v", err)
	}
	if len(env.Data) == 0 {
		t.Fatalf("premier_league pool is empty")
	}
	for _, p := range env.Data {
		if p.League != "Premier League" {
			t.Fatalf("player %s from %s leaked into premier_league pool", p.ID, p.League)
		}
	}
}

func TestRouter_ModePlayersRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/v1/modes/serie_a/players", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown mode status %d, want 400", rec.Code)
	}
}

func TestRouter_AuthRequired(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		token  string
	}{
		{http.MethodPost, "/v1/drafts", ""},
		{http.MethodGet, "/v1/drafts", "wrong-token"},
		{http.MethodDelete, "/v1/drafts/d1", ""},
		{http.MethodPost, "/v1/drafts/d1/picks", ""},
		{http.MethodPost, "/v1/drafts/d1/autopick", ""},
	}
	for _, tc := range tests {
		rec := doRequest(t, router, tc.method, tc.path, tc.token, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s with token %q: status %d, want 401", tc.method, tc.path, tc.token, rec.Code)
		}
	}
}

func TestRouter_DraftLifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/drafts", testToken,
		`{"name": "Friday Draft", "mode": "premier_league", "team_count": 2, "team_name": "My XI"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create draft status %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	created := decodeDraft(t, rec)
	if created.ID == "" || created.Status != "setup" || len(created.Teams) != 2 {
		t.Fatalf("unexpected created draft: %+v", created)
	}
	if created.Teams[0].Name != "My XI" || created.Teams[0].OwnerID != "u1" {
		t.Fatalf("owner team not first: %+v", created.Teams[0])
	}
	if created.CurrentTeamID != created.Teams[0].ID {
		t.Fatalf("currentTeamId %s, want team 0 id %s", created.CurrentTeamID, created.Teams[0].ID)
	}

	// The seed catalog puts Erling Haaland at p1 (Manchester City, FWD).
	rec = doRequest(t, router, http.MethodPost, "/v1/drafts/"+created.ID+"/picks", testToken,
		`{"player_id": "p1", "team_id": "`+created.Teams[0].ID+`", "slot": "ST"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("pick status %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	afterPick := decodeDraft(t, rec)
	if afterPick.Status != "in_progress" || afterPick.CurrentTeamIndex != 1 {
		t.Fatalf("unexpected draft after pick: status=%s index=%d", afterPick.Status, afterPick.CurrentTeamIndex)
	}
	if len(afterPick.Teams[0].Roster) != 1 || afterPick.Teams[0].Roster[0].Slot != "ST" {
		t.Fatalf("unexpected roster after pick: %+v", afterPick.Teams[0].Roster)
	}

	// The picked player must disappear from the available pool; draft-room
	// reads need no token.
	rec = doRequest(t, router, http.MethodGet, "/v1/drafts/"+created.ID+"/players", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("available players status %d, want 200", rec.Code)
	}
	var pool struct {
		Data []playerDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &pool); err != nil {
		t.Fatalf("decode available players: %v", err)
	}
	for _, p := range pool.Data {
		if p.ID == "p1" {
			t.Fatalf("picked player still available")
		}
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/drafts", testToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list drafts status %d, want 200", rec.Code)
	}
	var list struct {
		Data []draftDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode draft list: %v", err)
	}
	if len(list.Data) != 1 || list.Data[0].ID != created.ID {
		t.Fatalf("unexpected draft list: %+v", list.Data)
	}

	rec = doRequest(t, router, http.MethodDelete, "/v1/drafts/"+created.ID, testToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete draft status %d, want 200", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/drafts/"+created.ID, "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get deleted draft status %d, want 404", rec.Code)
	}
}

func TestRouter_PickErrorsMapToStatusCodes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/drafts", testToken,
		`{"name": "Errors", "mode": "premier_league", "team_count": 2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create draft status %d, want 201", rec.Code)
	}
	created := decodeDraft(t, rec)
	teamID := created.Teams[0].ID

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantReason string
	}{
		{
			"unknown player",
			`{"player_id": "nope", "team_id": "` + teamID + `", "slot": "ST"}`,
			http.StatusNotFound,
			"notFound",
		},
		{
			"invalid slot",
			`{"player_id": "p1", "team_id": "` + teamID + `", "slot": "CAM"}`,
			http.StatusBadRequest,
			"invalidInput",
		},
		{
			"missing fields",
			`{"player_id": "p1"}`,
			http.StatusBadRequest,
			"invalidInput",
		},
		{
			"unknown json field",
			`{"player_id": "p1", "team_id": "` + teamID + `", "slot": "ST", "extra": true}`,
			http.StatusBadRequest,
			"invalidInput",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/v1/drafts/"+created.ID+"/picks", testToken, tc.body)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status %d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}

			var env draftEnvelope
			if err := sonic.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode error envelope: %v", err)
			}
			if env.Error == nil || len(env.Error.Errors) != 1 || env.Error.Errors[0].Reason != tc.wantReason {
				t.Fatalf("unexpected error body: %+v", env.Error)
			}
		})
	}
}

func TestRouter_PickRejectedWithInvalidPickReason(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/drafts", testToken,
		`{"name": "Quota", "mode": "premier_league", "team_count": 2}`)
	created := decodeDraft(t, rec)
	teamID := created.Teams[0].ID

	// Seed ids p1/p2/p4 are all Manchester City; the third pick from the
	// same club trips the quota.
	pick := func(playerID, slot string, wantStatus int) *httptest.ResponseRecorder {
		t.Helper()
		rec := doRequest(t, router, http.MethodPost, "/v1/drafts/"+created.ID+"/picks", testToken,
			`{"player_id": "`+playerID+`", "team_id": "`+teamID+`", "slot": "`+slot+`"}`)
		if rec.Code != wantStatus {
			t.Fatalf("pick %s status %d, want %d (body %s)", playerID, rec.Code, wantStatus, rec.Body.String())
		}
		return rec
	}

	pick("p1", "ST", http.StatusOK)
	pick("p2", "CM", http.StatusOK)
	rec = pick("p4", "GK", http.StatusBadRequest)

	var env draftEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if env.Error == nil || env.Error.Errors[0].Reason != "invalidPick" {
		t.Fatalf("unexpected error body: %+v", env.Error)
	}
}
