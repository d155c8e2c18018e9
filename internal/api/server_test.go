package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Gulur101/quran-toolkit/internal/model"
	"github.com/Gulur101/quran-toolkit/internal/mushaf"
	"github.com/Gulur101/quran-toolkit/internal/progress"
	"github.com/Gulur101/quran-toolkit/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	server *Server
	path   string
	logs   *observer.ObservedLogs
}

func newFixture(t *testing.T, seed []model.Participant, opts ...Option) *fixture {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	backend := progress.NewFile(path)
	if seed != nil {
		require.NoError(t, backend.Save(context.Background(), seed))
	}
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	st := store.Open(context.Background(), backend, logger)
	return &fixture{server: NewServer(st, logger, opts...), path: path, logs: logs}
}

func (f *fixture) do(t *testing.T, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCreateAndListUsers(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/users", `{"name":"  Aisha  "}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[model.Participant](t, rec)
	assert.Equal(t, model.Participant{ID: 1, Name: "Aisha", CurrentPage: 1}, created)

	rec = f.do(t, http.MethodPost, "/users", `{"name":"Omar"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	list := decodeBody[[]model.Standing](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "Aisha", list[0].Name)
	assert.Equal(t, 1, list[0].Juz)
	assert.Equal(t, "Al-Fatiha", list[0].Surah)
	assert.Equal(t, "0.2", list[0].Progress)
	assert.Equal(t, 2, list[1].ID)

	data, err := os.ReadFile(f.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Omar"`)
}

func TestCreateRequiresName(t *testing.T) {
	f := newFixture(t, nil)
	for _, body := range []string{`{"name":""}`, `{"name":"   "}`, `{}`, ""} {
		rec := f.do(t, http.MethodPost, "/users", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Name required", decodeBody[errorResponse](t, rec).Error, body)
	}
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(t, http.MethodPost, "/users", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON body", decodeBody[errorResponse](t, rec).Error)
}

func TestListETag(t *testing.T) {
	f := newFixture(t, []model.Participant{{ID: 1, Name: "A", CurrentPage: 10}})

	rec := f.do(t, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	rec = f.do(t, http.MethodGet, "/users", "", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())

	f.do(t, http.MethodPut, "/users/1", `{"currentPage":11}`)
	rec = f.do(t, http.MethodGet, "/users", "", "If-None-Match", etag)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, etag, rec.Header().Get("ETag"))
}

func TestGetUser(t *testing.T) {
	f := newFixture(t, []model.Participant{{ID: 4, Name: "Bilal", CurrentPage: 49}})

	rec := f.do(t, http.MethodGet, "/users/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[model.Standing](t, rec)
	assert.Equal(t, 3, got.Juz)
	assert.Equal(t, "8.1", got.Progress)
	assert.Equal(t, mushaf.FindSection(49).Name(), got.Surah)

	for _, target := range []string{"/users/5", "/users/abc"} {
		rec = f.do(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "Not found\n", rec.Body.String())
	}
}

func TestUpdatePage(t *testing.T) {
	f := newFixture(t, []model.Participant{{ID: 1, Name: "A", CurrentPage: 5}})

	cases := []struct {
		name   string
		body   string
		status int
		page   int
	}{
		{"number", `{"currentPage":120}`, http.StatusOK, 120},
		{"numeric string", `{"currentPage":"121"}`, http.StatusOK, 121},
		{"missing keeps page", `{}`, http.StatusOK, 121},
		{"null keeps page", `{"currentPage":null}`, http.StatusOK, 121},
		{"zero keeps page", `{"currentPage":0}`, http.StatusOK, 121},
		{"non-numeric string keeps page", `{"currentPage":"soon"}`, http.StatusOK, 121},
		{"NaN string keeps page", `{"currentPage":"NaN"}`, http.StatusOK, 121},
		{"last page", `{"currentPage":604}`, http.StatusOK, 604},
		{"above range", `{"currentPage":605}`, http.StatusBadRequest, 604},
		{"negative", `{"currentPage":-3}`, http.StatusBadRequest, 604},
		{"fraction", `{"currentPage":12.5}`, http.StatusBadRequest, 604},
		{"huge", `{"currentPage":1e12}`, http.StatusBadRequest, 604},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPut, "/users/1", tc.body)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
			rec = f.do(t, http.MethodGet, "/users/1", "")
			assert.Equal(t, tc.page, decodeBody[model.Standing](t, rec).CurrentPage)
		})
	}
}

func TestUpdateUnknownUserIsNotFoundBeforeValidation(t *testing.T) {
	f := newFixture(t, nil)
	for _, body := range []string{
		`{"currentPage":9999}`,
		`{"currentPage":12.5}`,
		`{"currentPage":1e12}`,
		`not json`,
	} {
		rec := f.do(t, http.MethodPut, "/users/9", body)
		assert.Equal(t, http.StatusNotFound, rec.Code, body)
	}
}

func TestRenameAndDelete(t *testing.T) {
	f := newFixture(t, []model.Participant{
		{ID: 1, Name: "A", CurrentPage: 5},
		{ID: 2, Name: "B", CurrentPage: 6},
	})

	rec := f.do(t, http.MethodPatch, "/users/2", `{"name":"Bee"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bee", decodeBody[model.Participant](t, rec).Name)

	rec = f.do(t, http.MethodPatch, "/users/2", `{"name":" "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeBody[model.Participant](t, rec).ID)

	rec = f.do(t, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/users", "")
	list := decodeBody[[]model.Standing](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Bee", list[0].Name)
}

func TestLeaderboard(t *testing.T) {
	f := newFixture(t, []model.Participant{
		{ID: 1, Name: "A", CurrentPage: 100},
		{ID: 2, Name: "B", CurrentPage: 300},
		{ID: 3, Name: "C", CurrentPage: 50},
	})

	rec := f.do(t, http.MethodGet, "/leaderboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	board := decodeBody[Leaderboard](t, rec)
	require.Len(t, board.Standings, 3)
	assert.Equal(t, "B", board.Standings[0].Name)
	assert.True(t, board.Standings[0].Leader)
	assert.True(t, board.Standings[1].Second)
	assert.True(t, board.Standings[2].Lagger)
	assert.Equal(t, 3, board.Summary.Participants)
	assert.Equal(t, []string{"B"}, board.Summary.Leaders)
}

func TestPageLookup(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/pages/604", "")
	require.Equal(t, http.StatusOK, rec.Code)
	info := decodeBody[mushaf.PageInfo](t, rec)
	assert.Equal(t, 30, info.Juz)
	assert.Equal(t, "100.0", info.Progress)

	rec = f.do(t, http.MethodGet, "/pages/x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSurahsAndHealth(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/surahs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]mushaf.Section](t, rec), len(mushaf.Sections()))

	rec = f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(t, http.MethodPost, "/leaderboard", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestIDAndAccessLog(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/healthz", "")
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	rec = f.do(t, http.MethodGet, "/healthz", "", RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	entries := f.logs.FilterMessage("Request").FilterField(zap.String("request_id", "abc-123")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
}

func TestCORS(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodOptions, "/users/1", "",
		"Origin", "http://example.test",
		"Access-Control-Request-Method", http.MethodPut)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)

	restricted := newFixture(t, nil, WithAllowedOrigins([]string{"http://good.test"}))
	rec = restricted.do(t, http.MethodGet, "/healthz", "", "Origin", "http://good.test")
	assert.Equal(t, "http://good.test", rec.Header().Get("Access-Control-Allow-Origin"))
	rec = restricted.do(t, http.MethodGet, "/healthz", "", "Origin", "http://evil.test")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPageValueDecoding(t *testing.T) {
	cases := map[string]PageValue{
		`7`:      7,
		`"7"`:    7,
		`" 8 "`:  8,
		`""`:     0,
		`null`:   0,
		`"x"`:    0,
		`true`:   0,
		`600.0`:  600,
		`"42.0"`: 42,
	}
	for in, want := range cases {
		var p PageValue
		require.NoError(t, json.Unmarshal([]byte(in), &p), in)
		assert.Equal(t, want, p, in)
	}

	var p PageValue
	assert.ErrorIs(t, json.Unmarshal([]byte(`1.5`), &p), errFractionalPage)
	assert.ErrorIs(t, json.Unmarshal([]byte(`99999999999`), &p), store.ErrPageOutOfRange)
}

func TestServeStopsOnCancel(t *testing.T) {
	f := newFixture(t, nil, WithShutdownTimeout(time.Second))
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.server.Serve(ctx, ln) }()

	client := &http.Client{Timeout: 2 * time.Second}
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
