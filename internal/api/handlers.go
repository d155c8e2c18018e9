package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Gulur101/quran-toolkit/internal/mushaf"
	"github.com/Gulur101/quran-toolkit/internal/ranking"
	"github.com/Gulur101/quran-toolkit/internal/store"
	"github.com/Gulur101/quran-toolkit/internal/utils"
)

const maxBodyBytes = 1 << 16

var errFractionalPage = errors.New("page must be a whole number")

type createRequest struct {
	Name string `json:"name"`
}

type updateRequest struct {
	CurrentPage PageValue `json:"currentPage"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Leaderboard is the body of GET /leaderboard.
type Leaderboard struct {
	Standings []ranking.Ranked `json:"standings"`
	Summary   ranking.Summary  `json:"summary"`
}

// PageValue accepts a page as a JSON number or a numeric string. Missing,
// null, empty or non-numeric values decode to 0, which leaves the page
// unchanged.
type PageValue int

func (p *PageValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*p = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
		if s == "" {
			*p = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		*p = 0
		return nil
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return errFractionalPage
	}
	if math.Abs(f) > math.MaxInt32 {
		return store.ErrPageOutOfRange
	}
	*p = PageValue(int(f))
	return nil
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	standings := mushaf.DeriveAll(s.store.List())
	body, err := json.Marshal(standings)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	etag := utils.ETag(body)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(append(body, '\n'))
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, err := s.store.Create(r.Context(), req.Name)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}
	p, err := s.store.Get(id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mushaf.Derive(p))
}

func (s *Server) handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}
	if _, err := s.store.Get(id); err != nil {
		s.storeError(w, r, err)
		return
	}
	var req updateRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, err := s.store.UpdatePage(r.Context(), id, int(req.CurrentPage))
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleRenameUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}
	var req createRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, err := s.store.Rename(r.Context(), id, req.Name)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}
	p, err := s.store.Delete(r.Context(), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ranked, summary := ranking.Board(s.store.List())
	writeJSON(w, http.StatusOK, Leaderboard{Standings: ranked, Summary: summary})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.PathValue("page"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "page must be a number"})
		return
	}
	writeJSON(w, http.StatusOK, mushaf.Lookup(page))
}

func (s *Server) handleSurahs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mushaf.Sections())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a JSON body into v, answering 400 itself on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	data, err := readBody(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not read body"})
		return false
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return true
	}
	if err := json.Unmarshal(data, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		msg := "invalid JSON body"
		if errors.As(err, &typeErr) || errors.Is(err, store.ErrPageOutOfRange) || errors.Is(err, errFractionalPage) {
			msg = err.Error()
		}
		s.logger.Debug("Rejected request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return false
	}
	return true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return buf.Bytes(), err
}

func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		notFound(w)
	case errors.Is(err, store.ErrNameRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Name required"})
	case errors.Is(err, store.ErrPageOutOfRange):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.internalError(w, r, err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("Request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func notFound(w http.ResponseWriter) {
	http.Error(w, "Not found", http.StatusNotFound)
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
