// Package ghtest provides a mock GitHub GraphQL server for tests.
package ghtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/HiDeoo/hideoo.dev/internal/gh"
)

type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data any `json:"data"`
}

// Server answers the handful of queries issued by the gh package with canned
// data.
type Server struct {
	t testing.TB

	// Pages are served in order: the first request gets Pages[0] and a request
	// with the end cursor of Pages[i] gets Pages[i+1].
	Pages         []gh.RepositoryPage
	Recent        []gh.RepositoryNode
	Contributions []gh.RepositoryContributions
	ViewerLogin   string
	// Status, when non-zero, is returned for every request instead of data.
	Status int

	mu       sync.Mutex
	requests []Request

	*httptest.Server
}

func NewServer(t testing.TB) *Server {
	s := &Server{t: t, ViewerLogin: "HiDeoo"}
	s.Server = httptest.NewServer(s)
	t.Cleanup(s.Close)
	return s
}

// Endpoint is the GraphQL endpoint to configure the client with.
func (s *Server) Endpoint() string {
	return s.URL + "/graphql"
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.t.Logf("Failed to decode request: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.Status != 0 {
		w.WriteHeader(s.Status)
		return
	}
	if r.Header.Get("Authorization") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var data any
	switch {
	case strings.Contains(req.Query, "contributionsCollection"):
		data = s.contributions()
	case strings.Contains(req.Query, "pageInfo"):
		page, ok := s.page(req.Variables["after"])
		if !ok {
			s.t.Logf("Received unknown cursor: %v", req.Variables["after"])
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		data = map[string]any{"viewer": map[string]any{"repositories": page}}
	case strings.Contains(req.Query, "CREATED_AT"):
		data = s.recent(req.Variables["count"])
	case strings.Contains(req.Query, "viewer{"):
		data = map[string]any{"viewer": map[string]any{"name": s.ViewerLogin, "login": s.ViewerLogin}}
	default:
		s.t.Logf("Received unexpected query: %s", req.Query)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(graphqlResponse{Data: data}); err != nil {
		s.t.Logf("Failed to encode response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) page(after any) (gh.RepositoryPage, bool) {
	if after == nil {
		if len(s.Pages) == 0 {
			return gh.RepositoryPage{}, true
		}
		return s.Pages[0], true
	}
	cursor, _ := after.(string)
	for i, page := range s.Pages {
		if page.PageInfo.EndCursor != nil && *page.PageInfo.EndCursor == cursor && i+1 < len(s.Pages) {
			return s.Pages[i+1], true
		}
	}
	return gh.RepositoryPage{}, false
}

func (s *Server) recent(count any) any {
	nodes := s.Recent
	// JSON numbers decode as float64.
	if n, ok := count.(float64); ok && int(n) < len(nodes) {
		nodes = nodes[:int(n)]
	}
	return map[string]any{"viewer": map[string]any{"repositories": map[string]any{"nodes": nodes}}}
}

func (s *Server) contributions() any {
	return map[string]any{
		"viewer": map[string]any{
			"contributionsCollection": map[string]any{
				"pullRequestContributionsByRepository": s.Contributions,
			},
		},
	}
}
