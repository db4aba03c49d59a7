package gh_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/HiDeoo/hideoo.dev/internal/gh"
	"github.com/HiDeoo/hideoo.dev/internal/gh/ghtest"
	"github.com/HiDeoo/hideoo.dev/internal/utils/errutils"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresToken(t *testing.T) {
	_, err := gh.NewClient("", "")
	require.Error(t, err)
}

func TestCallReturnsData(t *testing.T) {
	server := ghtest.NewServer(t)
	client, err := gh.NewClient("token", server.Endpoint())
	require.NoError(t, err)

	data, err := client.Call(context.Background(), "query { viewer{login} }", nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"viewer":{"name":"HiDeoo","login":"HiDeoo"}}`, string(data))
}

func TestCallTransportError(t *testing.T) {
	for _, tt := range []struct {
		name         string
		status       int
		reason       string
		unauthorized bool
	}{
		{"bad gateway", http.StatusBadGateway, "Bad Gateway", false},
		{"unauthorized", http.StatusUnauthorized, "Unauthorized", true},
		{"not found", http.StatusNotFound, "Not Found", false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			server := ghtest.NewServer(t)
			server.Status = tt.status
			client, err := gh.NewClient("token", server.Endpoint())
			require.NoError(t, err)

			_, err = client.RepositoriesPage(context.Background(), nil)
			require.Error(t, err)

			terr, ok := errutils.As[gh.TransportError](err)
			require.True(t, ok, "error should be a TransportError: %v", err)
			require.Equal(t, tt.status, terr.StatusCode)
			require.Equal(t, tt.reason, terr.Reason)
			require.Equal(t, tt.unauthorized, gh.IsHTTPUnauthorized(err))
			require.Len(t, server.Requests(), 1, "failed calls must not be retried")
		})
	}
}

func TestViewer(t *testing.T) {
	server := ghtest.NewServer(t)
	server.ViewerLogin = "octocat"
	client, err := gh.NewClient("token", server.Endpoint())
	require.NoError(t, err)

	viewer, err := client.Viewer(context.Background())
	require.NoError(t, err)
	require.Equal(t, "octocat", viewer.Login)
}

func TestRecentRepositories(t *testing.T) {
	server := ghtest.NewServer(t)
	server.Recent = []gh.RepositoryNode{
		ghtest.Repo("newest", "a", 1),
		ghtest.Repo("newer", "b", 2),
		ghtest.Repo("old", "c", 3),
	}
	client, err := gh.NewClient("token", server.Endpoint())
	require.NoError(t, err)

	nodes, err := client.RecentRepositories(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	require.Equal(t, "newest", nodes[0].Name)
	require.Equal(t, "newer", nodes[1].Name)

	requests := server.Requests()
	require.Len(t, requests, 1)
	require.EqualValues(t, 2, requests[0].Variables["count"])
}
