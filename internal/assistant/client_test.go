package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "A marketplace for vintage synthesizers", req["projectDescription"])
		require.Equal(t, "needs payments", req["extraNotes"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"suggestedProjectTypes":     []string{"Ecommerce", "Website"},
			"suggestedChecklistOptions": []string{"Payments", "Database"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	got, err := c.Suggest(context.Background(), "A marketplace for vintage synthesizers", "needs payments")
	require.NoError(t, err)
	require.Equal(t, []string{"Ecommerce", "Website"}, got.ProjectTypes)
	require.Equal(t, []string{"Payments", "Database"}, got.ChecklistOptions)
}

func TestSuggest_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Suggest(context.Background(), "A marketplace for vintage synthesizers", "")
	require.Error(t, err)
}

func TestSuggest_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Suggest(context.Background(), "A marketplace for vintage synthesizers", "")
	require.Error(t, err)
}

func TestSuggest_NoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(Suggestions{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Suggest(context.Background(), "A marketplace for vintage synthesizers", "")
	require.NoError(t, err)
}
