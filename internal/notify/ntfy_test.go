package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtwatch/internal/model"
)

func mustInterval(t *testing.T, s string) model.Interval {
	t.Helper()
	iv, err := model.ParseInterval(s)
	require.NoError(t, err)
	return iv
}

func TestMessage(t *testing.T) {
	a := model.Availability{
		4: {mustInterval(t, "18:00 - 19:00")},
		1: {mustInterval(t, "16:00 - 17:00"), mustInterval(t, "18:00 - 19:00")},
	}

	got := Message(a)

	assert.Equal(t, "Court 1:\n16:00 - 17:00\n18:00 - 19:00\nCourt 4:\n18:00 - 19:00\n", got)
}

func TestMessageEmpty(t *testing.T) {
	assert.Equal(t, "Sorry, nothing available", Message(model.Availability{}))
}

func TestNtfyNotify(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotPath = r.URL.Path
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)
	}))
	defer server.Close()

	n := NewNtfy(server.URL, "courts", server.Client())
	err := n.Notify(context.Background(), "Court 1:\n16:00 - 17:00\n")

	require.NoError(t, err)
	assert.Equal(t, "/courts", gotPath)
	assert.Equal(t, "Court 1:\n16:00 - 17:00\n", gotBody)
}

func TestNtfyNotifyStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	n := NewNtfy(server.URL, "courts", server.Client())
	err := n.Notify(context.Background(), "message")

	assert.Error(t, err)
}

func TestNtfyNotifyTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	n := NewNtfy(server.URL, "courts", nil)
	err := n.Notify(context.Background(), "message")

	assert.Error(t, err)
}
