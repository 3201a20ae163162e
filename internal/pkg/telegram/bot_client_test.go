package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage_PostsToBotEndpoint(t *testing.T) {
	var gotPath string
	var gotPayload sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewBotClientWithBase(srv.URL, "123:abc", "-100200300")
	require.True(t, client.Enabled())

	err := client.SendMessage("New tour application")
	require.NoError(t, err)

	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, "-100200300", gotPayload.ChatID)
	assert.Equal(t, "New tour application", gotPayload.Text)
}

func TestSendMessage_NonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewBotClientWithBase(srv.URL, "123:abc", "-100200300")
	err := client.SendMessage("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestSendMessage_DisabledClientIsANoOp(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewBotClientWithBase(srv.URL, "", "")
	require.False(t, client.Enabled())
	require.NoError(t, client.SendMessage("ignored"))
	assert.False(t, called)
}
