package market

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s21platform/market-chat/internal/model"
)

func TestClient_ListConversations(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/messages", r.URL.Path)
			assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

			_, _ = w.Write([]byte(`[{"_id":"c1","product":{"_id":"p1","produto":"Trator","marca":"John Deere","modelo":"6120M","imagens":["a.jpg"],"user":{"_id":"u1"}},"sender":{"_id":"u2","name":"Ana"},"recipient":{"_id":"u1","name":"Rui"},"content":"Olá"}]`))
		}))
		defer srv.Close()

		client := NewWithHTTPClient(srv.URL+"/api/", srv.Client())

		conversations, err := client.ListConversations(context.Background(), "token-1")
		require.NoError(t, err)
		require.Len(t, conversations, 1)

		conv := conversations[0]
		assert.Equal(t, "c1", conv.ID)
		assert.Equal(t, "Trator", conv.Product.Title)
		assert.Equal(t, "u1", conv.Product.User.ID)
		assert.Equal(t, "Ana", conv.Sender.Name)
		assert.Equal(t, "Olá", conv.Content)
	})

	t.Run("status_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid token"}`))
		}))
		defer srv.Close()

		client := NewWithHTTPClient(srv.URL, srv.Client())

		_, err := client.ListConversations(context.Background(), "bad")
		require.Error(t, err)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
		assert.Equal(t, "invalid token", statusErr.Message)
	})
}

func TestClient_GetThread(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/p1/user", r.URL.Path)
		assert.Equal(t, "u2", r.URL.Query().Get("with"))

		_, _ = w.Write([]byte(`[{"_id":"m1","sender":{"_id":"u2","name":"Ana","surname":"Silva"},"content":"Bom dia"},{"_id":"m2","sender":{"_id":"u1","name":"Rui"},"content":"Olá"}]`))
	}))
	defer srv.Close()

	client := NewWithHTTPClient(srv.URL, srv.Client())

	messages, err := client.GetThread(context.Background(), "t", "p1", "u2")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "Ana Silva", messages[0].Sender.DisplayName())
	assert.Equal(t, "m2", messages[1].ID)
}

func TestClient_SendMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req model.SendMessageRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, model.SendMessageRequest{RecipientID: "u2", ProductID: "p1", Content: "Ainda está disponível?"}, req)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":{"_id":"m9","sender":{"_id":"u1"},"content":"Ainda está disponível?"}}`))
	}))
	defer srv.Close()

	client := NewWithHTTPClient(srv.URL, srv.Client())

	msg, err := client.SendMessage(context.Background(), "t", model.SendMessageRequest{
		RecipientID: "u2",
		ProductID:   "p1",
		Content:     "Ainda está disponível?",
	})
	require.NoError(t, err)
	assert.Equal(t, "m9", msg.ID)
	assert.Equal(t, "u1", msg.Sender.ID)
}

func TestClient_DeleteConversation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/messages/p1/u2", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewWithHTTPClient(srv.URL, srv.Client())

	require.NoError(t, client.DeleteConversation(context.Background(), "t", "p1", "u2"))
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req model.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "rui@example.com", req.Email)

		_, _ = w.Write([]byte(`{"token":"jwt","user":{"_id":"u1","name":"Rui","email":"rui@example.com"}}`))
	}))
	defer srv.Close()

	client := NewWithHTTPClient(srv.URL, srv.Client())

	resp, err := client.Login(context.Background(), "rui@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}
