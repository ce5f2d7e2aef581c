package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/s21platform/market-chat/internal/config"
	"github.com/s21platform/market-chat/internal/model"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-Id"
)

// StatusError is returned for any non-2xx answer of the backend.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return NewWithHTTPClient(cfg.API.BaseURL, &http.Client{
		Timeout: cfg.API.Timeout,
	})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	var resp model.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", model.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) ListConversations(ctx context.Context, token string) (model.ConversationList, error) {
	var conversations model.ConversationList
	if err := c.do(ctx, http.MethodGet, "/messages", token, nil, &conversations); err != nil {
		return nil, err
	}

	return conversations, nil
}

// GetThread fetches the messages about productID. A non-empty counterpartyID
// narrows the result to the pair of the caller and that user.
func (c *Client) GetThread(ctx context.Context, token, productID, counterpartyID string) (model.MessageList, error) {
	path := "/messages/" + url.PathEscape(productID) + "/user"
	if counterpartyID != "" {
		path += "?" + url.Values{"with": {counterpartyID}}.Encode()
	}

	var messages model.MessageList
	if err := c.do(ctx, http.MethodGet, path, token, nil, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, token string, req model.SendMessageRequest) (*model.Message, error) {
	var resp model.SendMessageResponse
	if err := c.do(ctx, http.MethodPost, "/messages", token, req, &resp); err != nil {
		return nil, err
	}

	return &resp.Message, nil
}

func (c *Client) DeleteConversation(ctx context.Context, token, productID, otherUserID string) error {
	path := "/messages/" + url.PathEscape(productID) + "/" + url.PathEscape(otherUserID)

	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}
	req.Header.Set(headerRequestID, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
