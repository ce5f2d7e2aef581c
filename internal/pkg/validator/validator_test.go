package validator

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	api "github.com/s21platform/market-chat/internal/generated"
)

func TestValidator_ValidateSendMessage(t *testing.T) {
	t.Parallel()

	v := New()
	senderID := uuid.NewString()

	valid := func() api.SendMessageRequest {
		return api.SendMessageRequest{
			Content:     "Ainda está disponível?",
			ProductId:   uuid.NewString(),
			RecipientId: uuid.NewString(),
		}
	}

	tests := []struct {
		name    string
		mutate  func(req *api.SendMessageRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*api.SendMessageRequest) {}},
		{name: "blank_content", mutate: func(req *api.SendMessageRequest) { req.Content = "  \n" }, wantErr: "content cannot be empty"},
		{name: "too_long", mutate: func(req *api.SendMessageRequest) { req.Content = strings.Repeat("a", maxContentLength+1) }, wantErr: "maximum length"},
		{name: "bad_product", mutate: func(req *api.SendMessageRequest) { req.ProductId = "p1" }, wantErr: "productId"},
		{name: "missing_recipient", mutate: func(req *api.SendMessageRequest) { req.RecipientId = "" }, wantErr: "recipientId is required"},
		{name: "self", mutate: func(req *api.SendMessageRequest) { req.RecipientId = senderID }, wantErr: "yourself"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := v.ValidateSendMessage(&req, senderID)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidator_ValidateLogin(t *testing.T) {
	t.Parallel()

	v := New()

	assert.NoError(t, v.ValidateLogin(&api.LoginRequest{Email: "rui@example.com", Password: "x"}))
	assert.ErrorContains(t, v.ValidateLogin(&api.LoginRequest{Password: "x"}), "email is required")
	assert.ErrorContains(t, v.ValidateLogin(&api.LoginRequest{Email: "rui", Password: "x"}), "not valid")
	assert.ErrorContains(t, v.ValidateLogin(&api.LoginRequest{Email: "rui@example.com"}), "password is required")
}
