//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	api "github.com/s21platform/market-chat/internal/generated"
	"github.com/s21platform/market-chat/internal/model"
)

type DBRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*model.UserCredentials, error)
	GetUser(ctx context.Context, userID string) (*model.Participant, error)
	GetProductOwner(ctx context.Context, productID string) (string, error)
	GetConversations(ctx context.Context, userID string) ([]model.ConversationRow, error)
	GetThread(ctx context.Context, productID, userID, withUserID string) ([]model.ThreadRow, error)
	SaveMessage(ctx context.Context, message *model.MessageRow) error
	DeleteConversation(ctx context.Context, productID, userID, otherUserID string) (int64, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest, senderID string) error
	ValidateLogin(req *api.LoginRequest) error
	ValidateID(name, value string) error
}

type JWTGenerator interface {
	GenerateSessionToken(user model.User) (string, int64, error)
}
