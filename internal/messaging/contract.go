//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package messaging

import (
	"context"

	"github.com/s21platform/market-chat/internal/model"
)

// Session gives the current bearer token and the id of the user it belongs
// to. An empty token means nobody is logged in.
type Session interface {
	Token() string
	UserID() string
}

type MarketClient interface {
	ListConversations(ctx context.Context, token string) (model.ConversationList, error)
	GetThread(ctx context.Context, token, productID, counterpartyID string) (model.MessageList, error)
	SendMessage(ctx context.Context, token string, req model.SendMessageRequest) (*model.Message, error)
	DeleteConversation(ctx context.Context, token, productID, otherUserID string) error
}
