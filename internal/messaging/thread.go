package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/s21platform/market-chat/internal/model"
)

// Ticket identifies one selection. Only the load started for the latest
// ticket may change the thread.
type Ticket struct {
	gen  uint64
	conv model.Conversation
}

func (t Ticket) ConversationID() string {
	return t.conv.ID
}

// ThreadLoader holds the messages of the selected conversation.
type ThreadLoader struct {
	client  MarketClient
	session Session

	mu             sync.Mutex
	gen            uint64
	conversationID string
	messages       model.MessageList
	cancel         context.CancelFunc
}

func NewThreadLoader(client MarketClient, session Session) *ThreadLoader {
	return &ThreadLoader{
		client:  client,
		session: session,
	}
}

// Begin starts a new selection: the previous fetch is cancelled and its
// result will be dropped, the held thread is emptied.
func (l *ThreadLoader) Begin(conv model.Conversation) Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(conv.ID)

	return Ticket{gen: l.gen, conv: conv}
}

// Reset forgets the open thread.
func (l *ThreadLoader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance("")
}

func (l *ThreadLoader) advance(conversationID string) {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
	l.conversationID = conversationID
	l.messages = nil
}

func (l *ThreadLoader) Load(ctx context.Context, ticket Ticket) error {
	logger := loggerFrom(ctx)
	logger.AddFuncName("ThreadLoader.Load")

	token := l.session.Token()
	if token == "" {
		logger.Warn("no session token, thread not loaded")
		return ErrNoSession
	}

	productID, ok := ticket.conv.ProductID()
	if !ok {
		logger.Warn(fmt.Sprintf("conversation %s has no product, showing empty thread", ticket.conv.ID))
		return nil
	}

	counterpartyID, ok := OtherParty(ticket.conv, l.session.UserID())
	if !ok {
		logger.Warn(fmt.Sprintf("conversation %s has no counterparty, showing empty thread", ticket.conv.ID))
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if ticket.gen != l.gen {
		l.mu.Unlock()
		return ErrStale
	}
	l.cancel = cancel
	l.mu.Unlock()

	messages, err := l.client.GetThread(ctx, token, productID, counterpartyID)

	l.mu.Lock()
	stale := ticket.gen != l.gen
	if !stale {
		l.cancel = nil
		if err != nil {
			l.messages = nil
		} else {
			l.messages = append(model.MessageList(nil), messages...)
		}
	}
	l.mu.Unlock()

	if stale {
		logger.Info(fmt.Sprintf("dropping thread of conversation %s, selection changed", ticket.conv.ID))
		return ErrStale
	}

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Error(fmt.Sprintf("failed to load thread of conversation %s: %v", ticket.conv.ID, err))
		}
		return fmt.Errorf("failed to load thread: %w", err)
	}

	return nil
}

// Append adds msg to the open thread if it still belongs to conversationID.
func (l *ThreadLoader) Append(conversationID string, msg model.Message) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if conversationID == "" || l.conversationID != conversationID {
		return false
	}
	l.messages = append(l.messages, msg)

	return true
}

// Messages returns a copy of the open thread in server order.
func (l *ThreadLoader) Messages() model.MessageList {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append(model.MessageList(nil), l.messages...)
}

// Current reports which conversation the thread belongs to and its
// generation.
func (l *ThreadLoader) Current() (string, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.conversationID, l.gen
}
