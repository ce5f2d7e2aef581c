package messaging

import (
	"context"
	"fmt"
	"strings"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/market-chat/internal/model"
)

type ComposerState int

const (
	StateIdle ComposerState = iota
	StateSending
)

// Composer holds the outgoing text and sends it to the selected conversation.
type Composer struct {
	client  MarketClient
	session Session
	store   *Store
	loader  *ThreadLoader

	mu    sync.Mutex
	text  string
	state ComposerState
}

func NewComposer(client MarketClient, session Session, store *Store, loader *ThreadLoader) *Composer {
	return &Composer{
		client:  client,
		session: session,
		store:   store,
		loader:  loader,
	}
}

func (c *Composer) SetText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = text
}

func (c *Composer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.text
}

func (c *Composer) State() ComposerState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Send posts the current text to the other party of the selected
// conversation. Blank text, no selection or a send already in flight make it
// a no-op. On failure the text is kept for a retry.
func (c *Composer) Send(ctx context.Context) error {
	logger := loggerFrom(ctx)
	logger.AddFuncName("Composer.Send")

	conv, ok := c.store.Selected()
	if !ok {
		return nil
	}

	out := outgoing{conversationID: conv.ID}
	out.productID, _ = conv.ProductID()
	out.recipientID, _ = OtherParty(conv, c.session.UserID())

	_, err := c.send(ctx, logger, out)
	return err
}

// SendTo posts the current text to recipientID about productID whether or not
// a conversation with them exists yet. This is how a buyer first contacts the
// seller of a product. The conversation list is reloaded afterwards so the
// new conversation shows up.
func (c *Composer) SendTo(ctx context.Context, productID, recipientID string) error {
	logger := loggerFrom(ctx)
	logger.AddFuncName("Composer.SendTo")

	out := outgoing{productID: productID, recipientID: recipientID}
	if conv, ok := c.store.Lookup(productID, recipientID); ok {
		out.conversationID = conv.ID
	}

	sent, err := c.send(ctx, logger, out)
	if err != nil || !sent {
		return err
	}

	if err := c.store.Load(ctx); err != nil {
		logger.Warn(fmt.Sprintf("message sent but conversations not reloaded: %v", err))
	}

	return nil
}

type outgoing struct {
	conversationID string
	productID      string
	recipientID    string
}

// send reports whether a message actually went out. Logging happens only
// after c.mu is released.
func (c *Composer) send(ctx context.Context, logger logger_lib.LoggerInterface, out outgoing) (bool, error) {
	c.mu.Lock()
	if c.state == StateSending {
		c.mu.Unlock()
		return false, nil
	}

	text := strings.TrimSpace(c.text)
	if text == "" {
		c.mu.Unlock()
		return false, nil
	}

	token := c.session.Token()
	if token == "" {
		c.mu.Unlock()
		logger.Warn("no session token, message not sent")
		return false, ErrNoSession
	}

	me := c.session.UserID()
	if out.productID == "" || out.recipientID == "" {
		c.mu.Unlock()
		logger.Error(fmt.Sprintf("conversation %q has no product or counterparty", out.conversationID))
		return false, ErrMalformed
	}
	if out.recipientID == me {
		c.mu.Unlock()
		return false, ErrSelfRecipient
	}

	c.state = StateSending
	c.mu.Unlock()

	msg, err := c.client.SendMessage(ctx, token, model.SendMessageRequest{
		RecipientID: out.recipientID,
		ProductID:   out.productID,
		Content:     text,
	})

	c.mu.Lock()
	c.state = StateIdle
	if err == nil {
		c.text = ""
	}
	c.mu.Unlock()

	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		return false, fmt.Errorf("failed to send message: %w", err)
	}

	if msg == nil || msg.ID == "" {
		msg = &model.Message{
			Product:   out.productID,
			Sender:    &model.Participant{ID: me},
			Recipient: &model.Participant{ID: out.recipientID},
			Content:   text,
		}
	}

	if out.conversationID != "" {
		c.loader.Append(out.conversationID, *msg)
		if !c.store.PatchPreview(out.conversationID, text) {
			logger.Warn(fmt.Sprintf("conversation %s is gone, preview not updated", out.conversationID))
		}
	}

	return true, nil
}
