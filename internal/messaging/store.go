package messaging

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/s21platform/market-chat/internal/model"
)

type Role int

const (
	RoleBuying Role = iota
	RoleSelling
)

func (r Role) String() string {
	if r == RoleSelling {
		return "selling"
	}
	return "buying"
}

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buying", "buy", "comprar":
		return RoleBuying, nil
	case "selling", "sell", "vender":
		return RoleSelling, nil
	default:
		return RoleBuying, fmt.Errorf("unknown role %q", s)
	}
}

// Store owns the conversation list of the current user and the selection.
type Store struct {
	client  MarketClient
	session Session
	loader  *ThreadLoader

	mu            sync.RWMutex
	conversations model.ConversationList
	role          Role
	selectedID    string
}

func NewStore(client MarketClient, session Session, loader *ThreadLoader) *Store {
	return &Store{
		client:  client,
		session: session,
		loader:  loader,
		role:    RoleBuying,
	}
}

// Load replaces the conversation list with the backend's. On failure the
// previous list stays.
func (s *Store) Load(ctx context.Context) error {
	logger := loggerFrom(ctx)
	logger.AddFuncName("Store.Load")

	token := s.session.Token()
	if token == "" {
		logger.Warn("no session token, conversations not loaded")
		return ErrNoSession
	}

	conversations, err := s.client.ListConversations(ctx, token)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load conversations: %v", err))
		return fmt.Errorf("failed to load conversations: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations = append(model.ConversationList(nil), conversations...)
	if s.selectedID != "" && s.indexOf(s.selectedID) < 0 {
		s.clearSelection()
	}

	return nil
}

// Role returns the active role filter.
func (s *Store) Role() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.role
}

// SetRole switches the role filter. A selected conversation that falls out of
// the new view is deselected.
func (s *Store) SetRole(role Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.role = role
	if s.selectedID == "" {
		return
	}

	idx := s.indexOf(s.selectedID)
	if idx < 0 || !s.inRole(s.conversations[idx], role) {
		s.clearSelection()
	}
}

// Conversations returns the conversations of the active role in backend
// order.
func (s *Store) Conversations() model.ConversationList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := model.ConversationList{}
	for _, conv := range s.conversations {
		if s.inRole(conv, s.role) {
			out = append(out, conv)
		}
	}

	return out
}

// All returns every loaded conversation, unfiltered.
func (s *Store) All() model.ConversationList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(model.ConversationList(nil), s.conversations...)
}

// inRole puts conversations on the selling side when the current user listed
// the product. Conversations with no known owner belong to no role.
func (s *Store) inRole(conv model.Conversation, role Role) bool {
	me := s.session.UserID()
	if me == "" {
		return false
	}

	owner, ok := conv.Owner()
	if !ok {
		return false
	}

	if role == RoleSelling {
		return owner == me
	}
	return owner != me
}

// Select makes id the selected conversation and opens a new thread for it.
// The returned ticket is what Load of the thread loader expects.
func (s *Store) Select(id string) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Ticket{}, ErrNotFound
	}

	s.selectedID = id

	return s.loader.Begin(s.conversations[idx]), nil
}

// Open selects id and loads its thread.
func (s *Store) Open(ctx context.Context, id string) error {
	ticket, err := s.Select(id)
	if err != nil {
		return err
	}

	return s.loader.Load(ctx, ticket)
}

func (s *Store) Selected() (model.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedID == "" {
		return model.Conversation{}, false
	}

	idx := s.indexOf(s.selectedID)
	if idx < 0 {
		return model.Conversation{}, false
	}

	return s.conversations[idx], true
}

// Lookup finds the conversation about productID with counterpartyID.
func (s *Store) Lookup(productID, counterpartyID string) (model.Conversation, bool) {
	me := s.session.UserID()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, conv := range s.conversations {
		id, ok := conv.ProductID()
		if !ok || id != productID {
			continue
		}
		if other, ok := OtherParty(conv, me); ok && other == counterpartyID {
			return conv, true
		}
	}

	return model.Conversation{}, false
}

// PatchPreview sets the preview text of a conversation without reloading
// the list.
func (s *Store) PatchPreview(id, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.conversations[idx].Content = content

	return true
}

// Remove drops a conversation locally. Removing the selected one also closes
// its thread.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	s.conversations = append(s.conversations[:idx:idx], s.conversations[idx+1:]...)
	if s.selectedID == id {
		s.clearSelection()
	}
}

// Delete asks the backend to delete the messages of the conversation and
// then removes it locally. Nothing changes locally if the backend refuses.
func (s *Store) Delete(ctx context.Context, id string) error {
	logger := loggerFrom(ctx)
	logger.AddFuncName("Store.Delete")

	token := s.session.Token()
	if token == "" {
		logger.Warn("no session token, conversation not deleted")
		return ErrNoSession
	}

	s.mu.RLock()
	idx := s.indexOf(id)
	var conv model.Conversation
	if idx >= 0 {
		conv = s.conversations[idx]
	}
	s.mu.RUnlock()

	if idx < 0 {
		return ErrNotFound
	}

	productID, ok := conv.ProductID()
	if !ok {
		return ErrMalformed
	}
	otherUserID, ok := OtherParty(conv, s.session.UserID())
	if !ok {
		return ErrMalformed
	}

	if err := s.client.DeleteConversation(ctx, token, productID, otherUserID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete conversation %s: %v", id, err))
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	s.Remove(id)

	return nil
}

func (s *Store) indexOf(id string) int {
	for i, conv := range s.conversations {
		if conv.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) clearSelection() {
	s.selectedID = ""
	s.loader.Reset()
}
