package messaging

import "github.com/s21platform/market-chat/internal/model"

// OtherParty returns the id of the user on the other side of conv as seen by
// currentUserID. It does not matter which of the two wrote first.
func OtherParty(conv model.Conversation, currentUserID string) (string, bool) {
	other := OtherParticipant(conv, currentUserID)
	if other == nil || other.ID == "" {
		return "", false
	}

	return other.ID, true
}

// OtherParticipant is the participant behind OtherParty, or nil when conv
// does not name both sides.
func OtherParticipant(conv model.Conversation, currentUserID string) *model.Participant {
	if conv.Sender == nil || conv.Recipient == nil {
		return nil
	}

	if conv.Sender.ID == currentUserID {
		return conv.Recipient
	}
	return conv.Sender
}
