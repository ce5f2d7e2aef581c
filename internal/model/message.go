package model

import (
	"time"
)

type MessageList []Message

// Message is a single immutable record of a conversation thread.
type Message struct {
	ID        string       `json:"_id"`
	Product   string       `json:"product,omitempty"`
	Sender    *Participant `json:"sender,omitempty"`
	Recipient *Participant `json:"recipient,omitempty"`
	Content   string       `json:"content"`
	CreatedAt *time.Time   `json:"createdAt,omitempty"`
}

type Participant struct {
	ID      string `json:"_id"`
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
}

// DisplayName is "name surname" with missing parts dropped.
func (p *Participant) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.Surname == "" {
		return p.Name
	}
	if p.Name == "" {
		return p.Surname
	}
	return p.Name + " " + p.Surname
}

type SendMessageRequest struct {
	RecipientID string `json:"recipientId"`
	ProductID   string `json:"productId"`
	Content     string `json:"content"`
}

type SendMessageResponse struct {
	Message Message `json:"message"`
}

// MessageRow is the stored form of a message.
type MessageRow struct {
	ID          string    `db:"id"`
	ProductID   string    `db:"product_id"`
	SenderID    string    `db:"sender_id"`
	RecipientID string    `db:"recipient_id"`
	Content     string    `db:"content"`
	CreatedAt   time.Time `db:"created_at"`
}

// ThreadRow is a message joined with its sender's names.
type ThreadRow struct {
	ID            string    `db:"id"`
	ProductID     string    `db:"product_id"`
	SenderID      string    `db:"sender_id"`
	SenderName    string    `db:"sender_name"`
	SenderSurname string    `db:"sender_surname"`
	RecipientID   string    `db:"recipient_id"`
	Content       string    `db:"content"`
	CreatedAt     time.Time `db:"created_at"`
}
