package model

import (
	"time"

	"github.com/lib/pq"
)

type ConversationList []Conversation

// Conversation is the latest message between the current user and one
// counterparty about one product. The backend derives it from messages;
// clients never create one directly.
type Conversation struct {
	ID        string       `json:"_id"`
	Product   *Product     `json:"product,omitempty"`
	Sender    *Participant `json:"sender,omitempty"`
	Recipient *Participant `json:"recipient,omitempty"`
	Content   string       `json:"content"`
}

// Owner returns the id of the user who listed the product, if known.
func (c Conversation) Owner() (string, bool) {
	if c.Product == nil || c.Product.User == nil || c.Product.User.ID == "" {
		return "", false
	}
	return c.Product.User.ID, true
}

// ProductID returns the id of the referenced product, if known.
func (c Conversation) ProductID() (string, bool) {
	if c.Product == nil || c.Product.ID == "" {
		return "", false
	}
	return c.Product.ID, true
}

type Product struct {
	ID     string        `json:"_id"`
	Title  string        `json:"produto"`
	Brand  string        `json:"marca,omitempty"`
	Model  string        `json:"modelo,omitempty"`
	Images []string      `json:"imagens"`
	User   *ProductOwner `json:"user,omitempty"`
}

type ProductOwner struct {
	ID string `json:"_id"`
}

// Summary renders "title - brand model" the way list rows show it.
func (p *Product) Summary() string {
	if p == nil {
		return "Produto"
	}
	title := p.Title
	if title == "" {
		title = "Produto"
	}
	out := title + " -"
	if p.Brand != "" {
		out += " " + p.Brand
	}
	if p.Model != "" {
		out += " " + p.Model
	}
	return out
}

// ConversationRow is one row of the conversations query: the latest message
// of a product and participant pair, joined with product and user data.
type ConversationRow struct {
	ID             string         `db:"id"`
	ProductID      string         `db:"product_id"`
	ProductTitle   string         `db:"product_title"`
	ProductBrand   string         `db:"product_brand"`
	ProductModel   string         `db:"product_model"`
	ProductImages  pq.StringArray `db:"product_images"`
	ProductOwnerID string         `db:"product_owner_id"`
	SenderID       string         `db:"sender_id"`
	SenderName     string         `db:"sender_name"`
	RecipientID    string         `db:"recipient_id"`
	RecipientName  string         `db:"recipient_name"`
	Content        string         `db:"content"`
	CreatedAt      time.Time      `db:"created_at"`
}
