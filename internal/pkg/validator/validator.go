package validator

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	api "github.com/s21platform/market-chat/internal/generated"
)

const maxContentLength = 2000

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest, senderID string) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	if err := v.ValidateID("productId", req.ProductId); err != nil {
		return err
	}

	if err := v.ValidateID("recipientId", req.RecipientId); err != nil {
		return err
	}

	if req.RecipientId == senderID {
		return fmt.Errorf("cannot send a message to yourself")
	}

	return nil
}

func (v *Validator) ValidateLogin(req *api.LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("email '%s' is not valid", req.Email)
	}

	if req.Password == "" {
		return fmt.Errorf("password is required")
	}

	return nil
}

func (v *Validator) ValidateID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", name)
	}

	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%s '%s' is not a valid id", name, value)
	}

	return nil
}
