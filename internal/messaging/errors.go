package messaging

import "errors"

var (
	ErrNoSession = errors.New("no session token")
	ErrNotFound  = errors.New("conversation not found")
	ErrStale     = errors.New("thread result belongs to an older selection")
	ErrMalformed = errors.New("conversation has no product or counterparty")

	ErrSelfRecipient = errors.New("cannot send a message to yourself")
)
