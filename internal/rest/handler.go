package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/market-chat/internal/config"
	api "github.com/s21platform/market-chat/internal/generated"
	"github.com/s21platform/market-chat/internal/model"
	"github.com/s21platform/market-chat/internal/pkg/tx"
	"github.com/s21platform/market-chat/internal/repository/postgres"
)

var (
	errProductNotFound   = errors.New("product not found")
	errRecipientNotFound = errors.New("recipient not found")
	errNotOwnerPair      = errors.New("one of the participants must own the product")
)

type Handler struct {
	repository   DBRepo
	validator    Validator
	jwtGenerator JWTGenerator
}

func New(
	repo DBRepo,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		repository:   repo,
		validator:    validator,
		jwtGenerator: jwtGenerator,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Login")

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateLogin(&req); err != nil {
		logger.Error(fmt.Sprintf("login validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("login validation failed: %v", err), http.StatusBadRequest)
		return
	}

	creds, err := h.repository.GetUserByEmail(r.Context(), req.Email)
	if errors.Is(err, postgres.ErrNotFound) {
		logger.Warn("login attempt for unknown email")
		pkg.FromContext(r.Context(), config.KeyMetrics).Increment("login_failed")
		h.writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get user: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get user: %v", err), http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn(fmt.Sprintf("wrong password for user %s", creds.ID))
		pkg.FromContext(r.Context(), config.KeyMetrics).Increment("login_failed")
		h.writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	user := model.User{
		ID:      creds.ID,
		Name:    creds.Name,
		Surname: creds.Surname,
		Email:   creds.Email,
		IsAdmin: creds.IsAdmin,
	}

	token, _, err := h.jwtGenerator.GenerateSessionToken(user)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate session token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate session token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("user %s logged in", user.ID))

	response := api.LoginResponse{
		Token: token,
		User: api.User{
			Id:      user.ID,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
			Name:    user.Name,
			Surname: optional(user.Surname),
		},
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListConversations")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	rows, err := h.repository.GetConversations(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversations: %v", err), http.StatusInternalServerError)
		return
	}

	conversations := make([]api.Conversation, len(rows))
	for i, row := range rows {
		images := []string(row.ProductImages)
		if images == nil {
			images = []string{}
		}

		conversations[i] = api.Conversation{
			Id:      row.ID,
			Content: row.Content,
			Product: api.ConversationProduct{
				Id:      row.ProductID,
				Imagens: images,
				Marca:   optional(row.ProductBrand),
				Modelo:  optional(row.ProductModel),
				Produto: row.ProductTitle,
				User:    &api.ProductUser{Id: row.ProductOwnerID},
			},
			Sender: api.Participant{
				Id:   row.SenderID,
				Name: row.SenderName,
			},
			Recipient: api.Participant{
				Id:   row.RecipientID,
				Name: row.RecipientName,
			},
		}
	}

	h.writeJSON(w, conversations, http.StatusOK)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request, productId string, params api.GetThreadParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetThread")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateID("product_id", productId); err != nil {
		logger.Error(fmt.Sprintf("thread validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("thread validation failed: %v", err), http.StatusBadRequest)
		return
	}

	withUserID := ""
	if params.With != nil && *params.With != "" {
		if err := h.validator.ValidateID("with", *params.With); err != nil {
			logger.Error(fmt.Sprintf("thread validation failed: %v", err))
			h.writeError(w, fmt.Sprintf("thread validation failed: %v", err), http.StatusBadRequest)
			return
		}
		withUserID = *params.With
	}

	rows, err := h.repository.GetThread(r.Context(), productId, userUUID, withUserID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	messages := make([]api.Message, len(rows))
	for i, row := range rows {
		messages[i] = api.Message{
			Id:        row.ID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt.Format(time.RFC3339),
			Product:   row.ProductID,
			Recipient: &api.Participant{Id: row.RecipientID},
			Sender: api.Participant{
				Id:      row.SenderID,
				Name:    row.SenderName,
				Surname: optional(row.SenderSurname),
			},
		}
	}

	h.writeJSON(w, messages, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req, senderID); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var (
		message model.MessageRow
		sender  *model.Participant
	)
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		ownerID, err := h.repository.GetProductOwner(ctx, req.ProductId)
		if errors.Is(err, postgres.ErrNotFound) {
			return errProductNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get product owner: %v", err)
		}

		if ownerID != senderID && ownerID != req.RecipientId {
			return errNotOwnerPair
		}

		if _, err = h.repository.GetUser(ctx, req.RecipientId); err != nil {
			if errors.Is(err, postgres.ErrNotFound) {
				return errRecipientNotFound
			}
			return fmt.Errorf("failed to get recipient: %v", err)
		}

		sender, err = h.repository.GetUser(ctx, senderID)
		if err != nil {
			return fmt.Errorf("failed to get sender: %v", err)
		}

		message = model.MessageRow{
			ID:          uuid.NewString(),
			ProductID:   req.ProductId,
			SenderID:    senderID,
			RecipientID: req.RecipientId,
			Content:     req.Content,
			CreatedAt:   time.Now().UTC(),
		}

		return h.repository.SaveMessage(ctx, &message)
	})

	switch {
	case errors.Is(err, errProductNotFound), errors.Is(err, errRecipientNotFound):
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeError(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, errNotOwnerPair):
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		logger.Error(fmt.Sprintf("failed to send message transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.SendMessageResponse{
		Message: api.Message{
			Id:        message.ID,
			Content:   message.Content,
			CreatedAt: message.CreatedAt.Format(time.RFC3339),
			Product:   message.ProductID,
			Recipient: &api.Participant{Id: message.RecipientID},
			Sender: api.Participant{
				Id:      sender.ID,
				Name:    sender.Name,
				Surname: optional(sender.Surname),
			},
		},
	}

	pkg.FromContext(r.Context(), config.KeyMetrics).Increment("message_sent")

	h.writeJSON(w, response, http.StatusCreated)
}

func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request, productId string, otherUserId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteConversation")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	for _, param := range [][2]string{{"product_id", productId}, {"other_user_id", otherUserId}} {
		if err := h.validator.ValidateID(param[0], param[1]); err != nil {
			logger.Error(fmt.Sprintf("delete validation failed: %v", err))
			h.writeError(w, fmt.Sprintf("delete validation failed: %v", err), http.StatusBadRequest)
			return
		}
	}

	deleted, err := h.repository.DeleteConversation(r.Context(), productId, userUUID, otherUserId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete conversation: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete conversation: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("user %s deleted %d messages of product %s with %s", userUUID, deleted, productId, otherUserId))
	pkg.FromContext(r.Context(), config.KeyMetrics).Increment("conversation_deleted")

	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------- helpers -----------------------------

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
