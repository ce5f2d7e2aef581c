package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/market-chat/internal/config"
	"github.com/s21platform/market-chat/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
)

// pairKey orders the two participants so both directions of a conversation
// share one key.
const pairKey = "m.product_id, LEAST(m.sender_id, m.recipient_id), GREATEST(m.sender_id, m.recipient_id)"

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return NewWithDB(conn)
}

func NewWithDB(conn *sqlx.DB) *Repository {
	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.UserCredentials, error) {
	query, args, err := sq.Select("id", "name", "COALESCE(surname, '') AS surname", "email", "password_hash", "is_admin").
		From("users").
		Where(sq.Eq{"email": email}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.UserCredentials
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return &user, nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (*model.Participant, error) {
	query, args, err := sq.Select("id", "name", "COALESCE(surname, '') AS surname").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row struct {
		ID      string `db:"id"`
		Name    string `db:"name"`
		Surname string `db:"surname"`
	}
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return &model.Participant{ID: row.ID, Name: row.Name, Surname: row.Surname}, nil
}

func (r *Repository) GetProductOwner(ctx context.Context, productID string) (string, error) {
	query, args, err := sq.Select("COALESCE(user_id::text, '')").
		From("products").
		Where(sq.Eq{"id": productID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var ownerID string
	err = r.Chk(ctx).GetContext(ctx, &ownerID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get product owner: %v", err)
	}

	return ownerID, nil
}

// GetConversations returns the latest message of every product and
// participant pair the user takes part in, most recent first.
func (r *Repository) GetConversations(ctx context.Context, userID string) ([]model.ConversationRow, error) {
	latest := sq.Select(
		"m.id",
		"m.product_id",
		"p.produto AS product_title",
		"COALESCE(p.marca, '') AS product_brand",
		"COALESCE(p.modelo, '') AS product_model",
		"p.imagens AS product_images",
		"COALESCE(p.user_id::text, '') AS product_owner_id",
		"m.sender_id",
		"us.name AS sender_name",
		"m.recipient_id",
		"ur.name AS recipient_name",
		"m.content",
		"m.created_at",
	).
		Options("DISTINCT ON ("+pairKey+")").
		From("messages m").
		Join("products p ON p.id = m.product_id").
		Join("users us ON us.id = m.sender_id").
		Join("users ur ON ur.id = m.recipient_id").
		Where(sq.Or{
			sq.Eq{"m.sender_id": userID},
			sq.Eq{"m.recipient_id": userID},
		}).
		Where(sq.Eq{"m.deleted_at": nil}).
		OrderBy(pairKey, "m.created_at DESC")

	query, args, err := sq.Select("*").
		FromSelect(latest, "c").
		OrderBy("c.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []model.ConversationRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %v", err)
	}

	return rows, nil
}

// GetThread returns the messages about productID the user takes part in,
// oldest first. A non-empty withUserID keeps only the pair with that user.
func (r *Repository) GetThread(ctx context.Context, productID, userID, withUserID string) ([]model.ThreadRow, error) {
	queryBuilder := sq.Select(
		"m.id",
		"m.product_id",
		"m.sender_id",
		"u.name AS sender_name",
		"COALESCE(u.surname, '') AS sender_surname",
		"m.recipient_id",
		"m.content",
		"m.created_at",
	).
		From("messages m").
		Join("users u ON u.id = m.sender_id").
		Where(sq.Eq{"m.product_id": productID}).
		Where(sq.Eq{"m.deleted_at": nil}).
		Where(sq.Or{
			sq.Eq{"m.sender_id": userID},
			sq.Eq{"m.recipient_id": userID},
		})

	if withUserID != "" {
		queryBuilder = queryBuilder.Where(sq.Or{
			sq.Eq{"m.sender_id": withUserID},
			sq.Eq{"m.recipient_id": withUserID},
		})
	}

	query, args, err := queryBuilder.
		OrderBy("m.created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []model.ThreadRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %v", err)
	}

	return rows, nil
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.MessageRow) error {
	query := sq.Insert("messages").
		Columns("id", "product_id", "sender_id", "recipient_id", "content", "created_at").
		Values(message.ID, message.ProductID, message.SenderID, message.RecipientID, message.Content, message.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

// DeleteConversation hides every message between the two users about the
// product. It reports how many messages were hidden.
func (r *Repository) DeleteConversation(ctx context.Context, productID, userID, otherUserID string) (int64, error) {
	query, args, err := sq.Update("messages").
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.Or{
			sq.And{sq.Eq{"sender_id": userID}, sq.Eq{"recipient_id": otherUserID}},
			sq.And{sq.Eq{"sender_id": otherUserID}, sq.Eq{"recipient_id": userID}},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete conversation: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted messages: %v", err)
	}

	return affected, nil
}
