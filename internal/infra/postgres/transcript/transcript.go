package infra_postgres_transcript

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/moviemind/core/internal/model"
)

// Repository archives completed chat exchanges.
//
// Expected schema:
//
//	CREATE TABLE transcripts (
//	    id              UUID PRIMARY KEY,
//	    user_id         TEXT NOT NULL,
//	    session_id      TEXT NOT NULL,
//	    user_message    TEXT NOT NULL,
//	    assistant_reply TEXT NOT NULL,
//	    created_at      TIMESTAMPTZ NOT NULL
//	);
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type transcriptDB struct {
	ID             uuid.UUID `db:"id"`
	UserID         string    `db:"user_id"`
	SessionID      string    `db:"session_id"`
	UserMessage    string    `db:"user_message"`
	AssistantReply string    `db:"assistant_reply"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r *Repository) Archive(ctx context.Context, userID model.UserID, sessionID model.SessionID, t model.ConversationTurn) error {
	row := transcriptDB{
		ID:             uuid.New(),
		UserID:         userID,
		SessionID:      sessionID,
		UserMessage:    t.User,
		AssistantReply: t.Assistant,
		CreatedAt:      time.Now().UTC(),
	}

	query := `
		INSERT INTO transcripts (id, user_id, session_id, user_message, assistant_reply, created_at)
		VALUES (:id, :user_id, :session_id, :user_message, :assistant_reply, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to archive transcript: %w", err)
	}
	return nil
}

func (r *Repository) BySession(ctx context.Context, sessionID model.SessionID) ([]model.ConversationTurn, error) {
	query := `
		SELECT id, user_id, session_id, user_message, assistant_reply, created_at
		FROM transcripts
		WHERE session_id = $1
		ORDER BY created_at
	`

	var rows []transcriptDB
	if err := r.db.SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to load transcripts: %w", err)
	}

	turns := make([]model.ConversationTurn, len(rows))
	for i, row := range rows {
		turns[i] = model.ConversationTurn{
			User:      row.UserMessage,
			Assistant: row.AssistantReply,
		}
	}
	return turns, nil
}
