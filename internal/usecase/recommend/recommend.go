package usecase_recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/moviemind/core/internal/model"
)

var (
	ErrFailedToGetEmbedding = errors.New("failed to get query embedding")
	ErrFailedToFindKNN      = errors.New("failed to find KNN")
	ErrFailedToGenerate     = errors.New("failed to generate reply")
)

const (
	// Retrieval depth per turn; also bounds poster markers per reply.
	topK = 5

	apologyReply = "I'm having trouble generating a recommendation right now. Could you try again or ask in a different way?"
)

//go:generate mockery --name=Embedder --output=./mocks/embedder --filename=embedder.go
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) (model.Embedding, error)
}

//go:generate mockery --name=Retriever --output=./mocks/retriever --filename=retriever.go
type Retriever interface {
	KNN(ctx context.Context, k int, e model.Embedding) ([]model.MovieRecord, error)
}

//go:generate mockery --name=Generator --output=./mocks/generator --filename=generator.go
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Annotator interface {
	Annotate(ctx context.Context, reply string) string
}

type HistoryStore interface {
	Append(ctx context.Context, sessionID model.SessionID, t model.ConversationTurn) error
	Turns(ctx context.Context, sessionID model.SessionID) ([]model.ConversationTurn, error)
}

type PreferenceReader interface {
	Favorites(userID model.UserID) ([]string, error)
}

type TranscriptArchive interface {
	Archive(ctx context.Context, userID model.UserID, sessionID model.SessionID, t model.ConversationTurn) error
}

// Usecase orchestrates one chat turn: retrieve candidates, build the
// recommendation prompt, invoke the model with a general-chat fallback,
// annotate posters and remember the exchange.
type Usecase struct {
	embedder    Embedder
	retriever   Retriever
	generator   Generator
	annotator   Annotator
	history     HistoryStore
	preferences PreferenceReader
	archive     TranscriptArchive

	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

// WithTranscriptArchive enables durable archiving of completed exchanges.
func WithTranscriptArchive(archive TranscriptArchive) Option {
	return func(u *Usecase) {
		u.archive = archive
	}
}

func New(
	embedder Embedder,
	retriever Retriever,
	generator Generator,
	annotator Annotator,
	history HistoryStore,
	preferences PreferenceReader,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		embedder:    embedder,
		retriever:   retriever,
		generator:   generator,
		annotator:   annotator,
		history:     history,
		preferences: preferences,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetResponse produces the assistant reply for one user message. It never
// fails: upstream errors degrade to the general-chat fallback and finally
// to a fixed apology, so the caller always gets a non-empty string.
func (u *Usecase) GetResponse(ctx context.Context, userID model.UserID, sessionID model.SessionID, message string) string {
	records := u.retrieve(ctx, message)

	favorites, err := u.preferences.Favorites(userID)
	if err != nil {
		u.logger.Error("failed to load preferences", "user_id", userID, "error", err)
		favorites = nil
	}

	turns, err := u.history.Turns(ctx, sessionID)
	if err != nil {
		u.logger.Error("failed to load conversation history", "session_id", sessionID, "error", err)
		turns = nil
	}
	chatHistory := renderHistory(turns)

	reply, err := u.recommend(ctx, chatHistory, message, records, favorites)
	if err != nil {
		u.logger.Error("failed to generate recommendation", "error", err)

		reply, err = u.generalChat(ctx, chatHistory, message)
		if err != nil {
			u.logger.Error("failed to generate general response", "error", err)
			reply = apologyReply
		}
	}

	annotated := u.annotator.Annotate(ctx, reply)

	// Memory keeps the raw model text; the archive keeps what the user saw.
	turn := model.ConversationTurn{User: message, Assistant: reply}
	if err := u.history.Append(ctx, sessionID, turn); err != nil {
		u.logger.Error("failed to append conversation turn", "session_id", sessionID, "error", err)
	}
	if u.archive != nil {
		archived := model.ConversationTurn{User: message, Assistant: annotated}
		if err := u.archive.Archive(ctx, userID, sessionID, archived); err != nil {
			u.logger.Error("failed to archive transcript", "session_id", sessionID, "error", err)
		}
	}

	return annotated
}

// retrieve runs the embed-then-KNN pipeline. Failures degrade to an empty
// candidate list; individual undecodable records are already skipped by
// the retriever.
func (u *Usecase) retrieve(ctx context.Context, message string) []model.MovieRecord {
	e, err := u.embedder.EmbedQuery(ctx, message)
	if err != nil {
		u.logger.Error("retrieval skipped", "error", fmt.Errorf("%w: %w", ErrFailedToGetEmbedding, err))
		return nil
	}

	records, err := u.retriever.KNN(ctx, topK, e)
	if err != nil {
		u.logger.Error("retrieval skipped", "error", fmt.Errorf("%w: %w", ErrFailedToFindKNN, err))
		return nil
	}
	return records
}

func (u *Usecase) recommend(ctx context.Context, chatHistory, message string, records []model.MovieRecord, favorites []string) (string, error) {
	prompt, err := renderPrompt(recommendationPrompt, promptInput{
		ChatHistory:     chatHistory,
		HumanInput:      message,
		MovieResults:    renderMovieBlocks(records),
		UserPreferences: renderPreferences(favorites),
	})
	if err != nil {
		return "", err
	}
	return u.complete(ctx, prompt)
}

func (u *Usecase) generalChat(ctx context.Context, chatHistory, message string) (string, error) {
	prompt, err := renderPrompt(generalPrompt, promptInput{
		ChatHistory: chatHistory,
		HumanInput:  message,
	})
	if err != nil {
		return "", err
	}
	return u.complete(ctx, prompt)
}

func (u *Usecase) complete(ctx context.Context, prompt string) (string, error) {
	reply, err := u.generator.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToGenerate, err)
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("%w: blank completion", ErrFailedToGenerate)
	}
	return reply, nil
}
