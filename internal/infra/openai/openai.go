package infra_openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/moviemind/core/internal/config"
	"github.com/moviemind/core/internal/model"
)

var (
	ErrEmptyCompletion = errors.New("empty completion")
	ErrEmptyEmbedding  = errors.New("empty embedding")
)

// Client wraps the hosted model endpoints: chat completions for reply
// generation and the embeddings endpoint for query vectors.
type Client struct {
	api         *openai.Client
	model       string
	embedModel  string
	temperature float32
	maxTokens   int
}

func New(cfg config.OpenAI) *Client {
	return &Client{
		api:         openai.NewClient(cfg.APIKey),
		model:       cfg.Model,
		embedModel:  cfg.EmbedModel,
		temperature: float32(cfg.Temperature),
		maxTokens:   cfg.MaxTokens,
	}
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) EmbedQuery(ctx context.Context, text string) (model.Embedding, error) {
	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.embedModel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, ErrEmptyEmbedding
	}
	return model.Embedding(resp.Data[0].Embedding), nil
}
