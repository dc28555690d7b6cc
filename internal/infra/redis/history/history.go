package infra_redis_history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis"

	"github.com/moviemind/core/internal/model"
)

// Driver stores conversation turns as a Redis list per session, so the
// chat buffer survives process restarts.
type Driver struct {
	client *redis.Client
	key    string
}

func New(client *redis.Client, key string) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Append(ctx context.Context, sessionID model.SessionID, t model.ConversationTurn) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	if err := d.client.RPush(d.getFullKey(sessionID), data).Err(); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}
	return nil
}

func (d *Driver) Turns(ctx context.Context, sessionID model.SessionID) ([]model.ConversationTurn, error) {
	items, err := d.client.LRange(d.getFullKey(sessionID), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.ConversationTurn{}, nil
		}
		return nil, fmt.Errorf("failed to load turns: %w", err)
	}

	turns := make([]model.ConversationTurn, 0, len(items))
	for _, item := range items {
		var t model.ConversationTurn
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			continue
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (d *Driver) getFullKey(sessionID model.SessionID) string {
	if d.key != "" {
		return d.key + ":" + sessionID
	}
	return sessionID
}
