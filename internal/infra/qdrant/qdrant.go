package infra_qdrant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/moviemind/core/internal/config"
	"github.com/moviemind/core/internal/model"
)

// payloadField holds the serialized MovieRecord blob inside each point.
const payloadField = "document"

// Repository runs nearest-neighbour queries against a pre-populated
// Qdrant movie collection.
type Repository struct {
	client     *qdrant.Client
	collection string
	logger     *slog.Logger
}

type Option func(*Repository)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

func MustEstablishConn(cfg config.Qdrant, opts ...Option) *Repository {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: cfg.Host,
		Port: cfg.Port,
		GrpcOptions: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		},
	})
	if err != nil {
		panic(err)
	}

	r := &Repository{
		client:     client,
		collection: cfg.Collection,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) Close() error {
	return r.client.Close()
}

// KNN returns up to k movie records nearest to the query embedding.
// Points whose payload blob fails to decode are skipped, not fatal.
func (r *Repository) KNN(ctx context.Context, k int, e model.Embedding) ([]model.MovieRecord, error) {
	points, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.collection,
		Query:          qdrant.NewQuery(e...),
		Limit:          qdrant.PtrOf(uint64(k)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", r.collection, err)
	}

	records := make([]model.MovieRecord, 0, len(points))
	for _, p := range points {
		doc := p.GetPayload()[payloadField].GetStringValue()
		rec, ok := decodeRecord(pointID(p.GetId()), doc)
		if !ok {
			r.logger.Debug("skipping undecodable movie record", "id", pointID(p.GetId()))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func pointID(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	if uid := id.GetUuid(); uid != "" {
		return uid
	}
	return strconv.FormatUint(id.GetNum(), 10)
}

// decodeRecord parses one serialized MovieRecord blob. Fields may come
// back as scalars or lists depending on how the index was built, so each
// is coerced defensively.
func decodeRecord(id, doc string) (model.MovieRecord, bool) {
	if doc == "" {
		return model.MovieRecord{}, false
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return model.MovieRecord{}, false
	}

	return model.MovieRecord{
		ID:       id,
		Title:    asString(raw["title"]),
		Year:     asYear(raw["year"]),
		Genres:   asStrings(raw["genre"]),
		Director: asString(raw["director"]),
		Actors:   asStrings(raw["actors"]),
		Plot:     asString(raw["plot"]),
	}, true
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asYear(v any) int {
	switch y := v.(type) {
	case float64:
		return int(y)
	case string:
		n, err := strconv.Atoi(y)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func asStrings(v any) []string {
	switch vals := v.(type) {
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if vals == "" {
			return nil
		}
		return []string{vals}
	default:
		return nil
	}
}
