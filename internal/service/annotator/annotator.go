package annotator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/moviemind/core/internal/service/replytext"
)

// PosterClient resolves a movie title to a poster image URL.
// An empty string means no poster is available.
type PosterClient interface {
	GetPosterURL(ctx context.Context, title, year string) string
}

// Annotator appends poster markers to the movie paragraphs of a reply.
type Annotator struct {
	posters PosterClient
	logger  *slog.Logger
}

type Option func(*Annotator)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) {
		a.logger = logger
	}
}

func New(posters PosterClient, opts ...Option) *Annotator {
	a := &Annotator{
		posters: posters,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate places a "[POSTER_URL: <url>]" line directly after every movie
// paragraph whose poster lookup succeeds. Paragraph order is preserved and
// paragraphs without movie signals pass through unchanged.
func (a *Annotator) Annotate(ctx context.Context, reply string) string {
	nodes := replytext.Parse(reply)

	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case replytext.Marker:
			// Already-annotated input: keep the marker attached to its
			// paragraph. A marker with no preceding paragraph stands alone.
			if len(parts) > 0 {
				parts[len(parts)-1] += "\n[POSTER_URL: " + n.URL + "]"
			} else {
				parts = append(parts, "[POSTER_URL: "+n.URL+"]")
			}
		case replytext.Movie:
			part := n.Text
			if n.Title != "" {
				if url := a.posters.GetPosterURL(ctx, n.Title, n.Year); url != "" {
					part += "\n[POSTER_URL: " + url + "]"
				} else {
					a.logger.Debug("no poster found", "title", n.Title, "year", n.Year)
				}
			}
			parts = append(parts, part)
		default:
			parts = append(parts, n.Text)
		}
	}

	return strings.Join(parts, "\n\n")
}
