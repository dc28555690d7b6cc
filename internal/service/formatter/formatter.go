package formatter

import (
	"fmt"
	"strings"

	"github.com/moviemind/core/internal/model"
	"github.com/moviemind/core/internal/service/replytext"
)

const maxFallbackTitleLen = 100

// Format splits annotated reply text into clean prose and an ordered
// poster gallery. Title-to-poster association is positional: the i-th
// resolved title pairs with the i-th marker. When title extraction order
// diverges from marker order this can mis-bind a title to a neighboring
// poster; the heuristic is kept as-is.
func Format(annotated string) model.DisplayPayload {
	urls := replytext.Markers(annotated)
	if len(urls) == 0 {
		return model.DisplayPayload{CleanText: annotated}
	}

	clean := replytext.StripMarkers(annotated)

	titles := replytext.FieldTitles(annotated)
	titles = append(titles, replytext.CapitalizedTitles(annotated)...)
	if len(titles) < len(urls) {
		titles = append(titles, precedingLineTitles(annotated)...)
	}

	gallery := make([]model.PosterCard, len(urls))
	untitled := 0
	for i, url := range urls {
		title := ""
		if i < len(titles) {
			title = titles[i]
		}
		if title == "" {
			untitled++
			title = fmt.Sprintf("Movie %d", untitled)
		}
		gallery[i] = model.PosterCard{Title: title, URL: url}
	}

	return model.DisplayPayload{CleanText: clean, Gallery: gallery}
}

// precedingLineTitles scans the paragraph directly before each marker and
// takes its first short, non-bullet line as a title candidate.
func precedingLineTitles(annotated string) []string {
	var candidates []string
	lastPara := ""
	for _, n := range replytext.Parse(annotated) {
		if n.Kind == replytext.Marker {
			if c := firstTitleLine(lastPara); c != "" {
				candidates = append(candidates, c)
			}
			continue
		}
		lastPara = n.Text
	}
	return candidates
}

func firstTitleLine(para string) string {
	for _, line := range strings.Split(para, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < maxFallbackTitleLen &&
			!strings.HasPrefix(line, "- ") && !strings.HasPrefix(line, "• ") {
			return line
		}
	}
	return ""
}
