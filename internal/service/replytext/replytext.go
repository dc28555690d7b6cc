// Package replytext parses model reply text into a typed node sequence:
// prose segments, movie blocks and poster markers. The annotation and
// formatting stages both work on this sequence instead of matching raw
// regexes over the full reply.
package replytext

import (
	"regexp"
	"strings"
)

type Kind int

const (
	Prose Kind = iota
	Movie
	Marker
)

// Node is one segment of a reply. Text is the paragraph body for Prose
// and Movie nodes; Title and Year are set only on Movie nodes when the
// block carries them; URL is set only on Marker nodes.
type Node struct {
	Kind  Kind
	Text  string
	Title string
	Year  string
	URL   string
}

var (
	markerRe     = regexp.MustCompile(`\[POSTER_URL: ([^\]]*)\]`)
	markerLineRe = regexp.MustCompile(`^\[POSTER_URL: ([^\]]*)\]$`)
	parenYearRe  = regexp.MustCompile(`\((\d{4})\)`)
	titleFieldRe = regexp.MustCompile(`Title:\s*(.*)`)
	titleYearRe  = regexp.MustCompile(`(.*?)\s*\((\d{4})\)`)
	yearFieldRe  = regexp.MustCompile(`Year:\s*(\d{4})`)

	// Display-title candidates for the formatter: a capitalized run
	// that is directly followed by a (YYYY) year.
	capTitleRe = regexp.MustCompile(`\b([A-Z][^()\n]*?)\s*\(\d{4}\)`)
)

// Parse splits text on blank-line boundaries and classifies each piece.
// A paragraph is a movie block when it contains a "Title:" field or a
// (YYYY) year pattern. Marker lines become standalone Marker nodes in
// document order; everything else keeps its paragraph text verbatim.
func Parse(text string) []Node {
	var nodes []Node
	for _, chunk := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		var para []string
		flush := func() {
			p := strings.TrimSpace(strings.Join(para, "\n"))
			para = para[:0]
			if p == "" {
				return
			}
			nodes = append(nodes, classify(p))
		}

		for _, line := range strings.Split(chunk, "\n") {
			if m := markerLineRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				flush()
				nodes = append(nodes, Node{Kind: Marker, URL: m[1]})
				continue
			}
			para = append(para, line)
		}
		flush()
	}
	return nodes
}

func classify(p string) Node {
	if !strings.Contains(p, "Title:") && !parenYearRe.MatchString(p) {
		return Node{Kind: Prose, Text: p}
	}

	n := Node{Kind: Movie, Text: p}
	if m := titleFieldRe.FindStringSubmatch(p); m != nil {
		n.Title = strings.TrimSpace(m[1])
	} else if m := titleYearRe.FindStringSubmatch(p); m != nil {
		n.Title = strings.TrimSpace(m[1])
	}

	if m := yearFieldRe.FindStringSubmatch(p); m != nil {
		n.Year = m[1]
	} else if m := parenYearRe.FindStringSubmatch(p); m != nil {
		n.Year = m[1]
	}
	return n
}

// Markers returns all embedded poster URLs in left-to-right order.
func Markers(text string) []string {
	var urls []string
	for _, m := range markerRe.FindAllStringSubmatch(text, -1) {
		urls = append(urls, m[1])
	}
	return urls
}

// StripMarkers removes every poster marker, concatenating the text
// segments between and around them.
func StripMarkers(text string) string {
	return strings.Join(markerRe.Split(text, -1), "")
}

// FieldTitles returns every "Title: <text>" capture in order of appearance.
func FieldTitles(text string) []string {
	var titles []string
	for _, m := range titleFieldRe.FindAllStringSubmatch(text, -1) {
		titles = append(titles, strings.TrimSpace(m[1]))
	}
	return titles
}

// CapitalizedTitles returns every "<Capitalized text> (YYYY)" capture in
// order of appearance.
func CapitalizedTitles(text string) []string {
	var titles []string
	for _, m := range capTitleRe.FindAllStringSubmatch(text, -1) {
		titles = append(titles, strings.TrimSpace(m[1]))
	}
	return titles
}
