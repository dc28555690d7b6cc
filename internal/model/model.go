package model

type UserID = string

const DefaultUserID UserID = "demo_user"

type SessionID = string

// MovieRecord is a structured movie description returned by retrieval.
// Immutable once fetched; lives for a single query.
type MovieRecord struct {
	ID       string
	Title    string
	Year     int // 0 when unknown
	Genres   []string
	Director string
	Actors   []string
	Plot     string
}

// ConversationTurn is one user/assistant exchange, appended to a
// per-session history and read back during prompt construction.
type ConversationTurn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

type UserPreferences struct {
	Favorites []string `json:"favorites"`
}

// PosterCard binds a display title to a poster image URL.
type PosterCard struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// DisplayPayload is the terminal output of the response pipeline:
// prose with poster markers stripped plus an ordered poster gallery.
type DisplayPayload struct {
	CleanText string
	Gallery   []PosterCard
}

type Embedding []float32
