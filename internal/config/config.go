package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type Qdrant struct {
	Host       string
	Port       int
	Collection string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	Enabled  bool
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Enabled  bool
}

type OpenAI struct {
	APIKey      string
	Model       string
	EmbedModel  string
	Temperature float64
	MaxTokens   int
}

type TMDB struct {
	APIKey        string
	BaseURL       string
	PosterBaseURL string
	MinInterval   time.Duration
	Timeout       time.Duration
}

type Preferences struct {
	FilePath string
}

type Config struct {
	HTTP        HTTPServer
	Qdrant      Qdrant
	Redis       RedisCache
	Postgres    Postgres
	OpenAI      OpenAI
	TMDB        TMDB
	Preferences Preferences
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return &Config{
		HTTP:        *newHTTP(),
		Qdrant:      *newQdrant(),
		Redis:       *newRedis(),
		Postgres:    *newPostgres(),
		OpenAI:      *newOpenAI(),
		TMDB:        *newTMDB(),
		Preferences: *newPreferences(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newQdrant() *Qdrant {
	return &Qdrant{
		Host:       getenv("QDRANT_HOST", "localhost"),
		Port:       getenvInt("QDRANT_PORT", 6334),
		Collection: getenv("QDRANT_COLLECTION", "movie_collection"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", ""),
		Password: getenv("REDIS_PASSWORD", ""),
		Enabled:  os.Getenv("REDIS_HOST") != "",
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", ""),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", ""),
		DBName:   getenv("DB_NAME", "moviemind"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
		Enabled:  os.Getenv("DB_HOST") != "",
	}
}

func newOpenAI() *OpenAI {
	return &OpenAI{
		APIKey:      getenv("OPENAI_API_KEY", ""),
		Model:       getenv("OPENAI_MODEL", "gpt-3.5-turbo"),
		EmbedModel:  getenv("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
		Temperature: 0.7,
		MaxTokens:   1024,
	}
}

func newTMDB() *TMDB {
	return &TMDB{
		APIKey:        getenv("TMDB_API_KEY", ""),
		BaseURL:       getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		PosterBaseURL: getenv("TMDB_POSTER_BASE_URL", "https://image.tmdb.org/t/p/w500"),
		MinInterval:   250 * time.Millisecond,
		Timeout:       5 * time.Second,
	}
}

func newPreferences() *Preferences {
	return &Preferences{
		FilePath: getenv("PREFERENCES_FILE", "data/user_preferences.json"),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("%s %s is not a number, using default %d", logtag, key, defaultValue)
		return defaultValue
	}
	return n
}
