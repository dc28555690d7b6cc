package app

import (
	"log"
	"log/slog"

	"github.com/moviemind/core/internal/config"
	http_chat "github.com/moviemind/core/internal/delivery/http/chat"
	http_favorites "github.com/moviemind/core/internal/delivery/http/favorites"
	http_init "github.com/moviemind/core/internal/delivery/http/init"
	http_transcript "github.com/moviemind/core/internal/delivery/http/transcript"
	ws_chat "github.com/moviemind/core/internal/delivery/ws/chat"
	infra_memory_history "github.com/moviemind/core/internal/infra/memory/history"
	infra_openai "github.com/moviemind/core/internal/infra/openai"
	infra_pg_init "github.com/moviemind/core/internal/infra/postgres/init"
	infra_postgres_transcript "github.com/moviemind/core/internal/infra/postgres/transcript"
	infra_qdrant "github.com/moviemind/core/internal/infra/qdrant"
	infra_redis_history "github.com/moviemind/core/internal/infra/redis/history"
	infra_redis_init "github.com/moviemind/core/internal/infra/redis/init"
	infra_tmdb "github.com/moviemind/core/internal/infra/tmdb"
	"github.com/moviemind/core/internal/service/annotator"
	storage_preferences "github.com/moviemind/core/internal/storage/preferences"
	usecase_recommend "github.com/moviemind/core/internal/usecase/recommend"
)

func Go(cfg *config.Config) {
	const historyKey = "chat_history"

	logger := slog.Default()

	retriever := infra_qdrant.MustEstablishConn(cfg.Qdrant, infra_qdrant.WithLogger(logger))
	modelClient := infra_openai.New(cfg.OpenAI)
	posterClient := infra_tmdb.New(cfg.TMDB, infra_tmdb.WithLogger(logger))

	var history usecase_recommend.HistoryStore
	if cfg.Redis.Enabled {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		history = infra_redis_history.New(redisConn, historyKey)
	} else {
		history = infra_memory_history.New()
	}

	prefStore, err := storage_preferences.New(cfg.Preferences.FilePath)
	if err != nil {
		log.Fatalf("failed to open preference store: %v", err)
	}

	ann := annotator.New(posterClient, annotator.WithLogger(logger))

	ucOpts := []usecase_recommend.Option{usecase_recommend.WithLogger(logger)}
	var transcripts *infra_postgres_transcript.Repository
	if cfg.Postgres.Enabled {
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		transcripts = infra_postgres_transcript.New(pgConn)
		ucOpts = append(ucOpts, usecase_recommend.WithTranscriptArchive(transcripts))
	}

	recommendUC := usecase_recommend.New(
		modelClient,
		retriever,
		modelClient,
		ann,
		history,
		prefStore,
		ucOpts...,
	)

	hub := ws_chat.New(logger)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_chat.New(recommendUC,
		http_chat.WithHub(hub),
		http_chat.WithLogger(logger)))
	controllerPool.Add(http_favorites.New(prefStore,
		http_favorites.WithLogger(logger)))
	controllerPool.Add(ws_chat.NewController(hub, logger))
	if transcripts != nil {
		controllerPool.Add(http_transcript.New(transcripts,
			http_transcript.WithLogger(logger)))
	}

	controllerPool.Register()
	controllerPool.StaticFile("/", "./web/index.html")
	controllerPool.RunAll(cfg.HTTP.Port)
}
