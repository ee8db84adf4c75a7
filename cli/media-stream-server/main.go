package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/kodingmuda/media-stream-server/pkg/database"
	"github.com/kodingmuda/media-stream-server/pkg/storage"
	"github.com/kodingmuda/media-stream-server/pkg/streaming"
	"github.com/kodingmuda/media-stream-server/pkg/utils/logging"
	"github.com/kodingmuda/media-stream-server/pkg/web"
	"github.com/rs/zerolog/log"
)

var cli struct {
	// Database backends
	DBSqlite   string `env:"DB_SQLITE" required:"" xor:"db" help:"SQLite filepath e.g. /tmp/db.sqlite"`
	DBPostgres string `env:"DB_POSTGRES" required:"" xor:"db" help:"Postgres URI e.g. postgresql://blah"`

	// Storage backends
	StorageDisk  string `env:"STORAGE_DISK" required:"" xor:"storage" help:"Serve lesson media from disk e.g. /srv/uploads"`
	StorageS3    string `env:"STORAGE_S3" required:"" xor:"storage" name:"storage-s3" help:"Serve lesson media from S3 e.g. s3://bucket/prefix"`
	StorageAzure string `env:"STORAGE_AZURE" required:"" xor:"storage" help:"Serve lesson media from Azure blob storage, connection string with Container=..."`

	// Streaming
	ChunkSize       int64 `env:"CHUNK_SIZE" default:"1048576" help:"Maximum bytes served by one partial response"`
	StreamRateLimit int   `env:"STREAM_RATE_LIMIT" default:"0" help:"Bytes per second cap per response, 0 is unlimited"`

	// Auth
	JWTSecret string `env:"JWT_SECRET" help:"Shared secret for HS256 bearer tokens"`
	JWKSURL   string `env:"JWKS_URL" name:"jwks-url" help:"JWKS url for RS256/ES256 bearer tokens"`

	// Misc
	LogLevel             string `env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,error"`
	LogFormat            string `env:"LOG_FORMAT" default:"json" enum:"json,console"`
	ListenAddress        string `env:"LISTEN_ADDR" default:"0.0.0.0:8080" help:"Listen address e.g. 0.0.0.0:8080"`
	MetricsListenAddress string `env:"METRICS_LISTEN_ADDR" default:"0.0.0.0:9102" help:"Listen address for prometheus metrics e.g. 0.0.0.0:9102"`
	Debug                bool   `env:"DEBUG" help:"Enable debug mode"`
}

func main() {
	kong.Parse(&cli)

	logging.SetupLogging(cli.LogLevel, cli.LogFormat)
	uuid.EnableRandPool()

	var databaseBackendName, dbConnectionString string
	if cli.DBSqlite != "" {
		databaseBackendName = "sqlite"
		dbConnectionString = cli.DBSqlite
	}
	if cli.DBPostgres != "" {
		databaseBackendName = "postgres"
		dbConnectionString = cli.DBPostgres
	}

	var storageBackendName, storageConnectionString string
	if cli.StorageDisk != "" {
		storageBackendName = "disk"
		storageConnectionString = cli.StorageDisk
	}
	if cli.StorageS3 != "" {
		storageBackendName = "s3"
		storageConnectionString = cli.StorageS3
	}
	if cli.StorageAzure != "" {
		storageBackendName = "azureblob"
		storageConnectionString = cli.StorageAzure
	}

	dbBackend, err := database.GetBackend(databaseBackendName, dbConnectionString)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initiate database backend")
	}

	storageBackend, err := storage.GetStorageBackend(storageBackendName, storageConnectionString)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initiate storage backend")
	}

	streamer := streaming.New(streaming.Config{
		ChunkSize: cli.ChunkSize,
		RateLimit: cli.StreamRateLimit,
	})

	handlers := web.Handlers{
		Database: dbBackend,
		Storage:  storageBackend,
		Streamer: streamer,
		Debug:    cli.Debug,
	}
	if cli.JWTSecret != "" {
		handlers.JWTSecret = []byte(cli.JWTSecret)
	}
	if cli.JWKSURL != "" {
		handlers.JWKS = web.NewJWKS(context.Background(), cli.JWKSURL)
	}

	router := web.GetRouter(cli.MetricsListenAddress, handlers, true)

	log.Info().
		Str("storage", storageBackend.Type()).
		Str("database", dbBackend.Type()).
		Int64("chunk_size", streamer.ChunkSize()).
		Msgf("Listening on %s", cli.ListenAddress)
	if err = router.Run(cli.ListenAddress); err != nil {
		log.Fatal().Err(err).Msg("Failed HTTP server loop")
	}
}
