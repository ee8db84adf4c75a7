package database

import (
	"errors"

	"github.com/kodingmuda/media-stream-server/pkg/database/postgres"
	"github.com/kodingmuda/media-stream-server/pkg/database/sqlite"
	"github.com/kodingmuda/media-stream-server/pkg/s"
)

//go:generate mockgen -destination=../mock_backend/database.go -package=mock_backend -mock_names=Backend=MockDatabaseBackend github.com/kodingmuda/media-stream-server/pkg/database Backend

// Backend stores where each lesson's content lives.
type Backend interface {
	Type() string
	GetLesson(id int) (s.Lesson, error)
	PutLesson(lesson s.Lesson) error
}

func GetBackend(backend, connectionString string) (Backend, error) {
	switch backend {
	case "sqlite":
		return sqlite.NewSQLiteBackend(connectionString)
	case "postgres":
		return postgres.NewPostgresBackend(connectionString)
	default:
		return nil, errors.New("invalid database backend")
	}
}
