package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"time"

	"github.com/golang-migrate/migrate/v4"
	gomigratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kodingmuda/media-stream-server/pkg/e"
	"github.com/kodingmuda/media-stream-server/pkg/s"
	_ "github.com/mattn/go-sqlite3" // initialises sqlite3
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var fs embed.FS

type Backend struct {
	db *sql.DB
}

func NewSQLiteBackend(connectionString string) (*Backend, error) {
	db, err := sql.Open("sqlite3", connectionString)
	if err != nil {
		return &Backend{}, err
	}

	backend := Backend{
		db: db,
	}

	if err = backend.Migrate(); err != nil {
		return &Backend{}, err
	}

	return &backend, nil
}

func (b *Backend) Type() string { return "sqlite" }

func (b *Backend) Migrate() error {
	driver, err := gomigratesqlite.WithInstance(b.db, &gomigratesqlite.Config{})
	if err != nil {
		return err
	}

	d, err := iofs.New(fs, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", d, "sqlite3", driver)
	if err != nil {
		return err
	}

	log.Info().Msg("Starting database migrations")
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	log.Info().Msg("Finished database migrations")

	return nil
}

func (b *Backend) GetLesson(id int) (s.Lesson, error) {
	r := s.Lesson{}

	err := b.db.QueryRow(GetLesson, id).Scan(&r.ID, &r.Title, &r.ContentType, &r.ContentURL, &r.UpdatedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return s.Lesson{}, e.ErrLessonNotFound
	} else if err != nil {
		return s.Lesson{}, err
	}

	return r, nil
}

func (b *Backend) PutLesson(lesson s.Lesson) error {
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := b.db.Exec(UpsertLesson, lesson.ID, lesson.Title, lesson.ContentType, lesson.ContentURL, now)
	if err != nil {
		return err
	}
	rowsAffected, _ := result.RowsAffected()
	log.Debug().Int("lesson_id", lesson.ID).Int64("rows", rowsAffected).Msg("Stored lesson")

	return nil
}
