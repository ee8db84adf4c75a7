package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"time"

	"github.com/golang-migrate/migrate/v4"
	gomigratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kodingmuda/media-stream-server/pkg/e"
	"github.com/kodingmuda/media-stream-server/pkg/s"
	_ "github.com/lib/pq" // initialises postgres
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var fs embed.FS

type Backend struct {
	db *sql.DB
}

func NewPostgresBackend(connectionString string) (*Backend, error) {
	db, err := sql.Open("postgres", connectionString)
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

func (b *Backend) Type() string { return "postgres" }

func (b *Backend) Migrate() error {
	driver, err := gomigratepostgres.WithInstance(b.db, &gomigratepostgres.Config{})
	if err != nil {
		return err
	}

	d, err := iofs.New(fs, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", d, "postgres", driver)
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
	var updated time.Time

	err := b.db.QueryRow(GetLesson, id).Scan(&r.ID, &r.Title, &r.ContentType, &r.ContentURL, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return s.Lesson{}, e.ErrLessonNotFound
	} else if err != nil {
		return s.Lesson{}, err
	}
	r.UpdatedDate = updated.UTC().Format(time.RFC3339)

	return r, nil
}

func (b *Backend) PutLesson(lesson s.Lesson) error {
	result, err := b.db.Exec(UpsertLesson, lesson.ID, lesson.Title, lesson.ContentType, lesson.ContentURL, time.Now().UTC())
	if err != nil {
		return err
	}
	rowsAffected, _ := result.RowsAffected()
	log.Debug().Int("lesson_id", lesson.ID).Int64("rows", rowsAffected).Msg("Stored lesson")

	return nil
}
