package postgres

const (
	GetLesson = `SELECT "lesson_id", "title", "content_type", "content_url", "updated_date" FROM lessons WHERE "lesson_id" = $1;`

	UpsertLesson = `INSERT INTO lessons ("lesson_id", "title", "content_type", "content_url", "updated_date") VALUES ($1, $2, $3, $4, $5)
ON CONFLICT ("lesson_id") DO UPDATE SET
  "title" = EXCLUDED."title",
  "content_type" = EXCLUDED."content_type",
  "content_url" = EXCLUDED."content_url",
  "updated_date" = EXCLUDED."updated_date";`
)
