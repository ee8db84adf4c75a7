package sqlite

const (
	GetLesson = `SELECT "lesson_id", "title", "content_type", "content_url", "updated_date" FROM lessons WHERE "lesson_id" = ?;`

	UpsertLesson = `INSERT INTO lessons ("lesson_id", "title", "content_type", "content_url", "updated_date") VALUES (?, ?, ?, ?, ?)
ON CONFLICT ("lesson_id") DO UPDATE SET
  "title" = excluded."title",
  "content_type" = excluded."content_type",
  "content_url" = excluded."content_url",
  "updated_date" = excluded."updated_date";`
)
