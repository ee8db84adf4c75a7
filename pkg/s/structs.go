package s

const (
	LessonContentVideo = "video"
	LessonContentPDF   = "pdf"
	LessonContentText  = "text"
)

type Lesson struct {
	ID          int    `json:"lessonId"`
	Title       string `json:"title"`
	ContentType string `json:"contentType"` // video, pdf or text
	ContentURL  string `json:"contentUrl"`  // storage key e.g. /uploads/videos/course-3/intro.mp4
	UpdatedDate string `json:"updatedDate"` // 2021-11-02T23:02:58Z
}

// Streamable reports whether the lesson points at a file that can be served.
func (l Lesson) Streamable() bool {
	return l.ContentType != LessonContentText && l.ContentURL != ""
}

func ValidLessonContentType(contentType string) bool {
	switch contentType {
	case LessonContentVideo, LessonContentPDF, LessonContentText:
		return true
	}
	return false
}
