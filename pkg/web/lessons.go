package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kodingmuda/media-stream-server/pkg/e"
	"github.com/kodingmuda/media-stream-server/pkg/s"
	"github.com/rs/zerolog/log"
)

func lessonID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("lessonid"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lessonId must be a positive integer"})
		return 0, false
	}
	return id, true
}

// LessonContent streams whatever file the lesson points at.
func (h *Handlers) LessonContent(c *gin.Context) {
	id, ok := lessonID(c)
	if !ok {
		return
	}

	lesson, err := h.Database.GetLesson(id)
	if err != nil {
		if errors.Is(err, e.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Error().Err(err).Int("lesson_id", id).Msg("Failed to get lesson")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get lesson"})
		}
		return
	}

	if !lesson.Streamable() {
		c.JSON(http.StatusNotFound, gin.H{"error": e.ErrNoLessonContent.Error()})
		return
	}

	if lesson.ContentType == s.LessonContentPDF {
		h.serveKey(c, lesson.ContentURL, pdfStream)
		return
	}
	h.serveKey(c, lesson.ContentURL, plainStream)
}

type PutLessonRequest struct {
	Title       string `json:"title" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	ContentURL  string `json:"contentUrl"`
}

type PutLessonResponse struct {
	LessonID  int    `json:"lessonId"`
	StreamURL string `json:"streamUrl,omitempty"`
}

func (h *Handlers) PutLesson(c *gin.Context) {
	id, ok := lessonID(c)
	if !ok {
		return
	}

	var json PutLessonRequest
	if err := c.ShouldBindJSON(&json); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !s.ValidLessonContentType(json.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contentType must be one of video, pdf or text"})
		return
	}

	lesson := s.Lesson{
		ID:          id,
		Title:       json.Title,
		ContentType: json.ContentType,
		ContentURL:  json.ContentURL,
	}
	if lesson.ContentType != s.LessonContentText && lesson.ContentURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contentUrl is required for video and pdf lessons"})
		return
	}

	if err := h.Database.PutLesson(lesson); err != nil {
		log.Error().Err(err).Int("lesson_id", id).Msg("Failed to store lesson")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store lesson"})
		return
	}
	log.Info().Int("lesson_id", id).Str("subject", c.GetString("subject")).Msg("Lesson content updated")

	resp := PutLessonResponse{LessonID: id}
	if lesson.Streamable() {
		streamURL := url.URL{
			Scheme: c.Request.URL.Scheme,
			Host:   c.Request.Host,
			Path:   "/lessons/" + strconv.Itoa(id) + "/content",
		}
		resp.StreamURL = streamURL.String()
	}
	c.JSON(http.StatusOK, resp)
}
