package web

import (
	"errors"
	"mime"
	"net/http"
	p "path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kodingmuda/media-stream-server/pkg/e"
	"github.com/kodingmuda/media-stream-server/pkg/metrics"
	"github.com/kodingmuda/media-stream-server/pkg/streaming"
	"github.com/rs/zerolog/log"
)

type streamOptions struct {
	// inline or attachment, empty leaves Content-Disposition unset
	disposition  string
	withFilename bool
	pdfOnly      bool
	extraHeaders map[string]string
}

var (
	plainStream = streamOptions{}
	pdfStream   = streamOptions{
		disposition:  "inline",
		withFilename: true,
		pdfOnly:      true,
		extraHeaders: map[string]string{
			"Cache-Control":               "no-cache",
			"Access-Control-Allow-Origin": "*",
		},
	}
	viewStream     = streamOptions{disposition: "inline"}
	downloadStream = streamOptions{disposition: "attachment", withFilename: true}
)

func (o streamOptions) contentDisposition(key string) string {
	if o.disposition == "" {
		return ""
	}
	if !o.withFilename {
		return o.disposition
	}
	return mime.FormatMediaType(o.disposition, map[string]string{"filename": p.Base(key)})
}

// StreamVideo serves /files/stream/videos/*path from the videos directory.
func (h *Handlers) StreamVideo(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("path"), "/")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing video path"})
		return
	}
	h.serveKey(c, "videos/"+key, plainStream)
}

func (h *Handlers) StreamByPath(c *gin.Context) {
	if key, ok := pathQuery(c); ok {
		h.serveKey(c, key, plainStream)
	}
}

func (h *Handlers) StreamPDF(c *gin.Context) {
	if key, ok := pathQuery(c); ok {
		h.serveKey(c, key, pdfStream)
	}
}

func (h *Handlers) ViewFile(c *gin.Context) {
	if key, ok := pathQuery(c); ok {
		h.serveKey(c, key, viewStream)
	}
}

func (h *Handlers) DownloadFile(c *gin.Context) {
	if key, ok := pathQuery(c); ok {
		h.serveKey(c, key, downloadStream)
	}
}

func pathQuery(c *gin.Context) (string, bool) {
	key := c.Query("path")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing path query parameter"})
		return "", false
	}
	return key, true
}

func (h *Handlers) serveKey(c *gin.Context, key string, opts streamOptions) {
	if opts.pdfOnly && !strings.EqualFold(p.Ext(key), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is not a pdf"})
		return
	}
	disposition := opts.contentDisposition(key)

	// Object stores do range serving themselves
	if h.Storage.Type() != "disk" {
		archiveURL, err := h.Storage.GenerateArchiveURL(c, key, disposition)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			} else {
				log.Error().Err(err).Str("key", key).Msg("Failed to get archive url")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get file"})
			}
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, archiveURL)
		return
	}

	filePath, err := h.Storage.GetFilePath(key)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		} else {
			log.Error().Err(err).Str("key", key).Msg("Failed to get file path")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get file"})
		}
		return
	}

	outcome, err := h.Streamer.Resolve(filePath, c.GetHeader("Range"))
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to resolve file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get file"})
		return
	}
	metrics.StreamOutcome(streaming.Name(outcome))

	switch outcome.(type) {
	case streaming.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	case streaming.RangeNotSatisfiable:
		log.Debug().Str("key", key).Str("range", c.GetHeader("Range")).Msg("Range not satisfiable")
		writeFraming(c, outcome, "", nil)
		c.Writer.WriteHeaderNow()
		return
	}

	if c.Request.Method == http.MethodHead {
		writeFraming(c, outcome, disposition, opts.extraHeaders)
		c.Writer.WriteHeaderNow()
		return
	}

	body, err := h.Streamer.Open(outcome)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to open file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get file"})
		return
	}
	metrics.StreamFileOpened()
	defer func() {
		_ = body.Close()
		metrics.StreamFileClosed()
	}()

	writeFraming(c, outcome, disposition, opts.extraHeaders)
	written, err := h.Streamer.Copy(c.Request.Context(), c.Writer, body)
	metrics.StreamBytes(outcome.StatusCode(), written)
	if err != nil {
		if errors.Is(err, streaming.ErrClientGone) {
			metrics.StreamAborted()
			log.Debug().Err(err).Str("key", key).Int64("written", written).Msg("Client went away mid stream")
			return
		}
		// Headers are gone already, all we can do is cut the body short
		log.Error().Err(err).Str("key", key).Int64("written", written).Msg("Failed to stream file")
		_ = c.Error(err)
	}
}

func writeFraming(c *gin.Context, outcome streaming.Outcome, disposition string, extra map[string]string) {
	header := c.Writer.Header()
	for name, values := range outcome.Header() {
		header[name] = values
	}
	if disposition != "" {
		header.Set("Content-Disposition", disposition)
	}
	for name, value := range extra {
		header.Set(name, value)
	}
	c.Status(outcome.StatusCode())
}
