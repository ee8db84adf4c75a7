// Based on https://github.com/zsais/go-gin-prometheus/blob/master/middleware.go, didn't need all the bells
// and whistles, all props goes to @zsais

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var reqCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "How many HTTP requests processed, partitioned by status code and HTTP method",
}, []string{"code", "method", "handler", "url"})

var reqDur = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name: "http_request_duration_seconds",
	Help: "The HTTP request latencies in seconds",
	// Streaming responses can run for a long time
	Buckets: []float64{.005, .01, .05, .1, .5, 1, 5, 15, 60, 300},
}, []string{"code", "method", "url"})

var respSize = prometheus.NewSummary(prometheus.SummaryOpts{
	Name: "http_response_size_bytes",
	Help: "The HTTP response sizes in bytes",
})

var reqSize = prometheus.NewSummary(prometheus.SummaryOpts{
	Name: "http_request_size_bytes",
	Help: "The HTTP request sizes in bytes",
})

// requestPathMapper uses the route template so /files/stream/videos/*path
// doesn't explode into one series per file.
func requestPathMapper(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}

func PromReqMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqSz := float64(computeApproximateRequestSize(c.Request))

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)
		resSz := float64(c.Writer.Size())
		if resSz < 0 {
			resSz = 0
		}

		url := requestPathMapper(c)
		reqDur.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		reqCount.WithLabelValues(status, c.Request.Method, c.HandlerName(), url).Inc()
		reqSize.Observe(reqSz)
		respSize.Observe(resSz)
	}
}

func computeApproximateRequestSize(r *http.Request) int {
	s := 0
	if r.URL != nil {
		s = len(r.URL.Path)
	}

	s += len(r.Method)
	s += len(r.Proto)
	for name, values := range r.Header {
		s += len(name)
		for _, value := range values {
			s += len(value)
		}
	}
	s += len(r.Host)

	if r.ContentLength != -1 {
		s += int(r.ContentLength)
	}
	return s
}
