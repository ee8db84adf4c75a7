package web

import (
	"github.com/gin-gonic/gin"
	"github.com/kodingmuda/media-stream-server/pkg/metrics"
)

func GetRouter(metricsListenAddress string, webHandler Handlers, withMetrics bool) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), GinLogger())
	if withMetrics {
		router.Use(metrics.PromReqMiddleware())
		go metrics.Server(metricsListenAddress)
	}
	router.Use(XForwarded("http"))

	router.GET("/healthz", HealthCheckEndpoint)
	router.GET("/ping", PingEndpoint)

	// Players probe with HEAD before issuing range requests
	filesGroup := router.Group("/files")
	lessonsGroup := router.Group("/lessons")
	for _, method := range []string{"GET", "HEAD"} {
		filesGroup.Handle(method, "/stream", webHandler.StreamByPath)
		filesGroup.Handle(method, "/stream/videos/*path", webHandler.StreamVideo)
		filesGroup.Handle(method, "/stream/pdf", webHandler.StreamPDF)
		filesGroup.Handle(method, "/stream/pdf/range", webHandler.StreamPDF)
		filesGroup.Handle(method, "/view", webHandler.ViewFile)
		filesGroup.Handle(method, "/download", webHandler.DownloadFile)

		lessonsGroup.Handle(method, "/:lessonid/content", webHandler.LessonContent)
	}

	authedGroup := lessonsGroup.Group("")
	authedGroup.Use(webHandler.AuthRequired())
	authedGroup.PUT("/:lessonid", webHandler.PutLesson)

	return router
}
