package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.POST(AnalyzeURL, service.analyze)

	router.GET(BatchesURL, service.listBatches)
	router.GET(BatchesURL+"/:id", service.getBatch)

	server.Handler = router
	service.router = router
}
