package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.GET(KindsURL, service.getKinds)
	router.POST(ScanURL, service.scan)

	router.GET(FileTagsURL, service.getFileTags)
	router.DELETE(FilesURL, service.deleteFile)

	router.GET(FindTagsURL, service.findTags)

	server.Handler = router
	service.router = router
}
