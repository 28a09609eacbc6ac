package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg gin.IRoutes) {
	rg.GET("/ping", ping)
}

// ping reports liveness only; the catalog is not consulted.
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
