package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theOrangeShi/seo-analazing/score"
)

// Metrics returns a handler for GET /api/v1/metrics.
//
// Serves the static metric catalog: display name, icon, and the
// content-profile weight per metric.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"metrics": score.Catalog()})
	}
}
