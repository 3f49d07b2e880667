package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theOrangeShi/seo-analazing/analyzer"
	"github.com/theOrangeShi/seo-analazing/models"
)

// AnalyzeStream returns a handler for POST /api/v1/analyze/stream.
//
// The response is a Server-Sent Events stream: one `data: <json>` frame per
// pipeline event, ending with a terminal complete or error event. When the
// client disconnects, the request context cancels the analysis worker.
func AnalyzeStream(an *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")

		events := an.Stream(c.Request.Context(), req.URL, req.FullSiteAnalysis)

		c.Stream(func(w io.Writer) bool {
			ev, ok := <-events
			if !ok {
				return false
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				return false
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			return !ev.Terminal()
		})
	}
}
