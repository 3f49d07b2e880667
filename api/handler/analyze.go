package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theOrangeShi/seo-analazing/analyzer"
	"github.com/theOrangeShi/seo-analazing/cache"
	"github.com/theOrangeShi/seo-analazing/models"
)

// Analyze returns a handler for POST /api/v1/analyze.
//
// Orchestration flow:
//  1. Parse & validate request.
//  2. Cache lookup keyed by normalized URL + analysis mode.
//  3. Run the full pipeline, blocking until the report is ready.
//  4. Cache store, return 200.
func Analyze(an *analyzer.Analyzer, cc *cache.Cache) gin.HandlerFunc {
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

		cacheKey := cache.Key(analyzer.Normalize(req.URL), req.FullSiteAnalysis)
		if cc != nil && req.MaxAge > 0 {
			if cached, hit := cc.Get(cacheKey, req.MaxAge); hit {
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		outcome, err := an.Analyze(c.Request.Context(), req.URL, req.FullSiteAnalysis, nil)
		if err != nil {
			respondError(c, err)
			return
		}

		report := outcome.Report()
		if cc != nil && req.MaxAge > 0 {
			cc.Set(cacheKey, report)
		}

		c.JSON(http.StatusOK, report)
	}
}

// respondError maps an AuditError to the correct HTTP status code and writes
// a structured JSON error response.
func respondError(c *gin.Context, err error) {
	var auditErr *models.AuditError
	if !errors.As(err, &auditErr) {
		auditErr = models.NewAuditError(models.ErrCodeInternal, err.Error(), err)
	}

	c.JSON(mapErrorToStatus(auditErr), models.ErrorResponse{
		Error: auditErr.ToDetail(),
	})
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.AuditError) int {
	switch e.Code {
	case models.ErrCodeTimeout:
		return http.StatusGatewayTimeout // 504
	case models.ErrCodeFetchFailed:
		return http.StatusBadGateway // 502
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	case models.ErrCodeUnauthorized:
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
