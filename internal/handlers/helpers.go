package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "gbce/internal/errors"
	"gbce/internal/logger"
)

// parsePriceQuery parses the required "price" query parameter.
// Returns ErrInvalidInput when missing or not a valid non-negative number.
func parsePriceQuery(c *gin.Context) (float64, error) {
	raw := c.Query("price")
	if raw == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "price is required")
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid price")
	}
	return price, nil
}

// parseWindowQuery parses the optional "window" query parameter (minutes),
// falling back to the given default when absent.
func parseWindowQuery(c *gin.Context, defaultMinutes int) (int, error) {
	raw := c.Query("window")
	if raw == "" {
		return defaultMinutes, nil
	}
	window, err := strconv.Atoi(raw)
	if err != nil || window <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid window")
	}
	return window, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
