package middleware

import (
	"fmt"
	"net/http"

	"macro-scenario-risk/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and renders the standard error envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		if recovered != nil {
			msg = fmt.Sprint(recovered)
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
		c.Abort()
	})
}
