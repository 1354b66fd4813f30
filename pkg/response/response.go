package response

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"spanischmitbelu.com/gamification/pkg/apperror"
	fmtValidator "spanischmitbelu.com/gamification/pkg/validator"
)

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		log.Error("[Internal Error]", "path", c.FullPath(), "err", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// BindingError answers a failed ShouldBind* call with a 400 and readable messages.
func BindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmtValidator.FormatValidationError(validationErrors)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// Data wraps payload the way every list/view endpoint answers.
func Data(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, gin.H{"data": payload})
}
