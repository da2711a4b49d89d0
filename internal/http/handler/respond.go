package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Machine-readable error kinds carried alongside every error message.
const (
	kindUnauthorized     = "unauthorized"
	kindNotFound         = "not_found"
	kindInvalidArgument  = "invalid_argument"
	kindValidationFailed = "validation_failed"
	kindInternal         = "internal"
)

func respondError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{"error": message, "kind": kind})
}

// respondBindingError turns a gin binding failure into a validation_failed
// payload with per-field messages where the validator provides them.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = validationMessage(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"kind":   kindValidationFailed,
			"fields": fields,
		})
		return
	}

	respondError(c, http.StatusBadRequest, kindValidationFailed, err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "value is below the minimum of " + fe.Param()
	case "max":
		return "value exceeds the maximum of " + fe.Param()
	default:
		return "failed validation rule: " + fe.Tag()
	}
}
