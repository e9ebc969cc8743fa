package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jacksonlmp/taskflow/internal/store"
)

// Unique constraints mapped to the field named in the validation response.
var constraintFields = map[string]struct{ field, message string }{
	"organizations_slug_key": {
		field:   "slug",
		message: "organization with this slug already exists.",
	},
	"profiles_user_id_organization_id_key": {
		field:   "non_field_errors",
		message: "The fields user, organization must make a unique set.",
	},
	"users_username_key": {
		field:   "username",
		message: "A user with that username already exists.",
	},
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
}

// handleServiceError maps store/service errors onto the API error shapes:
// not-found (which doubles as the access-control response), duplicate-key
// validation failures with field detail, and a logged 500 for the rest.
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		notFound(c)
		return
	}

	var dup *store.DuplicateError
	if errors.As(err, &dup) {
		if f, ok := constraintFields[dup.Constraint]; ok {
			c.JSON(http.StatusBadRequest, gin.H{f.field: []string{f.message}})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{"duplicate value."}})
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"error", err,
		"path", c.FullPath(),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
}

// bindingError turns gin binding failures into per-field messages.
func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(gin.H, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = []string{validationMessage(fe)}
		}
		c.JSON(http.StatusBadRequest, fields)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "oneof":
		return "\"" + fe.Value().(string) + "\" is not a valid choice."
	default:
		return "This field is invalid."
	}
}

// pathID parses the numeric :id segment. A malformed id behaves like a
// missing row.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return id, true
}
