package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
)

// RespondAppError maps the service error taxonomy onto HTTP statuses. Errors
// outside the taxonomy are treated as internal. Validation, auth, not-found
// and conflict messages originate in our own services and go to the client
// as-is; storage, upstream and internal failures carry engine or third-party
// detail, so the client gets a fixed message and the detail stays on the
// request for the logger.
func RespondAppError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, apperr.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, apperr.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperr.ErrConflict):
		RespondError(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, apperr.ErrUpstream):
		respondOpaque(c, http.StatusBadGateway, "upstream_failed", "upstream service unavailable", err)
	case errors.Is(err, apperr.ErrStorageUnavailable):
		respondOpaque(c, http.StatusServiceUnavailable, "storage_unavailable", "storage unavailable", err)
	default:
		respondOpaque(c, http.StatusInternalServerError, "internal_error", "internal error", err)
	}
}

func respondOpaque(c *gin.Context, status int, code, message string, err error) {
	_ = c.Error(err)
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: message,
			Code:    code,
		},
	})
}
