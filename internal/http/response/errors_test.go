package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
)

func TestRespondAppErrorStatusMapping(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperr.ErrValidation, http.StatusBadRequest, "invalid_request"},
		{apperr.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{apperr.ErrNotFound, http.StatusNotFound, "not_found"},
		{apperr.ErrConflict, http.StatusConflict, "conflict"},
		{apperr.ErrUpstream, http.StatusBadGateway, "upstream_failed"},
		{apperr.ErrStorageUnavailable, http.StatusServiceUnavailable, "storage_unavailable"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.code, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			// Wrapped errors must map the same as bare sentinels.
			RespondAppError(c, fmt.Errorf("context: %w", tc.err))
			if rec.Code != tc.status {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tc.status)
			}
		})
	}
}

func TestRespondAppErrorHidesEngineDetail(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		err     error
		message string
	}{
		{
			"storage",
			fmt.Errorf("%w: create account: dial tcp 10.0.0.5:5432: connect: connection refused (SQLSTATE 08006)", apperr.ErrStorageUnavailable),
			"storage unavailable",
		},
		{
			"upstream",
			fmt.Errorf("%w: generative-text call failed: Post \"http://api.internal/v1beta\": connection refused", apperr.ErrUpstream),
			"upstream service unavailable",
		},
		{
			"internal",
			fmt.Errorf("pq: relation \"accounts\" does not exist"),
			"internal error",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			RespondAppError(c, tc.err)

			var envelope ErrorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if envelope.Error.Message != tc.message {
				t.Fatalf("unexpected message: got=%q want=%q", envelope.Error.Message, tc.message)
			}
			for _, leaked := range []string{"SQLSTATE", "dial tcp", "pq:", "http://"} {
				if strings.Contains(rec.Body.String(), leaked) {
					t.Fatalf("engine detail %q leaked to the client: %s", leaked, rec.Body.String())
				}
			}
			if len(c.Errors) == 0 {
				t.Fatal("wrapped detail must stay on the context for the request logger")
			}
		})
	}
}

func TestRespondAppErrorKeepsOwnMessages(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondAppError(c, fmt.Errorf("%w: a title is required", apperr.ErrValidation))

	var envelope ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if !strings.Contains(envelope.Error.Message, "a title is required") {
		t.Fatalf("validation detail lost: got=%q", envelope.Error.Message)
	}
}
