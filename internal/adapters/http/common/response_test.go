package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

func TestFailFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "EmptyCart",
			err:        domainerrors.ErrEmptyCart,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"No items in order"}`,
		},
		{
			name:       "Validation",
			err:        domainerrors.ValidationError{Field: "mealType", Message: "Invalid meal type"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid meal type"}`,
		},
		{
			name:       "Unauthorized",
			err:        domainerrors.AuthorizationError{Message: "Unauthorized"},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:       "NotConfigured",
			err:        domainerrors.ErrNotConfigured,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Server configuration error"}`,
		},
		{
			name:       "Transport",
			err:        domainerrors.NewTransportError("telegram send", 502, nil),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to send message"}`,
		},
		{
			name:       "Unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FailFromError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
