//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("test-secret", time.Hour)
	expiredSvc := jwt.NewService("test-secret", -time.Minute)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	router := gin.New()
	router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})

	userID := uuid.New()
	valid, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	expired, err := expiredSvc.GenerateToken(userID)
	require.NoError(t, err)
	foreign, err := jwt.NewService("other-secret", time.Hour).GenerateToken(userID)
	require.NoError(t, err)
	anonymous, err := svc.GenerateToken(uuid.Nil)
	require.NoError(t, err)

	t.Run("valid token exposes the user id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, valid)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
	})

	tests := []struct {
		name    string
		token   string
		wantMsg string
	}{
		{name: "missing token", token: "", wantMsg: "Access token required"},
		{name: "expired token", token: expired, wantMsg: "Invalid or expired token"},
		{name: "token signed with another key", token: foreign, wantMsg: "Invalid or expired token"},
		{name: "token without user id", token: anonymous, wantMsg: "Invalid or expired token"},
		{name: "garbage token", token: "not.a.jwt", wantMsg: "Invalid or expired token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tt.token)
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, tt.wantMsg)
		})
	}
}
