package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	"nudge/internal/domain/service"
	mockSvc "nudge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(tokenSvc *mockSvc.MockTokenService)
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("token expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
					UserID:    userID,
					Roles:     []string{"coach", "superuser"},
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/rules", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			next := func(c echo.Context) error {
				called = true

				gotID, ok := deliverycontext.GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, gotID)
				assert.Equal(t, entity.Roles{entity.RoleCoach}, deliverycontext.GetRoles(c))

				return c.NoContent(http.StatusOK)
			}

			err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		held       entity.Roles
		wantStatus int
	}{
		{name: "holds a listed role", held: entity.Roles{entity.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "holds another role", held: entity.Roles{entity.RoleClient}, wantStatus: http.StatusForbidden},
		{name: "holds nothing", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/rules", nil), rec)
			deliverycontext.SetIdentity(c, uuid.New(), tt.held)

			mw := NewAuthMiddleware(nil).RequireRole(entity.RoleCoach, entity.RoleAdmin)
			err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
