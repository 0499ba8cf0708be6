package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"foodlink/internal/domain/service"
	mockSvc "foodlink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	t.Parallel()

	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	t.Parallel()

	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	t.Parallel()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("token is malformed")).Once()

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Bearer bad-token")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RejectsRefreshToken(t *testing.T) {
	t.Parallel()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{
		OrganizationID: uuid.New(),
		Roles:          []string{"organization"},
		Type:           "refresh",
	}, nil).Once()

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Bearer refresh-token")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Refresh tokens")
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	t.Parallel()

	orgID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{
		OrganizationID: orgID,
		Roles:          []string{"organization"},
		Type:           "access",
	}, nil).Once()

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Bearer good-token")

	var seenID uuid.UUID
	handler := func(c echo.Context) error {
		id, ok := GetOrganizationID(c)
		require.True(t, ok)
		seenID = id

		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(handler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, orgID, seenID)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	t.Parallel()

	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	t.Run("role present", func(t *testing.T) {
		t.Parallel()

		c, rec := newAuthTestContext(t, "")
		c.Set(ContextKeyRoles, []string{"organization", "admin"})

		err := m.RequireRole("admin")(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		t.Parallel()

		c, rec := newAuthTestContext(t, "")
		c.Set(ContextKeyRoles, []string{"organization"})

		err := m.RequireRole("admin")(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated request", func(t *testing.T) {
		t.Parallel()

		c, rec := newAuthTestContext(t, "")

		err := m.RequireRole("admin")(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetOrganizationID_Unauthenticated(t *testing.T) {
	t.Parallel()

	c, _ := newAuthTestContext(t, "")

	_, ok := GetOrganizationID(c)
	assert.False(t, ok)
}
