package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "taskapi/internal/delivery/context"
	"taskapi/internal/domain/entity"
	domainerrors "taskapi/internal/domain/errors"
	"taskapi/internal/domain/service"
	mockSvc "taskapi/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	t.Parallel()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("signed.token.value").Return(&service.Claims{
		Role: entity.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "alice@example.com",
		},
	}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c := newAuthTestContext(t, "Bearer signed.token.value")

	var seenEmail string
	next := func(c echo.Context) error {
		seenEmail = deliverycontext.GetUserEmail(c)
		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, "alice@example.com", seenEmail)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c := newAuthTestContext(t, "")

	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_Authenticate_ExpiredToken(t *testing.T) {
	t.Parallel()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("stale.token.value").Return(nil, domainerrors.ErrTokenExpired.WrapMessage("token validation failed"))

	m := NewAuthMiddleware(tokenSvc)
	c := newAuthTestContext(t, "Bearer stale.token.value")

	nextCalled := false
	err := m.Authenticate(func(echo.Context) error {
		nextCalled = true
		return nil
	})(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_EmptySubject(t *testing.T) {
	t.Parallel()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("anonymous.token").Return(&service.Claims{Role: entity.RoleUser}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c := newAuthTestContext(t, "Bearer anonymous.token")

	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
