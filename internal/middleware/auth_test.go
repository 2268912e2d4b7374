package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviecatalog/internal/domain"
	"moviecatalog/internal/pkg/jwt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWT(t *testing.T, ttl time.Duration) *jwt.Service {
	t.Helper()
	svc, err := jwt.New(testSecret, ttl)
	require.NoError(t, err)
	return svc
}

func testUser(roles ...domain.RoleName) *domain.User {
	u := &domain.User{ID: 7, Username: "bob", Email: "bob@example.com"}
	for i, r := range roles {
		u.Roles = append(u.Roles, domain.Role{ID: int64(i + 1), Name: r})
	}
	return u
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := newJWT(t, time.Hour)
	token, err := jwtService.GenerateToken(testUser(domain.RoleUser))
	require.NoError(t, err)

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString("username"),
			"roles":    c.GetStringSlice("roles"),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob")
	assert.Contains(t, w.Body.String(), "USER")
}

func TestJWTAuth_NoToken(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(newJWT(t, time.Hour)))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing Authorization header")
}

func TestJWTAuth_WrongFormat(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(newJWT(t, time.Hour)))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dGVzdA==")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Authorization header format")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(newJWT(t, time.Hour)))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	issuer := newJWT(t, time.Millisecond)
	token, err := issuer.GenerateToken(testUser(domain.RoleUser))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	router := gin.New()
	router.Use(JWTAuth(newJWT(t, time.Hour)))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAnyRole_Allows(t *testing.T) {
	jwtService := newJWT(t, time.Hour)
	token, err := jwtService.GenerateToken(testUser(domain.RoleUser, domain.RoleAdmin))
	require.NoError(t, err)

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.POST("/movies", AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/movies", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRequireAnyRole_InsufficientRole(t *testing.T) {
	jwtService := newJWT(t, time.Hour)
	token, err := jwtService.GenerateToken(testUser(domain.RoleUser))
	require.NoError(t, err)

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.POST("/movies", AdminOnly(), func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/movies", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient permissions")
}

func TestRequireAnyRole_NoGate(t *testing.T) {
	// Role check without a preceding auth gate is a 401, not a 403.
	router := gin.New()
	router.GET("/movies", RequireAnyRole("USER", "ADMIN"), func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/movies", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
