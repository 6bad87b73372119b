package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("multidiary", store))

	r.GET("/login", func(c *gin.Context) {
		if err := SetLoginUser(c, c.Query("login")); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetLoginUser(c))
	})
	r.GET("/logout", func(c *gin.Context) {
		if err := ClearLoginUser(c); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	r.GET("/flash", func(c *gin.Context) {
		_ = AddFlash(c, c.Query("msg"))
		c.Status(http.StatusOK)
	})
	r.GET("/notices", func(c *gin.Context) {
		c.String(http.StatusOK, strings.Join(Flashes(c), "|"))
	})
	return r
}

// do performs a request, carrying over cookies from the previous response.
func do(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRoundTrip(t *testing.T) {
	r := testRouter()

	w := do(r, "/login?login=alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.NotEmpty(t, cookies)

	w = do(r, "/whoami", cookies)
	assert.Equal(t, "alice", w.Body.String())
}

func TestAnonymousHasNoLogin(t *testing.T) {
	r := testRouter()

	w := do(r, "/whoami", nil)
	assert.Equal(t, "", w.Body.String())
}

func TestLogoutClearsSession(t *testing.T) {
	r := testRouter()

	w := do(r, "/login?login=bob", nil)
	cookies := w.Result().Cookies()

	w = do(r, "/logout", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies = w.Result().Cookies()

	// identity resolution now yields the anonymous placeholder
	w = do(r, "/whoami", cookies)
	assert.Equal(t, "", w.Body.String())
}

func TestLogoutWithoutSessionIsAnError(t *testing.T) {
	r := testRouter()

	w := do(r, "/logout", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFlashesAreSingleUse(t *testing.T) {
	r := testRouter()

	w := do(r, "/flash?msg=Post+added!", nil)
	cookies := w.Result().Cookies()

	w = do(r, "/notices", cookies)
	assert.Equal(t, "Post added!", w.Body.String())
	cookies = w.Result().Cookies()

	// drained on first render
	w = do(r, "/notices", cookies)
	assert.Equal(t, "", w.Body.String())
}
