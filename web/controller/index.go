// Package controller provides the HTTP request handlers of the multidiary
// blog: the home page with its login, registration and new-post forms, user
// profiles and post detail pages.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fabre752/multidiary/database"
	"github.com/fabre752/multidiary/logger"
	"github.com/fabre752/multidiary/web/entity"
	"github.com/fabre752/multidiary/web/middleware"
	"github.com/fabre752/multidiary/web/service"
	"github.com/fabre752/multidiary/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login form on the home page.
type LoginForm struct {
	Login    string `form:"login"`
	Password string `form:"password"`
}

// NewContentForm represents the new-post form on the home page.
type NewContentForm struct {
	Content string `form:"content"`
}

// RegisterForm represents the registration form on the home page.
type RegisterForm struct {
	NewLogin    string `form:"newlogin"`
	NewPassword string `form:"newpassword"`
}

// IndexController handles the home page, its three form submissions and
// logout.
type IndexController struct {
	userService service.UserService
	postService service.PostService
}

// NewIndexController creates an IndexController and registers its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.POST("/", a.index)
	g.GET("/index", a.index)
	g.POST("/index", a.index)

	g.GET("/logout_handle", a.logout)
}

// index serves the home page. A POST is dispatched by which form's payload
// is present, then redirected back to the listing so a refresh does not
// repeat the submission.
func (a *IndexController) index(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		a.dispatchForms(c)
		c.Redirect(http.StatusFound, "/index")
		return
	}

	posts, err := a.postService.GetAllPosts()
	if err != nil {
		logger.Warning("list posts err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	html(c, "main.html", "multidiary", gin.H{
		"posts": entity.NewPostViews(posts),
	})
}

// dispatchForms routes a home-page POST to login, new-post or registration,
// whichever form carries data.
func (a *IndexController) dispatchForms(c *gin.Context) {
	var loginForm LoginForm
	var contentForm NewContentForm
	var registerForm RegisterForm
	_ = c.ShouldBind(&loginForm)
	_ = c.ShouldBind(&contentForm)
	_ = c.ShouldBind(&registerForm)

	switch {
	case loginForm.Login != "":
		a.login(c, loginForm)
	case contentForm.Content != "":
		a.newPost(c, contentForm)
	case registerForm.NewLogin != "":
		a.register(c, registerForm)
	}
}

// login checks the submitted credentials and marks the session
// authenticated on success. A failed login is surfaced as a flash notice,
// the one locally recovered error of the home page.
func (a *IndexController) login(c *gin.Context, form LoginForm) {
	user, err := a.userService.CheckUser(form.Login, form.Password)
	if err != nil {
		switch {
		case database.IsNotFound(err):
			session.AddFlash(c, fmt.Sprintf("No user of login %s!", form.Login))
		case errors.Is(err, service.ErrWrongPassword):
			// never echo the stored password in this notice
			session.AddFlash(c, fmt.Sprintf("Incorrect password for user %s.", form.Login))
		default:
			logger.Warning("login err:", err)
			session.AddFlash(c, "Login failed.")
		}
		logger.Infof("failed login for %q from %s", form.Login, getRemoteIp(c))
		return
	}

	if err := session.SetLoginUser(c, user.Login); err != nil {
		logger.Warning("save login session err:", err)
		return
	}
	session.AddFlash(c, fmt.Sprintf("Logged in as %s", user.Login))
	logger.Infof("%s logged in from %s", user.Login, getRemoteIp(c))
}

func (a *IndexController) newPost(c *gin.Context, form NewContentForm) {
	_, err := a.postService.AddPost(form.Content, middleware.GetActor(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			session.AddFlash(c, "You must be logged in to post.")
		} else {
			logger.Warning("add post err:", err)
			session.AddFlash(c, "Adding post failed.")
		}
		return
	}
	session.AddFlash(c, "Post added!")
}

func (a *IndexController) register(c *gin.Context, form RegisterForm) {
	_, err := a.userService.Register(form.NewLogin, form.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			session.AddFlash(c, fmt.Sprintf("Login %s is already taken!", form.NewLogin))
		} else {
			logger.Warning("register err:", err)
			session.AddFlash(c, "Registration failed.")
		}
		return
	}
	session.AddFlash(c, "User added!")
}

// logout clears the authentication state. Logging out without a logged-in
// session is an error condition, not a no-op.
func (a *IndexController) logout(c *gin.Context) {
	if err := session.ClearLoginUser(c); err != nil {
		logger.Warning("logout err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	session.AddFlash(c, "Logged out")
	c.Redirect(http.StatusFound, "/index")
}
