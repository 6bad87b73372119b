package controller

import (
	"net/http"

	"github.com/fabre752/multidiary/logger"
	"github.com/fabre752/multidiary/web/entity"
	"github.com/fabre752/multidiary/web/service"

	"github.com/gin-gonic/gin"
)

// UserController renders user profile pages.
type UserController struct {
	userService    service.UserService
	roleService    service.RoleService
	postService    service.PostService
	commentService service.CommentService
}

// NewUserController creates a UserController and registers its routes.
func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.GET("/user/:login", a.profile)
}

// profile renders a user's role, posts and comments. Each comment carries
// its parent post's content for display. Lookup failures, including a role
// reference that does not resolve, surface as server errors.
func (a *UserController) profile(c *gin.Context) {
	login := c.Param("login")

	user, err := a.userService.GetUserByLogin(login)
	if err != nil {
		logger.Warning("profile user lookup err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	role, err := a.roleService.GetRole(user.RoleId)
	if err != nil {
		logger.Warning("profile role lookup err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	posts, err := a.postService.GetPostsByAuthor(user.Id)
	if err != nil {
		logger.Warning("profile posts lookup err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	comments, err := a.commentService.GetCommentsByAuthor(user.Id)
	if err != nil {
		logger.Warning("profile comments lookup err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	commentViews := make([]entity.CommentView, 0, len(comments))
	for _, comment := range comments {
		parent, err := a.postService.GetPost(comment.PostId)
		if err != nil {
			logger.Warning("profile parent post lookup err:", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		commentViews = append(commentViews, entity.CommentView{
			Comment:       comment,
			ParentContent: parent.Content,
		})
	}

	html(c, "user.html", user.Login, gin.H{
		"profile":  user,
		"status":   role.Name,
		"posts":    posts,
		"comments": commentViews,
	})
}
