package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fabre752/multidiary/logger"
	"github.com/fabre752/multidiary/web/entity"
	"github.com/fabre752/multidiary/web/middleware"
	"github.com/fabre752/multidiary/web/service"
	"github.com/fabre752/multidiary/web/session"

	"github.com/gin-gonic/gin"
)

// PostController renders post detail pages and accepts new comments.
type PostController struct {
	postService    service.PostService
	commentService service.CommentService
}

// NewPostController creates a PostController and registers its routes.
func NewPostController(g *gin.RouterGroup) *PostController {
	a := &PostController{}
	a.initRouter(g)
	return a
}

func (a *PostController) initRouter(g *gin.RouterGroup) {
	g.GET("/post/:idPost", a.detail)
	g.POST("/post/:idPost", a.detail)
}

// detail renders a post with its comments and comment form. A POST appends
// a comment authored by the current actor and redirects back to the same
// page so the list reflects the addition and a refresh does not resubmit.
func (a *PostController) detail(c *gin.Context) {
	idPost, err := strconv.Atoi(c.Param("idPost"))
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	post, err := a.postService.GetPost(idPost)
	if err != nil {
		logger.Warning("post lookup err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if c.Request.Method == http.MethodPost {
		var form NewContentForm
		_ = c.ShouldBind(&form)

		_, err := a.commentService.AddComment(post.Id, form.Content, middleware.GetActor(c))
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				session.AddFlash(c, "You must be logged in to comment.")
			} else {
				logger.Warning("add comment err:", err)
				session.AddFlash(c, "Adding comment failed.")
			}
		} else {
			session.AddFlash(c, "Comment added!")
		}
		c.Redirect(http.StatusFound, c.Request.URL.Path)
		return
	}

	comments, err := a.commentService.GetCommentsByPost(post.Id)
	if err != nil {
		logger.Warning("post comments lookup err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	title := entity.PostTitle(post.Content)
	html(c, "post.html", title, gin.H{
		"post":     post,
		"comments": comments,
	})
}
