// Package middleware contains gin middleware for the multidiary blog.
package middleware

import (
	"net/http"

	"github.com/fabre752/multidiary/database/model"
	"github.com/fabre752/multidiary/logger"
	"github.com/fabre752/multidiary/web/service"
	"github.com/fabre752/multidiary/web/session"

	"github.com/gin-gonic/gin"
)

const actorKey = "ACTOR"

// ActorResolver resolves the current actor before each request. A session
// login name is looked up in the database; an absent session yields an
// anonymous placeholder user with no persisted identity. A session naming a
// user that no longer exists is a server error.
func ActorResolver() gin.HandlerFunc {
	userService := service.UserService{}

	return func(c *gin.Context) {
		login := session.GetLoginUser(c)
		if login == "" {
			c.Set(actorKey, &model.User{})
			c.Next()
			return
		}

		user, err := userService.GetUserByLogin(login)
		if err != nil {
			logger.Warning("resolve session user err:", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Set(actorKey, user)
		c.Next()
	}
}

// GetActor returns the actor resolved for this request. Never nil once
// ActorResolver has run; check IsAuthenticated before treating it as a
// persisted identity.
func GetActor(c *gin.Context) *model.User {
	if obj, ok := c.Get(actorKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return &model.User{}
}
