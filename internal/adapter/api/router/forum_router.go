package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupForumRouter(v1 *echo.Group, m Middlewares) {
	forumHandler := handler.GetForumHandler()

	v1.GET("/posts", forumHandler.ListPosts)
	v1.GET("/posts/:id", forumHandler.GetPost)

	posts := v1.Group("/posts", m.Auth.Authenticate)
	posts.POST("", forumHandler.CreatePost)
	posts.PUT("/:id", forumHandler.EditPost)
	posts.DELETE("/:id", forumHandler.DeletePost)
	posts.POST("/:id/replies", forumHandler.Reply)
	posts.POST("/:id/votes", forumHandler.Vote)
}
