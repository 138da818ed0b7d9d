package handler

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/response"
	"philatelysamaaj/pkg/utils"
)

type ForumHandler struct {
	forumUseCase *usecase.ForumUseCase
}

func NewForumHandler(forumUseCase *usecase.ForumUseCase) *ForumHandler {
	return &ForumHandler{
		forumUseCase: forumUseCase,
	}
}

type contentRequest struct {
	Content string `json:"content" validate:"required"`
}

type voteRequest struct {
	Type string `json:"type" validate:"required,oneof=like dislike"`
}

// CreatePost takes a multipart form with optional content and media.
func (h *ForumHandler) CreatePost(c echo.Context) error {
	media, closeMedia, err := formMedia(c, "media")
	if err != nil {
		return response.Error(c, err)
	}
	defer closeMedia()

	post, err := h.forumUseCase.CreatePost(c.Request().Context(), middleware.UserID(c), c.FormValue("content"), media)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *ForumHandler) GetPost(c echo.Context) error {
	post, err := h.forumUseCase.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *ForumHandler) ListPosts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	posts, total, err := h.forumUseCase.ListPosts(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, pagination.Page, pagination.PageSize)
}

func (h *ForumHandler) EditPost(c echo.Context) error {
	var req contentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.forumUseCase.EditPost(c.Request().Context(), c.Param("id"), middleware.UserID(c), req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *ForumHandler) DeletePost(c echo.Context) error {
	if err := h.forumUseCase.DeletePost(c.Request().Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Post deleted successfully"})
}

func (h *ForumHandler) Reply(c echo.Context) error {
	var req contentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.forumUseCase.Reply(c.Request().Context(), c.Param("id"), middleware.UserID(c), req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *ForumHandler) Vote(c echo.Context) error {
	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.forumUseCase.Vote(c.Request().Context(), c.Param("id"), middleware.UserID(c), entity.VoteType(req.Type))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}
