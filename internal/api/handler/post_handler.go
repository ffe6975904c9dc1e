package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/microposts/posts-api/internal/core/domain"
	"github.com/microposts/posts-api/internal/core/ports"
)

// PostHandler handles the authenticated post endpoints. Every method reads
// its subject from the Principal resolved by the auth middleware, never from
// the request body.
type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type createPostRequest struct {
	Text string `json:"text" validate:"required"`
}

type createPostResponse struct {
	PostID string `json:"post_id"`
}

type deletePostRequest struct {
	PostID string `json:"post_id" validate:"required"`
}

type deletePostResponse struct {
	Success bool `json:"success"`
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content (body capped at 1 MiB)"
// @Success      201   {object}  createPostResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      413   {object}  errorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		// MaxBytesReader trips during bind for chunked oversized bodies.
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.ErrPayloadTooLarge
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.postService.Create(c.Request().Context(), principal.Subject, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createPostResponse{PostID: id})
}

// List handles GET /api/posts, served through the per-subject cache.
//
// @Summary      List the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.PostItem
// @Failure      401  {object}  errorResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	items, err := h.postService.List(c.Request().Context(), principal.Subject)
	if err != nil {
		return err
	}
	if items == nil {
		items = []ports.PostItem{}
	}

	return c.JSON(http.StatusOK, items)
}

// Delete handles DELETE /api/posts.
//
// @Summary      Delete one of the caller's posts
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deletePostRequest  true  "Post to delete"
// @Success      200   {object}  deletePostResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/posts [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req deletePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.postService.Delete(c.Request().Context(), principal.Subject, req.PostID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deletePostResponse{Success: true})
}
