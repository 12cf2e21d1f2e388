package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/ports"
)

// BlogHandler handles HTTP requests for the post lifecycle. All routes sit
// behind the Auth middleware; ownership checks live in the service.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// Create handles POST /blog.
//
// @Summary      Create a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlogRequest  true  "Post contents"
// @Success      201   {object}  createBlogResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /blog [post]
func (h *BlogHandler) Create(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog, err := h.service.Create(c.Request().Context(), toCreateInput(req), caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createBlogResponse{
		Message: "blog created",
		Blog:    toBlogResponse(blog),
	})
}

// List handles GET /blog — every post, newest first.
//
// @Summary      List all blog posts
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBlogsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /blog [get]
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBlogsResponse{
		Message: "blogs fetched",
		Blogs:   toBlogResponses(blogs),
	})
}

// Get handles GET /blog/:id.
//
// @Summary      Get a blog post by id
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  blogEnvelope
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /blog/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	blog, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blogEnvelope{Blog: toBlogResponse(blog)})
}

// Update handles PUT and PATCH /blog/:id. Only the fields present in the
// body are applied.
//
// @Summary      Update a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Blog id"
// @Param        body  body      updateBlogRequest  true  "Fields to change"
// @Success      200   {object}  blogEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /blog/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	blog, err := h.service.Update(c.Request().Context(), c.Param("id"), toPatch(req), caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blogEnvelope{Blog: toBlogResponse(blog)})
}

// Delete handles DELETE /blog/:id — a hard delete with a confirmation
// payload carrying the removed post's id and title.
//
// @Summary      Delete a blog post
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  deleteBlogResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /blog/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteBlogResponse{
		Message: "blog deleted",
		DeletedBlog: deletedBlogSummary{
			ID:    deleted.ID,
			Title: deleted.Title,
		},
	})
}

// AdminDashboard handles GET /admin — the admin view over every post.
//
// @Summary      Admin dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBlogsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin [get]
func (h *BlogHandler) AdminDashboard(c echo.Context) error {
	blogs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBlogsResponse{
		Message: "admin dashboard",
		Blogs:   toBlogResponses(blogs),
	})
}

// UserDashboard handles GET /user — the caller's own posts.
//
// @Summary      User dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listBlogsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /user [get]
func (h *BlogHandler) UserDashboard(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	blogs, err := h.service.ListByAuthor(c.Request().Context(), caller.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBlogsResponse{
		Message: "user dashboard",
		Blogs:   toBlogResponses(blogs),
	})
}
