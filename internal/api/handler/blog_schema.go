package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth request / response types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse exposes only the public user fields; the password hash never
// crosses the transport boundary.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type registerResponse struct {
	User userResponse `json:"user"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// --- Blog request / response types ---

type createBlogRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	// Image is optional; the client may embed a data URI or a plain URL.
	Image string `json:"image"`
}

// updateBlogRequest is a partial patch: only the fields present in the JSON
// body are applied, so every field is a pointer.
type updateBlogRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// service changes.

type blogResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	AuthorID    string    `json:"author_id"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type blogEnvelope struct {
	Blog blogResponse `json:"blog"`
}

type createBlogResponse struct {
	Message string       `json:"message"`
	Blog    blogResponse `json:"blog"`
}

type listBlogsResponse struct {
	Message string         `json:"message"`
	Blogs   []blogResponse `json:"blogs"`
}

type deletedBlogSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type deleteBlogResponse struct {
	Message     string             `json:"message"`
	DeletedBlog deletedBlogSummary `json:"deleted_blog"`
}
