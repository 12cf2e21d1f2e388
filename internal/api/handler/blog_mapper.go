package handler

import (
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createBlogRequest) ports.CreateBlogInput {
	return ports.CreateBlogInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
}

func toPatch(req updateBlogRequest) ports.BlogPatch {
	return ports.BlogPatch{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
}

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toBlogResponse(b *domain.Blog) blogResponse {
	return blogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Image:       b.Image,
		AuthorID:    b.AuthorID,
		AuthorEmail: b.AuthorEmail,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBlogResponses(blogs []*domain.Blog) []blogResponse {
	out := make([]blogResponse, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, toBlogResponse(b))
	}
	return out
}
