package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workfair-app/workfair-backend/internal/services"
)

type PostHandler struct {
	PostService *services.PostService
}

func NewPostHandler(s *services.PostService) *PostHandler {
	return &PostHandler{PostService: s}
}

// ListPosts is GET /api/posts.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.PostService.ListPosts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost is GET /api/posts/:post_id.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.PostService.GetPost(c.Param("post_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
