package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
)

// PostService serves the community board.
type PostService struct {
	DB *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{DB: db}
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts() (*dtos.PostListResponse, error) {
	var posts []models.Post
	if err := s.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	out := make([]dtos.PostRead, 0, len(posts))
	for _, p := range posts {
		out = append(out, postRead(&p))
	}
	return &dtos.PostListResponse{Posts: out}, nil
}

// GetPost returns a single post by id.
func (s *PostService) GetPost(id string) (*dtos.PostRead, error) {
	var post models.Post
	if err := s.DB.First(&post, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("post %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	read := postRead(&post)
	return &read, nil
}

func postRead(p *models.Post) dtos.PostRead {
	return dtos.PostRead{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
