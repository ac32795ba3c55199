package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"miraBack/internal/models"
	"miraBack/internal/repositories"
	"miraBack/utils"
)

type PostService struct {
	PostRepo *repositories.PostRepository
	Storage  *utils.Storage
}

func (s *PostService) CreatePost(ctx context.Context, post models.Post, image []byte, imageName string) (models.Post, error) {
	if strings.TrimSpace(post.Contenu) == "" && len(image) == 0 {
		return models.Post{}, models.ErrNoRecord
	}

	if len(image) > 0 {
		filename := fmt.Sprintf("post_%s%s", uuid.New().String(), filepath.Ext(imageName))
		url, err := s.Storage.UploadFile(image, filename, "posts")
		if err != nil {
			return models.Post{}, err
		}
		post.ImagePath = &url
	}

	return s.PostRepo.CreatePost(ctx, post)
}

func (s *PostService) GetFeed(ctx context.Context, userID, page, pageSize int) ([]models.Post, error) {
	return s.PostRepo.GetFeed(ctx, userID, page, pageSize)
}

func (s *PostService) GetPostsByUser(ctx context.Context, userID int) ([]models.Post, error) {
	return s.PostRepo.GetPostsByUser(ctx, userID)
}

func (s *PostService) DeletePost(ctx context.Context, postID, callerID int) error {
	post, err := s.PostRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return models.ErrForbidden
	}
	return s.PostRepo.DeletePost(ctx, postID)
}
