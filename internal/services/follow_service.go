package services

import (
	"context"

	"miraBack/internal/models"
	"miraBack/internal/repositories"
)

type FollowService struct {
	FollowRepo *repositories.FollowRepository
}

func (s *FollowService) Follow(ctx context.Context, followerID, followedID int) error {
	if followerID == followedID {
		return models.ErrForbidden
	}
	return s.FollowRepo.Follow(ctx, followerID, followedID)
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID int) error {
	return s.FollowRepo.Unfollow(ctx, followerID, followedID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followedID int) (bool, error) {
	return s.FollowRepo.IsFollowing(ctx, followerID, followedID)
}

func (s *FollowService) GetFollowers(ctx context.Context, userID int) ([]models.User, error) {
	return s.FollowRepo.GetFollowers(ctx, userID)
}

func (s *FollowService) GetFollowing(ctx context.Context, userID int) ([]models.User, error) {
	return s.FollowRepo.GetFollowing(ctx, userID)
}

func (s *FollowService) GetCounts(ctx context.Context, userID int) (models.FollowCounts, error) {
	return s.FollowRepo.GetCounts(ctx, userID)
}
