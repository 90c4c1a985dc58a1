package services

import (
	"context"

	"restaurant-backend/models"
	"restaurant-backend/repositories"
)

type UserService struct {
	userRepo *repositories.UserRepository
}

func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetOrCreate looks the user up by the channel-supplied id and registers them
// on first contact.
func (s *UserService) GetOrCreate(ctx context.Context, req models.StartUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err == nil {
		return user, nil
	}
	if err != models.ErrNotFound {
		return nil, err
	}

	user = &models.User{
		ID:    req.UserID,
		Name:  req.Name,
		Phone: req.Phone,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, id)
}
