package service

import (
	"context"
	"fmt"

	"blogly/internal/config"
	"blogly/internal/models"
	"blogly/internal/repository"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int) (*models.User, error)
	GetUserWithPosts(ctx context.Context, userID int) (*models.User, []models.Post, error)
	CreateUser(ctx context.Context, req repository.CreateUserRequest) (*UserResult, error)
	UpdateUser(ctx context.Context, req repository.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, userID int) error
}

type userService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		postRepo: postRepo,
		cfg:      cfg,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, userID int) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) GetUserWithPosts(ctx context.Context, userID int) (*models.User, []models.Post, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.postRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, posts, nil
}

func (s *userService) CreateUser(ctx context.Context, req repository.CreateUserRequest) (*UserResult, error) {
	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	// пустой image_url при создании сохраняется как NULL
	if req.ImageURL != "" {
		imageURL := req.ImageURL
		user.ImageURL = &imageURL
	}

	err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return &UserResult{
		User:  user,
		Flash: fmt.Sprintf("User %s %s added.", user.FirstName, user.LastName),
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, req repository.UpdateUserRequest) (*models.User, error) {
	// get user by id
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName

	// при обновлении image_url перезаписывается как прислали,
	// пустая строка остаётся пустой строкой, а не NULL
	imageURL := req.ImageURL
	user.ImageURL = &imageURL

	// update user
	err = s.userRepo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int) error {
	err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return err
	}

	return nil
}
