package service

import (
	"context"
	"fmt"

	"blogly/internal/config"
	"blogly/internal/models"
	"blogly/internal/repository"
)

type PostService interface {
	ListRecentPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID int) (*models.Post, error)
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*PostResult, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*PostResult, error)
	DeletePost(ctx context.Context, postID int) (*PostResult, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (p *postService) ListRecentPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.GetRecent(ctx, p.cfg.RecentPosts)
}

func (p *postService) GetPost(ctx context.Context, postID int) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*PostResult, error) {
	// пост создаётся только у существующего пользователя
	_, err := p.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &repository.ValidationError{
				Message: fmt.Sprintf("пользователь с ID %d не существует", req.UserID),
			}
		}
		return nil, err
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return &PostResult{
		Post:   post,
		UserID: post.UserID,
		Flash:  fmt.Sprintf("Post '%s' added.", post.Title),
	}, nil
}

func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*PostResult, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return &PostResult{
		Post:   post,
		UserID: post.UserID,
		Flash:  fmt.Sprintf("Post '%s' edited.", post.Title),
	}, nil
}

func (p *postService) DeletePost(ctx context.Context, postID int) (*PostResult, error) {
	// сначала читаем пост, чтобы вернуть автора для редиректа
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &PostResult{
		Post:   post,
		UserID: post.UserID,
		Flash:  fmt.Sprintf("Post '%s' deleted.", post.Title),
	}, nil
}
