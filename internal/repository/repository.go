package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"blogly/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID int) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int) (*models.Post, error)
	GetByUserID(ctx context.Context, userID int) ([]models.Post, error)
	GetRecent(ctx context.Context, limit int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int) error
}

type StatusRepository interface {
	CountRows(ctx context.Context) (users int, posts int, err error)
}

type Repository struct {
	User   UserRepository
	Post   PostRepository
	Status StatusRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Post:   NewPostRepository(db),
		Status: NewStatusRepository(db),
	}
}
