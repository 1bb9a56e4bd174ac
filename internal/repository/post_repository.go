package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"blogly/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	UserID  int    `json:"user_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdatePostRequest struct {
	PostID  int    `json:"post_id"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.Title == "" || post.Content == "" {
		return &ValidationError{Message: "заголовок и текст поста обязательны"}
	}

	query := `
		INSERT INTO posts (title, content, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query, post.Title, post.Content, post.UserID).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return &ValidationError{
				Message: fmt.Sprintf("пользователь с ID %d не существует", post.UserID),
			}
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int) (*models.Post, error) {
	query := `SELECT id, title, content, created_at, user_id FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "пост", ID: postID}
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByUserID(ctx context.Context, userID int) ([]models.Post, error) {
	query := `
		SELECT id, title, content, created_at, user_id FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

// GetRecent возвращает последние посты по убыванию created_at
func (r *PostRepositoryImpl) GetRecent(ctx context.Context, limit int) ([]models.Post, error) {
	query := `
		SELECT id, title, content, created_at, user_id FROM posts
		ORDER BY created_at DESC
		LIMIT $1
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении последних постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	if post.Title == "" || post.Content == "" {
		return &ValidationError{Message: "заголовок и текст поста обязательны"}
	}

	// user_id и created_at после создания не меняются
	query := `
		UPDATE posts
		SET title = $1, content = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, post.Title, post.Content, post.ID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "пост", ID: post.ID}
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "пост", ID: postID}
	}

	return nil
}
