package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogly/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	ImageURL  string `json:"image_url"`
}

type UpdateUserRequest struct {
	UserID    int    `json:"user_id"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	ImageURL  string `json:"image_url"`
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.FirstName == "" || user.LastName == "" {
		return &ValidationError{Message: "имя и фамилия обязательны"}
	}

	query := `
		INSERT INTO users (first_name, last_name, image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query, user.FirstName, user.LastName, user.ImageURL).
		Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	var user models.User

	query := `SELECT id, first_name, last_name, image_url FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "пользователь", ID: userID}
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

// List возвращает всех пользователей по возрастанию ID (порядок вставки)
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, first_name, last_name, image_url FROM users ORDER BY id ASC`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка пользователей: %w", err)
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if user.FirstName == "" || user.LastName == "" {
		return &ValidationError{Message: "имя и фамилия обязательны"}
	}

	// image_url перезаписывается как есть, без нормализации пустой строки
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, image_url = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, user.FirstName, user.LastName, user.ImageURL, user.ID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении пользователя: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "пользователь", ID: user.ID}
	}

	return nil
}

// Delete удаляет пользователя и все его посты в одной транзакции
func (r *userRepository) Delete(ctx context.Context, userID int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM posts WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении постов пользователя: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пользователя: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "пользователь", ID: userID}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}
