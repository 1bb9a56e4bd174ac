package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type statusRepository struct {
	db *sqlx.DB
}

func NewStatusRepository(db *sqlx.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) CountRows(ctx context.Context) (int, int, error) {
	var users, posts int

	err := r.db.GetContext(ctx, &users, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, 0, fmt.Errorf("ошибка при подсчёте пользователей: %w", err)
	}

	err = r.db.GetContext(ctx, &posts, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return users, posts, nil
}
