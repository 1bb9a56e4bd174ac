package service

import (
	"blogly/internal/config"
	"blogly/internal/models"
	"blogly/internal/repository"
)

// UserResult - результат операции над пользователем с flash-сообщением для отображения
type UserResult struct {
	User  *models.User
	Flash string
}

// PostResult - результат операции над постом; UserID нужен для редиректа на страницу автора
type PostResult struct {
	Post   *models.Post
	UserID int
	Flash  string
}

type Service struct {
	User   UserService
	Post   PostService
	Status StatusService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		User:   NewUserService(rep.User, rep.Post, cfg),
		Post:   NewPostService(rep.Post, rep.User, cfg),
		Status: NewStatusService(rep.Status),
	}
}
