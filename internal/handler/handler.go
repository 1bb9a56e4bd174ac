package handlers

import (
	"github.com/go-playground/validator/v10"

	"blogly/internal/config"
	"blogly/internal/service"
)

type Handlers struct {
	UserService   service.UserService
	PostService   service.PostService
	StatusService service.StatusService
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService:   service.User,
		PostService:   service.Post,
		StatusService: service.Status,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
