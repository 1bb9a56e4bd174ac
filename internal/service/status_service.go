package service

import (
	"context"

	"blogly/internal/repository"
)

type StatusReport struct {
	Users int `json:"users"`
	Posts int `json:"posts"`
}

type StatusService interface {
	GetStatus(ctx context.Context) (*StatusReport, error)
}

type statusService struct {
	statusRepo repository.StatusRepository
}

func NewStatusService(statusRepo repository.StatusRepository) StatusService {
	return &statusService{statusRepo: statusRepo}
}

func (t *statusService) GetStatus(ctx context.Context) (*StatusReport, error) {
	users, posts, err := t.statusRepo.CountRows(ctx)
	if err != nil {
		return nil, err
	}

	return &StatusReport{Users: users, Posts: posts}, nil
}
