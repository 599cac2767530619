package service

import (
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

type Services struct {
	Query *QueryService
	Auth  *AuthService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	queryService := NewQueryService(repos, s.Logger)
	authService := NewAuthService(s.Config.Auth, queryService)

	return &Services{
		Query: queryService,
		Auth:  authService,
	}, nil
}
