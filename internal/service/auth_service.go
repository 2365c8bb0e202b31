package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kilhoshin/aissam/internal/dto"
	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/pkg/auth"
	"github.com/kilhoshin/aissam/internal/pkg/logger"
	"github.com/kilhoshin/aissam/internal/repository/specification"
	"github.com/kilhoshin/aissam/internal/repository/unitofwork"
	"github.com/kilhoshin/aissam/pkg/events"
	pktNats "github.com/kilhoshin/aissam/pkg/nats"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	tokenIssuer    *auth.TokenIssuer
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokenIssuer *auth.TokenIssuer, eventPublisher *pktNats.Publisher, logger logger.ILogger) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		tokenIssuer:    tokenIssuer,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// 2. Hash password
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Grade:        entity.UserGrade(req.Grade),
		CreatedAt:    time.Now(),
	}

	// 3. Save inside a transaction so the duplicate check and insert see the
	// same snapshot
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		Id:    user.Id,
		Email: user.Email,
		Name:  user.Name,
		Grade: string(user.Grade),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(user.Id)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.NewEvent("USER_LOGIN", map[string]interface{}{
			"user_id": user.Id,
			"time":    time.Now().Format(time.RFC822),
		})
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("auth_service", "failed to publish USER_LOGIN event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
