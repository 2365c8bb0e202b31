package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kilhoshin/aissam/internal/dto"
	"github.com/kilhoshin/aissam/internal/pkg/logger"
	"github.com/kilhoshin/aissam/internal/repository/specification"
	"github.com/kilhoshin/aissam/internal/repository/unitofwork"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	// GetAnalysis returns the latest cached question-pattern analysis for the
	// user, or an empty analysis when none has been produced yet.
	GetAnalysis(ctx context.Context, userId uuid.UUID) (*dto.AnalysisResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	redis      *redis.Client
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, redisClient *redis.Client, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		redis:      redisClient,
		logger:     log,
	}
}

func analysisKey(userId uuid.UUID) string {
	return fmt.Sprintf("analysis:%s", userId)
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &dto.UserResponse{
		Id:    user.Id,
		Email: user.Email,
		Name:  user.Name,
		Grade: string(user.Grade),
	}, nil
}

func (s *userService) GetAnalysis(ctx context.Context, userId uuid.UUID) (*dto.AnalysisResponse, error) {
	response := &dto.AnalysisResponse{UserId: userId}

	if s.redis == nil {
		return response, nil
	}

	// The cache is the only source for the analysis, so a broken Redis is
	// indistinguishable from a miss. Never fail the request over it.
	analysis, err := s.redis.Get(ctx, analysisKey(userId)).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("UserService", "Failed to read analysis cache", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
		return response, nil
	}
	response.Analysis = analysis
	return response, nil
}
