package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"

	"github.com/kilhoshin/aissam/internal/dto"
	"github.com/kilhoshin/aissam/internal/pkg/logger"
	"github.com/kilhoshin/aissam/internal/repository/unitofwork"
	"github.com/kilhoshin/aissam/pkg/tutor"
)

const (
	analysisQuestionLimit = 10
	analysisCacheTTL      = time.Hour
)

// AnalysisConsumerService runs the background question-pattern analysis.
// Every answered question queues a job; the worker re-reads the student's
// recent questions, asks the model for study advice, and caches the result.
type AnalysisConsumerService struct {
	subscriber message.Subscriber
	topic      string
	uowFactory unitofwork.RepositoryFactory
	generator  *tutor.Generator
	redis      *redis.Client
	logger     logger.ILogger
}

func NewAnalysisConsumerService(
	subscriber message.Subscriber,
	topic string,
	uowFactory unitofwork.RepositoryFactory,
	generator *tutor.Generator,
	redisClient *redis.Client,
	logger logger.ILogger,
) *AnalysisConsumerService {
	return &AnalysisConsumerService{
		subscriber: subscriber,
		topic:      topic,
		uowFactory: uowFactory,
		generator:  generator,
		redis:      redisClient,
		logger:     logger,
	}
}

// Start subscribes to the analysis topic and processes jobs until ctx is
// cancelled.
func (s *AnalysisConsumerService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.handle(ctx, msg)
			// Jobs are advisory; a failed analysis is not retried, the next
			// question queues a fresh one.
			msg.Ack()
		}
	}()

	s.logger.Info("analysis_consumer", "subscribed to analysis topic", map[string]interface{}{"topic": s.topic})
	return nil
}

func (s *AnalysisConsumerService) handle(ctx context.Context, msg *message.Message) {
	var job dto.QuestionAskedMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		s.logger.Warn("analysis_consumer", "invalid analysis job payload", map[string]interface{}{"error": err.Error()})
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	questions, err := uow.MessageRepository().FindRecentQuestions(ctx, job.UserId, analysisQuestionLimit)
	if err != nil {
		s.logger.Error("analysis_consumer", "failed to load recent questions", map[string]interface{}{
			"user_id": job.UserId.String(),
			"error":   err.Error(),
		})
		return
	}

	analysis := s.generator.AnalyzePattern(ctx, questions)
	if analysis == "" {
		return
	}

	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, analysisKey(job.UserId), analysis, analysisCacheTTL).Err(); err != nil {
		s.logger.Warn("analysis_consumer", "failed to cache analysis", map[string]interface{}{
			"user_id": job.UserId.String(),
			"error":   err.Error(),
		})
	}
}
