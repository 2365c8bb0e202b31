package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilhoshin/aissam/internal/dto"
	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/pkg/tutor"
)

func seedQuestions(factory *fakeFactory, userId uuid.UUID, questions ...string) {
	sessionId := uuid.New()
	factory.store.sessions = append(factory.store.sessions, &entity.ChatSession{
		Id: sessionId, UserId: userId, Title: "세션",
	})
	for _, q := range questions {
		factory.store.messages = append(factory.store.messages, &entity.Message{
			Id: uuid.New(), SessionId: sessionId, Content: q, IsUser: true,
		})
	}
}

func publishJob(t *testing.T, pubSub *gochannel.GoChannel, topic string, userId uuid.UUID) {
	t.Helper()
	payload, err := json.Marshal(dto.QuestionAskedMessage{
		UserId:  userId,
		AskedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)))
}

func TestAnalysisConsumer_RunsAnalysis(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	seedQuestions(factory, userId, "미분이 뭐예요?", "적분은요?", "극한 개념 설명해주세요")

	provider := &scriptedProvider{results: []scriptedResult{{text: "미적분 보강 필요"}}}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	consumer := NewAnalysisConsumerService(
		pubSub, "QUESTION_ASKED", factory,
		tutor.NewGenerator(provider, time.Second), nil, nopLogger{},
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Start(ctx))

	publishJob(t, pubSub, "QUESTION_ASKED", userId)

	assert.Eventually(t, func() bool {
		provider.mu.Lock()
		defer provider.mu.Unlock()
		return provider.calls == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAnalysisConsumer_SkipsThinHistory(t *testing.T) {
	factory := newFakeFactory()
	userId := uuid.New()
	seedQuestions(factory, userId, "질문 하나뿐")

	provider := &scriptedProvider{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	consumer := NewAnalysisConsumerService(
		pubSub, "QUESTION_ASKED", factory,
		tutor.NewGenerator(provider, time.Second), nil, nopLogger{},
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Start(ctx))

	publishJob(t, pubSub, "QUESTION_ASKED", userId)

	// Give the worker time to receive the job; it must not call the model.
	time.Sleep(100 * time.Millisecond)
	provider.mu.Lock()
	defer provider.mu.Unlock()
	assert.Equal(t, 0, provider.calls)
}
