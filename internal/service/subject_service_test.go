package service

import (
	"context"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectService_SeedsDefaultsOnce(t *testing.T) {
	factory := newFakeFactory()
	cache := gocache.New(time.Minute, time.Minute)
	svc := NewSubjectService(factory, cache)

	subjects, err := svc.GetSubjects(context.Background())
	require.NoError(t, err)

	require.Len(t, subjects, 5)
	names := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		names = append(names, subject.Name)
	}
	assert.Equal(t, []string{"수학", "영어", "국어", "사회탐구", "과학탐구"}, names)
	assert.Len(t, factory.store.subjects, 5)

	// Second call must not seed again
	again, err := svc.GetSubjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, 5)
	assert.Len(t, factory.store.subjects, 5)
}

func TestSubjectService_ServesFromCache(t *testing.T) {
	factory := newFakeFactory()
	cache := gocache.New(time.Minute, time.Minute)
	svc := NewSubjectService(factory, cache)

	first, err := svc.GetSubjects(context.Background())
	require.NoError(t, err)

	// Mutate the store behind the cache; the cached listing must win.
	factory.store.subjects = nil

	second, err := svc.GetSubjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
