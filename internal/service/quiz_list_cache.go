package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quizforge/internal/cache"
	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const publishedListTTL = 5 * time.Minute

// QuizListCache serves the published quiz list from Redis, falling
// back to the repository. Cache failures degrade to repository reads
// and never fail the request.
type QuizListCache interface {
	GetPublishedQuizzes(ctx context.Context) ([]*domain.Quiz, error)
	Invalidate(ctx context.Context) error
}

type quizListCache struct {
	quizRepo domain.QuizRepository
	cache    domain.Cache
	sfGroup  singleflight.Group
}

// NewQuizListCache creates a new QuizListCache.
func NewQuizListCache(quizRepo domain.QuizRepository, c domain.Cache) QuizListCache {
	return &quizListCache{quizRepo: quizRepo, cache: c}
}

// GetPublishedQuizzes returns the cached published list, rebuilding it
// on a miss. Concurrent rebuilds are collapsed via singleflight.
func (s *quizListCache) GetPublishedQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cache.PublishedQuizzesKey())
		if err == nil {
			var quizzes []*domain.Quiz
			if err := json.Unmarshal([]byte(cached), &quizzes); err == nil {
				return quizzes, nil
			}
			logger.Get().Warn("Discarding undecodable cached quiz list", zap.Error(err))
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Quiz list cache read failed, falling back to repository", zap.Error(err))
		}
	}

	result, err, _ := s.sfGroup.Do(cache.PublishedQuizzesKey(), func() (interface{}, error) {
		quizzes, err := s.quizRepo.GetPublishedQuizzes(ctx)
		if err != nil {
			return nil, err
		}
		s.fill(ctx, quizzes)
		return quizzes, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*domain.Quiz), nil
}

func (s *quizListCache) fill(ctx context.Context, quizzes []*domain.Quiz) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(quizzes)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.PublishedQuizzesKey(), string(payload), publishedListTTL); err != nil {
		logger.Get().Warn("Failed to fill quiz list cache", zap.Error(err))
	}
}

// Invalidate drops the cached list after a quiz is created or deleted.
func (s *quizListCache) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cache.PublishedQuizzesKey())
}
