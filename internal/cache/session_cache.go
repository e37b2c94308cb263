package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

// sessionTTL keeps a funnel session reloadable for a day without
// resubmitting the quiz
const sessionTTL = 24 * time.Hour

type SessionCache interface {
	Set(ctx context.Context, session *model.AssessmentSession) error
	Get(ctx context.Context, id string) (*model.AssessmentSession, error)
	IncrementViews(ctx context.Context, id string) (*model.AssessmentSession, error)
	Delete(ctx context.Context, id string) error
}

type sessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
	}
}

func (c *sessionCache) Set(ctx context.Context, session *model.AssessmentSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "session:"+session.ID, data, sessionTTL).Err()
}

func (c *sessionCache) Get(ctx context.Context, id string) (*model.AssessmentSession, error) {
	data, err := c.client.Get(ctx, "session:"+id).Result()
	if err != nil {
		return nil, err
	}
	var session model.AssessmentSession
	err = json.Unmarshal([]byte(data), &session)
	return &session, err
}

// IncrementViews bumps the results-page view counter and refreshes the
// TTL, returning the updated session
func (c *sessionCache) IncrementViews(ctx context.Context, id string) (*model.AssessmentSession, error) {
	session, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Views++
	if err := c.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (c *sessionCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "session:"+id).Err()
}
