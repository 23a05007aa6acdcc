package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

const (
	planKeyPrefix       = "planning:plan:"
	completionKeyPrefix = "planning:completions:"

	// Plans are rebuilt at least once per horizon window; completions only
	// matter while the events they belong to can still produce reminders.
	planTTL       = 21 * 24 * time.Hour
	completionTTL = 35 * 24 * time.Hour
)

type completionRecord struct {
	EntityID    string    `json:"entity_id"`
	EventID     string    `json:"event_id"`
	CompletedAt time.Time `json:"completed_at"`
}

type planRepository struct {
	client *redis.Client
}

func NewPlanRepository(client *redis.Client) domain.PlanRepository {
	return &planRepository{
		client: client,
	}
}

func (r *planRepository) SavePlan(ctx context.Context, plan *domain.NotificationPlan) error {
	if plan == nil || plan.AppletID == "" {
		return ErrInvalidPlanData
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return ErrInvalidPlanData
	}

	key := planKeyPrefix + plan.AppletID
	return r.client.Set(ctx, key, data, planTTL).Err()
}

func (r *planRepository) GetPlan(ctx context.Context, appletID string) (*domain.NotificationPlan, error) {
	key := planKeyPrefix + appletID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}

	var plan domain.NotificationPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, ErrInvalidPlanData
	}

	return &plan, nil
}

func (r *planRepository) DeletePlan(ctx context.Context, appletID string) error {
	key := planKeyPrefix + appletID
	return r.client.Del(ctx, key).Err()
}

type completionRepository struct {
	client *redis.Client
}

func NewCompletionRepository(client *redis.Client) domain.CompletionRepository {
	return &completionRepository{
		client: client,
	}
}

func (r *completionRepository) SaveCompletion(ctx context.Context, appletID, entityID, eventID string, at time.Time) error {
	if appletID == "" || entityID == "" || eventID == "" {
		return ErrInvalidCompletionData
	}

	record := completionRecord{
		EntityID:    entityID,
		EventID:     eventID,
		CompletedAt: at,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidCompletionData
	}

	key := completionKeyPrefix + appletID

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, completionTTL)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *completionRepository) GetCompletions(ctx context.Context, appletID string) (domain.CompletionRecords, error) {
	key := completionKeyPrefix + appletID

	entries, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCompletionsNotFound
		}
		return nil, err
	}

	records := make(domain.CompletionRecords)
	for _, entry := range entries {
		var record completionRecord
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, ErrInvalidCompletionData
		}
		records.Add(record.EntityID, record.EventID, record.CompletedAt)
	}

	return records, nil
}
