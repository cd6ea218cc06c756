package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ramordeeple/patient-management/internal/analytics/ports"
	"github.com/ramordeeple/patient-management/internal/contracts/patientevents"
)

// RedisSink keeps one hash per patient plus a per-event-type counter.
type RedisSink struct {
	client *redis.Client
}

func NewRedisSink(client *redis.Client) *RedisSink {
	return &RedisSink{client: client}
}

func (s *RedisSink) RecordPatientEvent(ctx context.Context, event patientevents.Event) error {
	now := time.Now().UTC()
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, "analytics:patient:"+event.PatientID, map[string]any{
			"name":          event.Name,
			"email":         event.Email,
			"last_event":    event.EventType,
			"last_event_at": now.Unix(),
		})
		p.Incr(ctx, "analytics:events:"+event.EventType)
		return nil
	})
	return err
}

var _ ports.AnalyticsSink = (*RedisSink)(nil)
