// Package events publishes athlete lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Athlete lifecycle event types
const (
	AthleteCreated = "athlete.created"
	AthleteUpdated = "athlete.updated"
	AthleteDeleted = "athlete.deleted"
)

// Event is a domain event about a single athlete
type Event struct {
	ID         uuid.UUID
	Type       string
	AthleteID  uuid.UUID
	OccurredAt time.Time
	Payload    any
}

// NewAthleteEvent builds an event with a fresh id.
func NewAthleteEvent(eventType string, athleteID uuid.UUID, occurredAt time.Time, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		AthleteID:  athleteID,
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}

// Publisher delivers events after the change they describe is committed
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type envelope struct {
	EventID   string          `json:"eventId"`
	EventType string          `json:"eventType"`
	AthleteID string          `json:"athleteId"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

func encode(event Event) ([]byte, error) {
	env := envelope{
		EventID:   event.ID.String(),
		EventType: event.Type,
		AthleteID: event.AthleteID.String(),
		Timestamp: event.OccurredAt.UTC(),
	}
	if event.Payload != nil {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		env.Payload = payload
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
