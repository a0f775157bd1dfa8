package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/workout-api/go/internal/events"
)

func TestSetupPublisherWithoutNatsURL(t *testing.T) {
	publisher, err := setupPublisher(context.Background(), defaultConfig())
	require.NoError(t, err)
	assert.IsType(t, events.NopPublisher{}, publisher)
}

func TestSetupPublisherReturnsConnectError(t *testing.T) {
	cfg := defaultConfig()
	cfg.Events.NatsURL = "nats://127.0.0.1:1"

	publisher, err := setupPublisher(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, publisher)
	assert.Contains(t, err.Error(), "create JetStream publisher")
}
