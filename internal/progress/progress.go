// Package progress carries batch-scoring advancement events over Redis
// pub/sub. The batch process publishes; the API server subscribes and fans
// the events out to its websocket clients. Redis holds no state here, it is
// transport only.
package progress

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const EventTypeScoring = "progression_scoring"

type Event struct {
	Type       string `json:"type"`
	Scores     int    `json:"scores"`
	Echecs     int    `json:"echecs"`
	Total      int    `json:"total"`
	Horodatage string `json:"horodatage"`
}

// Publisher implements usecase.ProgressNotifier over a Redis channel. A nil
// or unreachable client downgrades publishing to a no-op; scoring never
// fails because the progress channel is down.
type Publisher struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

func NewPublisher(client *redis.Client, channel string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{client: client, channel: channel, logger: logger}
}

func (p *Publisher) BatchProgress(ctx context.Context, scored, failed, total int) {
	if p == nil || p.client == nil {
		return
	}

	evt := Event{
		Type:       EventTypeScoring,
		Scores:     scored,
		Echecs:     failed,
		Total:      total,
		Horodatage: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.logger.Warn("progress publish failed", zap.Error(err))
	}
}

// Broadcaster is the sink side of the bridge, satisfied by *ws.Hub.
type Broadcaster interface {
	Broadcast(message []byte)
}

// HubNotifier short-circuits the broker: events go straight to the local
// hub. Used when the batch runs inside the API process and Redis is absent.
type HubNotifier struct {
	hub Broadcaster
}

func NewHubNotifier(hub Broadcaster) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) BatchProgress(_ context.Context, scored, failed, total int) {
	if n == nil || n.hub == nil {
		return
	}
	evt := Event{
		Type:       EventTypeScoring,
		Scores:     scored,
		Echecs:     failed,
		Total:      total,
		Horodatage: time.Now().UTC().Format(time.RFC3339),
	}
	if payload, err := json.Marshal(evt); err == nil {
		n.hub.Broadcast(payload)
	}
}

// Subscriber forwards every payload on the Redis channel to the hub.
type Subscriber struct {
	client  *redis.Client
	channel string
	hub     Broadcaster
	logger  *zap.Logger
}

func NewSubscriber(client *redis.Client, channel string, hub Broadcaster, logger *zap.Logger) *Subscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Subscriber{client: client, channel: channel, hub: hub, logger: logger}
}

// Run blocks until the context is cancelled.
func (s *Subscriber) Run(ctx context.Context) error {
	if s.client == nil {
		<-ctx.Done()
		return ctx.Err()
	}

	sub := s.client.Subscribe(ctx, s.channel)
	defer func() { _ = sub.Close() }()

	ch := sub.Channel()
	s.logger.Info("progress subscriber started", zap.String("channel", s.channel))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			s.hub.Broadcast([]byte(msg.Payload))
		}
	}
}
