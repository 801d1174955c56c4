package service

import (
	"context"
	"encoding/json"

	"plant-hub-be/internal/dto"
	"plant-hub-be/internal/pkg/logger"
	"plant-hub-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IActivityConsumerService drains the activity topic and writes every
// event to the structured log, giving the plant feed a durable trail.
type IActivityConsumerService interface {
	Consume(ctx context.Context) error
}

type activityConsumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewActivityConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) IActivityConsumerService {
	return &activityConsumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (cs *activityConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *activityConsumerService) processMessage(msg *message.Message) {
	var payload dto.ActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("activity", "failed to unmarshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("activity", payload.Type, payload.Data)
	msg.Ack()
}

// publishActivity emits an activity event without ever failing the
// request; the feed is auxiliary.
func publishActivity(ctx context.Context, pub IPublisherService, log logger.ILogger, evt events.BaseEvent) {
	if pub == nil {
		return
	}
	payload, err := json.Marshal(dto.ActivityMessage{
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
	if err == nil {
		err = pub.Publish(ctx, payload)
	}
	if err != nil && log != nil {
		log.Warn("activity", "failed to publish activity event", map[string]interface{}{
			"type":  evt.Type,
			"error": err.Error(),
		})
	}
}
