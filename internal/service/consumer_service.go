// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"geocache-bot/internal/dto"
	"geocache-bot/internal/pkg/logger"
	"geocache-bot/pkg/geo"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the internal position topic and feeds the pings into
// the state machine, off the webhook request path.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	gameService IGameService
	log         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	gameService IGameService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		gameService: gameService,
		log:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	ping, err := decodePositionPing(msg.Payload)
	if err != nil {
		cs.log.Error("consumer", "malformed position ping", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	position := geo.Point{Latitude: ping.Latitude, Longitude: ping.Longitude}
	editedAt := time.Unix(ping.EditedAt, 0)

	if err := cs.gameService.HandleLocationUpdate(ctx, ping.PlayerID, position, ping.IsLive, editedAt); err != nil {
		cs.log.Error("consumer", "position update failed", map[string]interface{}{
			"player_id": ping.PlayerID, "error": err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}

// decodePositionPing wraps unmarshal failures in ErrMalformedEvent so the
// processing loop can tell poison messages from retriable handler errors.
func decodePositionPing(payload []byte) (dto.PositionPing, error) {
	var ping dto.PositionPing
	if err := json.Unmarshal(payload, &ping); err != nil {
		return dto.PositionPing{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return ping, nil
}
