package controller

import (
	"encoding/json"
	"strings"

	"geocache-bot/internal/dto"
	"geocache-bot/internal/pkg/logger"
	"geocache-bot/internal/pkg/serverutils"
	"geocache-bot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	HandleUpdate(ctx *fiber.Ctx) error
}

type webhookController struct {
	gameService      service.IGameService
	publisherService service.IPublisherService
	messenger        service.Messenger
	log              logger.ILogger
}

func NewWebhookController(
	gameService service.IGameService,
	publisherService service.IPublisherService,
	messenger service.Messenger,
	log logger.ILogger,
) IWebhookController {
	return &webhookController{
		gameService:      gameService,
		publisherService: publisherService,
		messenger:        messenger,
		log:              log,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/telegram/v1")
	h.Post("webhook", c.HandleUpdate)
}

// HandleUpdate receives one Bot API update and dispatches it by kind. The
// endpoint always answers 200 so the transport does not retry updates we
// already logged as malformed.
func (c *webhookController) HandleUpdate(ctx *fiber.Ctx) error {
	var update dto.Update
	if err := ctx.BodyParser(&update); err != nil {
		c.log.Warn("webhook", "malformed update payload", map[string]interface{}{"error": err.Error()})
		return ctx.JSON(serverutils.SuccessResponse[any]("ignored", nil))
	}

	switch {
	case update.CallbackQuery != nil:
		c.handleCallback(ctx, update.CallbackQuery)
	case update.EditedMessage != nil && update.EditedMessage.Location != nil:
		c.publishPosition(ctx, update.EditedMessage)
	case update.Message != nil && update.Message.Location != nil:
		c.publishPosition(ctx, update.Message)
	case update.Message != nil:
		c.handleMessage(ctx, update.Message)
	default:
		c.log.Debug("webhook", "update kind not handled", map[string]interface{}{"update_id": update.UpdateID})
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("ok", nil))
}

func (c *webhookController) handleMessage(ctx *fiber.Ctx, msg *dto.Message) {
	playerID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	var err error
	switch {
	case strings.HasPrefix(text, "/start"):
		err = c.gameService.HandleStart(ctx.Context(), playerID)
	case strings.HasPrefix(text, "/radar"):
		err = c.gameService.HandleRadar(ctx.Context(), playerID)
	default:
		err = c.gameService.HandleText(ctx.Context(), playerID, text)
	}

	if err != nil {
		c.log.Error("webhook", "message handling failed", map[string]interface{}{
			"player_id": playerID, "error": err.Error(),
		})
	}
}

func (c *webhookController) handleCallback(ctx *fiber.Ctx, cb *dto.CallbackQuery) {
	// Close the client-side loading animation and drop the tapped keyboard
	if err := c.messenger.AnswerCallback(ctx.Context(), cb.ID); err != nil {
		c.log.Warn("webhook", "answer callback failed", map[string]interface{}{"error": err.Error()})
	}
	if cb.Message != nil {
		if err := c.messenger.ClearButtons(ctx.Context(), cb.Message.Chat.ID, cb.Message.MessageID); err != nil {
			c.log.Warn("webhook", "clear buttons failed", map[string]interface{}{"error": err.Error()})
		}
	}

	if cb.Message == nil {
		return
	}
	playerID := cb.Message.Chat.ID

	req, err := dto.ParseCallbackData(cb.Data)
	if err != nil {
		c.log.Warn("webhook", "unknown callback code, ignoring", map[string]interface{}{
			"player_id": playerID, "data": cb.Data,
		})
		return
	}

	if err := c.gameService.HandleButton(ctx.Context(), playerID, req); err != nil {
		c.log.Error("webhook", "button handling failed", map[string]interface{}{
			"player_id": playerID, "error": err.Error(),
		})
	}
}

// publishPosition hands the ping to the async pipeline; the consumer feeds it
// into the state machine so slow store lookups never block the webhook.
func (c *webhookController) publishPosition(ctx *fiber.Ctx, msg *dto.Message) {
	editedAt := msg.Date
	if msg.EditDate > 0 {
		editedAt = msg.EditDate
	}

	ping := dto.PositionPing{
		PlayerID:  msg.Chat.ID,
		Latitude:  msg.Location.Latitude,
		Longitude: msg.Location.Longitude,
		IsLive:    msg.Location.LivePeriod > 0,
		EditedAt:  editedAt,
	}

	payload, err := json.Marshal(ping)
	if err != nil {
		c.log.Error("webhook", "marshal position ping failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := c.publisherService.Publish(ctx.Context(), payload); err != nil {
		c.log.Error("webhook", "publish position ping failed", map[string]interface{}{
			"player_id": ping.PlayerID, "error": err.Error(),
		})
	}
}
