package bootstrap

import (
	"context"
	"log"
	"time"

	"geocache-bot/internal/config"
	"geocache-bot/internal/content"
	"geocache-bot/internal/controller"
	"geocache-bot/internal/pkg/logger"
	"geocache-bot/internal/repository/contract"
	"geocache-bot/internal/repository/memory"
	redisrepo "geocache-bot/internal/repository/redis"
	"geocache-bot/internal/repository/unitofwork"
	"geocache-bot/internal/service"
	"geocache-bot/pkg/media"
	"geocache-bot/pkg/scoring"
	"geocache-bot/pkg/telegram"

	pktNats "geocache-bot/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const positionTopicName = "POSITION_UPDATES"

type Container struct {
	// Controllers
	WebhookController controller.IWebhookController
	HealthController  controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for graceful shutdown
	NatsPublisher *pktNats.Publisher
	Logger        logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS (best effort: the game runs without the event bus)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Position arena based on Config
	var positions contract.PositionRepository
	if cfg.App.PositionStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		positions = redisrepo.NewPositionRepository(rdb)
		log.Printf("[INFO] Using Position Store: REDIS")
	} else {
		positions = memory.NewPositionRepository()
		log.Printf("[INFO] Using Position Store: MEMORY")
	}

	// 3. Domain collaborators
	contentStore := content.NewStore(cfg.Content.FilePath,
		time.Duration(cfg.Content.CacheTTLSeconds)*time.Second)
	mediaResolver := media.NewResolver(cfg.Content.MediaDir)
	messenger := telegram.NewClient(cfg.Telegram.BotToken)
	scorer := scoring.NewCalculator(cfg.Game.HelpPenaltyMinutes)

	// 4. Services
	publisherService := service.NewPublisherService(positionTopicName, pubSub)
	helpService := service.NewHelpService(messenger, cfg.Game.HelpPenaltyMinutes, sysLogger)

	var eventPublisher service.EventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}

	gameService := service.NewGameService(
		uowFactory,
		contentStore,
		positions,
		messenger,
		mediaResolver,
		helpService,
		scorer,
		eventPublisher,
		service.GameSettings{
			ArrivalThresholdKm: cfg.Game.ArrivalThresholdKm,
			PositionMaxAge:     time.Duration(cfg.Game.PositionMaxAgeSeconds) * time.Second,
		},
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		positionTopicName,
		gameService,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		WebhookController: controller.NewWebhookController(gameService, publisherService, messenger, sysLogger),
		HealthController:  controller.NewHealthController(),

		ConsumerService: consumerService,
		NatsPublisher:   natsPub,
		Logger:          sysLogger,
	}
}
