package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kilhoshin/aissam/internal/config"
	"github.com/kilhoshin/aissam/internal/controller"
	"github.com/kilhoshin/aissam/internal/pkg/auth"
	"github.com/kilhoshin/aissam/internal/pkg/logger"
	"github.com/kilhoshin/aissam/internal/repository/unitofwork"
	"github.com/kilhoshin/aissam/internal/service"
	"github.com/kilhoshin/aissam/pkg/llm/gemini"
	"github.com/kilhoshin/aissam/pkg/media"
	pktNats "github.com/kilhoshin/aissam/pkg/nats"
	"github.com/kilhoshin/aissam/pkg/tutor"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	SubjectController controller.ISubjectController
	ChatController    controller.IChatController

	// Middleware dependencies
	TokenIssuer *auth.TokenIssuer
	Logger      logger.ILogger

	// Background services (exposed for main.go to run)
	AnalysisConsumer *service.AnalysisConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	tokenIssuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 2. Event bus for background analysis jobs
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// 3. Infrastructure
	// NATS activity events are best-effort; the app runs without a broker.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis caches the question-pattern analysis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Media storage
	var storage media.Storage
	if cfg.Media.Backend == "minio" {
		minioStorage, err := media.NewMinioStorage(&media.MinioConfig{
			Endpoint:  cfg.Media.MinioEndpoint,
			AccessKey: cfg.Media.MinioAccessKey,
			SecretKey: cfg.Media.MinioSecretKey,
			Bucket:    cfg.Media.MinioBucket,
			UseSSL:    cfg.Media.MinioUseSSL,
			URLPrefix: cfg.Media.MinioURLPrefix,
		})
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize MinIO storage: %v", err)
		}
		storage = minioStorage
		log.Printf("[INFO] Using media storage: MINIO (%s)", cfg.Media.MinioBucket)
	} else {
		localStorage, err := media.NewLocalStorage(cfg.Media.UploadDir, "/uploads")
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize local storage: %v", err)
		}
		storage = localStorage
		log.Printf("[INFO] Using media storage: LOCAL (%s)", cfg.Media.UploadDir)
	}

	// 4. Tutor generator
	provider := gemini.NewProvider(cfg.Keys.GoogleGemini, cfg.Tutor.Model)
	generator := tutor.NewGenerator(provider, cfg.Tutor.GenerateWithin)
	log.Printf("[INFO] Using LLM model: %s", cfg.Tutor.Model)

	// 5. Services
	authService := service.NewAuthService(uowFactory, tokenIssuer, natsPub, sysLogger)
	userService := service.NewUserService(uowFactory, rdb, sysLogger)
	subjectService := service.NewSubjectService(uowFactory, gocache.New(10*time.Minute, 30*time.Minute))
	chatService := service.NewChatService(
		uowFactory, storage, generator,
		pubSub, cfg.Tutor.AnalysisTopic, cfg.App.BaseURL, sysLogger,
	)
	analysisConsumer := service.NewAnalysisConsumerService(
		pubSub, cfg.Tutor.AnalysisTopic, uowFactory, generator, rdb, sysLogger,
	)

	// 6. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		UserController:    controller.NewUserController(userService),
		SubjectController: controller.NewSubjectController(subjectService),
		ChatController:    controller.NewChatController(chatService),
		TokenIssuer:       tokenIssuer,
		Logger:            sysLogger,
		AnalysisConsumer:  analysisConsumer,
	}
}
