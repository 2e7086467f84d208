package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	accountapp "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/account"
	listingapp "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/listing"
	savedapp "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/saved"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/cmd/config"
	mongoclient "github.com/prettyirrelevant/ecx-property-hub-hackathon/cmd/mongo"
	redisclient "github.com/prettyirrelevant/ecx-property-hub-hackathon/cmd/redis"
	_ "github.com/prettyirrelevant/ecx-property-hub-hackathon/docs"
	accountRepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/account"
	agentRepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/agent"
	imageRepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/image"
	listingRepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/listing"
	redisRepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/redis"
	reviewRepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/review"
	savedRepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/saved"
	txRepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/tx"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/thirdparty/gridfs"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/thirdparty/mailer"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/thirdparty/rabbitmq"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/transport"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/authz"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/confirmation"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/logger"
	"go.uber.org/zap"
)

// @title Property Hub API
// @version 1.0
// @description Property listing marketplace API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	mongoClient, err := mongoclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	blobStore, err := gridfs.NewBlobStore(mongoClient.Database(cfg.Mongo.Database), cfg.Mongo.Bucket, cfg.Blob.PublicBaseURL)
	if err != nil {
		logger.Fatal("err init blob store", zap.Error(err))
	}

	// Confirmation emails: requests publish, the consumer delivers over SMTP
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL())
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer publisher.Close()

	smtp, err := mailer.New(cfg.SMTP)
	if err != nil {
		logger.Fatal("err init mailer", zap.Error(err))
	}
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQURL(), smtp)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer consumer.Close()
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	authorizer, err := authz.New()
	if err != nil {
		logger.Fatal("err init authorizer", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	AccountRepo := accountRepo.NewAccountRepository(db)
	AgentRepo := agentRepo.NewAgentRepository(db)
	ListingRepo := listingRepo.NewListingRepository(db)
	ImageRepo := imageRepo.NewImageRepository(db)
	ReviewRepo := reviewRepo.NewReviewRepository(db)
	SavedRepo := savedRepo.NewSavedRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// Initialize application layers
	AccountApp := accountapp.NewAccountApp(cfg, TxRepo, AccountRepo, AgentRepo, RedisRepo, publisher, confirmation.NewGenerator(nil))
	ListingApp := listingapp.NewListingApp(TxRepo, ListingRepo, ImageRepo, ReviewRepo, AgentRepo, AccountRepo, blobStore)
	SavedApp := savedapp.NewSavedApp(SavedRepo, ListingApp)

	httpTransport := transport.NewTransport(AccountApp, ListingApp, SavedApp, blobStore, authorizer, transport.Options{
		InternalAPIKey: cfg.Internal.APIKey,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
