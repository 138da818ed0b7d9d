package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"philatelysamaaj/internal/adapter/api"
	"philatelysamaaj/internal/adapter/api/handler"
	apimiddleware "philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/adapter/api/router"
	"philatelysamaaj/internal/adapter/postgres"
	"philatelysamaaj/internal/adapter/repository"
	"philatelysamaaj/internal/domain/service"
	"philatelysamaaj/internal/infrastructure/firebase"
	"philatelysamaaj/internal/infrastructure/gemini"
	"philatelysamaaj/internal/infrastructure/ratelimit"
	"philatelysamaaj/internal/infrastructure/storage"
	"philatelysamaaj/internal/infrastructure/websocket"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/config"
	"philatelysamaaj/pkg/logger"
	"philatelysamaaj/pkg/response"
)

func main() {
	if err := run(); err != nil {
		logger.Error("server exited: %v", err)
		os.Exit(1)
	}
}

func credentials(cfg config.FirebaseConfig) []option.ClientOption {
	switch {
	case cfg.ServiceAccountJSON != "":
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))}
	case cfg.ServiceAccountPath != "":
		logger.Info("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(cfg.ServiceAccountPath)}
	default:
		logger.Info("Using application default credentials")
		return nil
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Server.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := credentials(cfg.Firebase)

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Storage.Bucket,
	}, opts...)
	if err != nil {
		return err
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		return err
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		return err
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.Storage.Bucket, opts...)
	if err != nil {
		return err
	}
	defer storageClient.Close()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}

	var identifier service.StampIdentifier
	if cfg.Gemini.APIKey != "" {
		identifier, err = gemini.NewStampIdentifier(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return err
		}
	} else {
		logger.Warn("GEMINI_API_KEY is not set, stamp identification is disabled")
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)
	catalogRepo := repository.NewFirestoreCatalogRepository(firestoreClient)
	auctionRepo := repository.NewFirestoreAuctionRepository(firestoreClient)
	postRepo := repository.NewFirestorePostRepository(firestoreClient)
	eventRepo := repository.NewFirestoreEventRepository(firestoreClient)
	threadRepo := repository.NewFirestoreThreadRepository(firestoreClient)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	txManager := postgres.NewTxManager(pool)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.Firebase.APIKey)
	hub := websocket.NewHub(nil)
	limiter := ratelimit.NewRateLimiter()
	maxUpload := cfg.Upload.MaxBytes

	auctionUseCase := usecase.NewAuctionUseCase(auctionRepo, userRepo, hub, limiter, storageClient, maxUpload)
	negotiationUseCase := usecase.NewNegotiationUseCase(threadRepo, userRepo, hub, limiter)
	hub.SetAuthorizer(negotiationUseCase.AuthorizeTopic)

	handler.Setup(handler.UseCases{
		Auth:        usecase.NewAuthUseCase(userRepo, firebaseAuthClient),
		User:        usecase.NewUserUseCase(userRepo, firebaseAuthClient),
		Catalog:     usecase.NewCatalogUseCase(catalogRepo, storageClient, maxUpload),
		Auction:     auctionUseCase,
		Forum:       usecase.NewForumUseCase(postRepo, userRepo, hub, limiter, storageClient, maxUpload),
		Event:       usecase.NewEventUseCase(eventRepo, ledgerRepo, txManager),
		Negotiation: negotiationUseCase,
		Account:     usecase.NewAccountUseCase(ledgerRepo, txManager),
		File:        usecase.NewFileUseCase(fileMetadataRepo, storageClient, maxUpload),
		Stamp:       usecase.NewStampUseCase(identifier, limiter, maxUpload),
	})
	handler.SetupHealthHandler(map[string]handler.HealthCheck{
		"postgres": pool.Ping,
	})

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.ErrorHandler
	e.Validator = api.NewValidator()

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(map[string]interface{}{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"remote_ip": v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit("12M"))

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)
	authLimit := apimiddleware.NewIPRateLimiter("auth", 10, time.Minute)
	apiLimit := apimiddleware.NewIPRateLimiter("api", 120, time.Minute)

	router.Setup(e, router.Middlewares{
		Auth:      authMiddleware,
		Admin:     adminMiddleware,
		AuthLimit: authLimit,
		APILimit:  apiLimit,
	}, handler.NewWebSocketHandler(ctx, hub, authMiddleware, cfg.Server.AllowedOrigins))

	limiter.StartCleanupRoutine(ctx, 10*time.Minute)
	authLimit.StartCleanup(ctx, 10*time.Minute, time.Hour)
	apiLimit.StartCleanup(ctx, 10*time.Minute, time.Hour)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		return auctionUseCase.Clock().Run(gctx, cfg.Auction.TickInterval)
	})

	g.Go(func() error {
		logger.Info("Server starting on port %s", cfg.Server.Port)
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
