package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"xenopets/internal/adapter/api"
	"xenopets/internal/adapter/api/handler"
	apimiddleware "xenopets/internal/adapter/api/middleware"
	"xenopets/internal/adapter/api/router"
	"xenopets/internal/adapter/repository"
	"xenopets/internal/infrastructure/firebase"
	"xenopets/internal/infrastructure/storage"
	"xenopets/internal/infrastructure/websocket"
	"xenopets/internal/usecase"
	"xenopets/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opt option.ClientOption
	credentialsPath := ""

	// Service account JSON in the environment wins (production); a file path
	// is the local-development fallback.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		log.Printf("Using Firebase service account from file: %s", credentialsPath)
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	petRepo := repository.NewFirestorePetRepository(firestoreClient)
	inventoryRepo := repository.NewFirestoreInventoryRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	achievementRepo := repository.NewFirestoreAchievementRepository(firestoreClient)
	questRepo := repository.NewFirestoreQuestRepository(firestoreClient)
	collectibleRepo := repository.NewFirestoreCollectibleRepository(firestoreClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	firebaseAuthClient := firebase.NewAuthClient(authClient)

	catalogUseCase := usecase.NewCatalogUseCase()
	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, wsManager)
	playerUseCase := usecase.NewPlayerUseCase(userRepo, petRepo, achievementRepo, notificationUseCase)
	progressUseCase := usecase.NewProgressUseCase(achievementRepo, questRepo, collectibleRepo, notificationUseCase)
	statsUseCase := usecase.NewStatsUseCase(userRepo, petRepo, inventoryRepo, catalogUseCase, cfg.ActiveWindow)

	refresher := usecase.NewStatsRefresher(statsUseCase, wsManager, cfg.StatsInterval)
	refresher.Start(ctx)

	// Catalog edits reach dashboards immediately instead of on the next tick.
	catalogUseCase.Subscribe(func() {
		go refresher.Trigger(ctx)
	})

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authUseCase),
		Item:         handler.NewItemHandler(catalogUseCase),
		Shop:         handler.NewShopHandler(catalogUseCase),
		Player:       handler.NewPlayerHandler(playerUseCase),
		Stats:        handler.NewStatsHandler(statsUseCase),
		Progress:     handler.NewProgressHandler(progressUseCase),
		Notification: handler.NewNotificationHandler(notificationUseCase),
		File:         handler.NewFileHandler(storageClient, catalogUseCase),
		Health:       handler.NewHealthHandler(),
		WebSocket:    handler.NewWebSocketHandler(wsManager),
	}

	mw := router.Middleware{
		Auth:      apimiddleware.NewAuthMiddleware(authClient),
		Admin:     apimiddleware.NewAdminMiddleware(userRepo),
		RateLimit: apimiddleware.NewRateLimitMiddleware(10, 10, time.Second),
	}

	router.Setup(e, handlers, mw)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
