package main

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	auth "github.com/Flexibelstudio/quester-backend/pkg/auth"
	"github.com/Flexibelstudio/quester-backend/pkg/config"
	"github.com/Flexibelstudio/quester-backend/repos/geocode"
	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
	resend "github.com/Flexibelstudio/quester-backend/repos/resend"
	"github.com/Flexibelstudio/quester-backend/repos/storage"

	admin "github.com/Flexibelstudio/quester-backend/services/admin"
	assist "github.com/Flexibelstudio/quester-backend/services/assist"
	events "github.com/Flexibelstudio/quester-backend/services/events"
	quickplay "github.com/Flexibelstudio/quester-backend/services/quickplay"
	stats "github.com/Flexibelstudio/quester-backend/services/stats"
	templates "github.com/Flexibelstudio/quester-backend/services/templates"
	tiers "github.com/Flexibelstudio/quester-backend/services/tiers"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The backend mode is resolved here, once. Everything downstream gets
	// concrete collaborators and never asks again.
	var (
		store    quest.Store
		verifier auth.TokenVerifier
		uploader storage.Uploader
	)

	switch cfg.BackendMode {
	case config.ModeLive:
		credentialsOption := option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON))

		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, credentialsOption)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		firebaseApp, err := firebase.NewApp(ctx, nil, credentialsOption)
		if err != nil {
			log.Fatalf("error initializing app: %v\n", err)
		}

		verifier, err = auth.NewFirebaseVerifier(ctx, firebaseApp)
		if err != nil {
			log.Fatalf("Failed to create Firebase Auth verifier: %v", err)
		}

		gcsClient, err := gcs.NewClient(ctx, credentialsOption)
		if err != nil {
			log.Fatalf("Failed to create Cloud Storage client: %v", err)
		}
		defer gcsClient.Close()

		store = quest.NewFirestoreStore(firestoreClient)
		uploader = storage.NewCloudUploader(gcsClient, cfg.StorageBucket)

	default:
		memoryStore := quest.NewMemoryStore()
		// The local identity owns the back office in mock mode.
		memoryStore.SaveUser(ctx, quest.UserProfile{
			ID:   cfg.LocalUID,
			Name: "Local Admin",
			Tier: quest.TierMaster,
			Role: quest.RoleAdmin,
		})

		store = memoryStore
		verifier = auth.StaticVerifier{UID: cfg.LocalUID}
		uploader = storage.NewLocalUploader()
	}

	geocodeService := geocode.NewService(cfg.GeocodeBaseURL)
	resendService := resend.NewService(cfg.ResendKey, cfg.LeadsNotifyEmail)

	tiersService := tiers.NewTiersService(store)
	if err := tiersService.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed tier configs: %v", err)
	}

	eventsService := events.NewEventsService(store, geocodeService, uploader)
	templatesService := templates.NewTemplatesService(store)
	quickplayService := quickplay.NewQuickplayService(store)
	adminService := admin.NewAdminService(store, resendService)
	statsService := stats.NewStatsService(store)
	assistService := assist.NewAssistService(cfg.OpenAIBaseURL, cfg.OpenAIKey, cfg.AssistModel)

	router := gin.Default()
	if len(cfg.CORSHosts) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSHosts
		corsConfig.AllowCredentials = true
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
		router.Use(cors.New(corsConfig))
	}

	publicRouter := router.Group("/public/v1")

	eventsRouter := router.Group("/events/v1")
	eventsRouter.Use(auth.AuthMiddleware(verifier))

	templatesRouter := router.Group("/templates/v1")
	templatesRouter.Use(auth.AuthMiddleware(verifier))

	quickplayRouter := router.Group("/quickplay/v1")
	quickplayRouter.Use(auth.AuthMiddleware(verifier))

	assistRouter := router.Group("/assist/v1")
	assistRouter.Use(auth.AuthMiddleware(verifier))

	adminRouter := router.Group("/admin/v1")
	adminRouter.Use(auth.AuthMiddleware(verifier), auth.AdminMiddleware(store))

	events.NewHTTPHandler(events.HTTPOptions{
		Service:      eventsService,
		Router:       eventsRouter,
		PublicRouter: publicRouter,
	})

	templates.NewHTTPHandler(templates.HTTPOptions{
		Service: templatesService,
		Router:  templatesRouter,
	})

	quickplay.NewHTTPHandler(quickplay.HTTPOptions{
		Service: quickplayService,
		Router:  quickplayRouter,
	})

	tiers.NewHTTPHandler(tiers.HTTPOptions{
		Service:     tiersService,
		Router:      publicRouter,
		AdminRouter: adminRouter,
	})

	admin.NewHTTPHandler(admin.HTTPOptions{
		Service:      adminService,
		Router:       adminRouter,
		PublicRouter: publicRouter,
	})

	stats.NewHTTPHandler(stats.HTTPOptions{
		Service: statsService,
		Router:  adminRouter,
	})

	assist.NewHTTPHandler(assist.HTTPOptions{
		Service: assistService,
		Router:  assistRouter,
	})

	log.Fatal(router.Run(":" + cfg.Port))
}
