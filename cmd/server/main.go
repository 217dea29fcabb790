package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	_ "github.com/mohamadfayez/apigee-marketplace/docs" // swagger docs
	"github.com/mohamadfayez/apigee-marketplace/internal/config"
	"github.com/mohamadfayez/apigee-marketplace/internal/handler"
	"github.com/mohamadfayez/apigee-marketplace/internal/infrastructure/apigee"
	"github.com/mohamadfayez/apigee-marketplace/internal/infrastructure/apihub"
	infrafs "github.com/mohamadfayez/apigee-marketplace/internal/infrastructure/firestore"
	"github.com/mohamadfayez/apigee-marketplace/internal/infrastructure/genai"
	"github.com/mohamadfayez/apigee-marketplace/internal/infrastructure/sampledata"
	"github.com/mohamadfayez/apigee-marketplace/internal/router"
	"github.com/mohamadfayez/apigee-marketplace/internal/usecase"
	"github.com/mohamadfayez/apigee-marketplace/pkg/logger"
)

//	@title			Apigee Marketplace API Server
//	@version		0.1.0
//	@description	Data marketplace API service providing product provisioning, category management, and API catalog integration

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@host		localhost:8080
//	@BasePath	/api

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "marketplace-apiserver",
	Short: "API server for the Apigee data marketplace",
	Long: `Marketplace API Server is a high-performance HTTP API server built with the Hertz framework.
It provisions data products across Apigee, API Hub, Firestore, and Vertex AI.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("config loaded successfully", "config_file", cfgFile)
	slog.Info("Marketplace API Server starting...",
		"version", version,
		"project", cfg.GCP.ProjectID,
	)

	// Setup Hertz to use slog
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)
	hlog.SetLevel(hlog.LevelDebug)

	ctx := context.Background()

	// Firestore document store
	fsClient, err := firestore.NewClient(ctx, cfg.GCP.ProjectID)
	if err != nil {
		slog.Error("failed to create firestore client", "error", err)
		os.Exit(1)
	}

	slog.Info("firestore connected successfully")

	productRepo := infrafs.NewProductRepository(fsClient)
	userRepo := infrafs.NewUserRepository(fsClient)
	configRepo := infrafs.NewSiteConfigRepository(fsClient)

	// Bearer-token HTTP client for the Google management APIs
	tokenSource, err := google.DefaultTokenSource(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		slog.Error("failed to create token source", "error", err)
		os.Exit(1)
	}
	authClient := oauth2.NewClient(ctx, tokenSource)

	// Apigee management plane
	gatewayClient := apigee.NewClient(authClient, cfg.GCP.ProjectID, cfg.GCP.ApigeeEnv)

	// API Hub catalog: client, attribute cache, registrar
	catalogClient := apihub.NewClient(authClient, cfg.GCP.ProjectID, cfg.GCP.APIHubRegion)

	loadCtx, cancelLoad := context.WithTimeout(ctx, 30*time.Second)
	attrs := apihub.LoadAttributeSet(loadCtx, catalogClient)
	cancelLoad()

	slog.Info("catalog attribute cache loaded", "counts", attrs.Counts())

	registrar := apihub.NewRegistrar(catalogClient, attrs, cfg.GCP.SiteURL, cfg.GCP.APIHost)

	// Vertex AI generative model
	generator, closeGenerator, err := genai.NewGenerator(ctx, cfg.GCP.ProjectID, cfg.Model)
	if err != nil {
		slog.Error("failed to create generative model client", "error", err)
		os.Exit(1)
	}

	// Marketplace sample-data endpoint
	sampleClient := sampledata.NewClient(cfg.GCP.APIHost)

	// Usecases and handlers
	productUsecase := usecase.NewProductUsecase(
		productRepo,
		userRepo,
		gatewayClient,
		registrar,
		generator,
		sampleClient,
		cfg.GCP.APIHost,
		slog.Default(),
	)
	productHandler := handler.NewProductHandler(productUsecase, slog.Default())

	categoryUsecase := usecase.NewCategoryUsecase(configRepo, slog.Default())
	categoryHandler := handler.NewCategoryHandler(categoryUsecase, slog.Default())

	dataGenUsecase := usecase.NewDataGenUsecase(catalogClient, generator, slog.Default())
	dataGenHandler := handler.NewDataGenHandler(dataGenUsecase, slog.Default())

	apiHubHandler := handler.NewAPIHubHandler(catalogClient, slog.Default())
	healthHandler := handler.NewHealthHandler(attrs)

	slog.Info("handlers initialized")

	// Create Hertz server with performance optimization
	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	// Setup routes
	router.Setup(h, productHandler, categoryHandler, apiHubHandler, dataGenHandler, healthHandler)

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	// Graceful shutdown
	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	if err := closeGenerator(); err != nil {
		slog.Error("failed to close generative model client", "error", err)
	}

	if err := fsClient.Close(); err != nil {
		slog.Error("failed to close firestore client", "error", err)
	} else {
		slog.Info("firestore closed successfully")
	}

	slog.Info("server stopped gracefully")
}
