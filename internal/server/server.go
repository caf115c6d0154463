package server

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/artvault/artvault-api/internal/auth"
	awsclient "github.com/artvault/artvault-api/internal/client/aws"
	"github.com/artvault/artvault-api/internal/client/coingecko"
	"github.com/artvault/artvault-api/internal/client/coinmarketcap"
	"github.com/artvault/artvault-api/internal/client/ethereum"
	redisclient "github.com/artvault/artvault-api/internal/client/redis"
	"github.com/artvault/artvault-api/internal/client/solana"
	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/handlers"
	"github.com/artvault/artvault-api/internal/helpers"
	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/middleware"
	"github.com/artvault/artvault-api/internal/services"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/artvault/artvault-api/internal/wallet"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	healthHandler   *handlers.HealthHandler
	artworkHandler  *handlers.ArtworkHandler
	transferHandler *handlers.TransferHandler
	receiptHandler  *handlers.ReceiptHandler
	walletHandler   *handlers.WalletHandler
	priceHandler    *handlers.PriceHandler
	userHandler     *handlers.UserHandler

	authClient *auth.AuthClient
)

const (
	defaultFeeBufferSOL        = "0.001"
	defaultFeeBufferETH        = "0.0005"
	defaultConfirmationTimeout = 60 * time.Second
	defaultBalanceCacheTTL     = 20 * time.Second
	defaultPriceCacheTTL       = 60 * time.Second
	guardTTL                   = 3 * time.Minute
	sepoliaChainID             = 11155111
)

func InitializeHandlers() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables/secrets.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("invalid STAGE %q, must be one of prod, dev, local", stage)
	}
	logger.InitLogger(stage)

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to create secrets manager client", zap.Error(err))
	}

	// Database
	dbURL, err := secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil || dbURL == "" {
		logger.Fatal("DATABASE_URL is required", zap.Error(err))
	}

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	if err := db.Migrate(ctx, connPool); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	dbQueries := db.New(connPool)
	store := db.NewStore(connPool)

	// Networks
	solanaConfig := solana.Config{
		Endpoint: os.Getenv("SOLANA_RPC_URL"),
		Cluster:  os.Getenv("SOLANA_CLUSTER"),
	}
	level := envLevel("SOLANA_COMMITMENT", transfer.LevelConfirmed)
	solanaConfig.Commitment = solana.CommitmentFromLevel(level)
	solanaClient := solana.NewClient(solanaConfig)

	var ethClient *ethereum.Client
	if ethURL := os.Getenv("ETH_RPC_URL"); ethURL != "" {
		ethConfig := ethereum.Config{
			RPCURL:         ethURL,
			Confirmations:  uint64(envInt("ETH_CONFIRMATIONS", 2)),
			FinalizedDepth: uint64(envInt("ETH_FINALIZED_DEPTH", 64)),
			ExplorerURL:    os.Getenv("ETH_EXPLORER_URL"),
		}
		if id := os.Getenv("ETH_CHAIN_ID"); id != "" {
			chainID, ok := new(big.Int).SetString(id, 10)
			if !ok {
				logger.Fatal("Invalid ETH_CHAIN_ID", zap.String("value", id))
			}
			ethConfig.ChainID = chainID
		}
		ethClient, err = ethereum.Dial(ctx, ethConfig)
		if err != nil {
			logger.Fatal("Failed to connect to ethereum RPC", zap.Error(err))
		}
	} else {
		logger.Warn("ETH_RPC_URL not set, ethereum transfers disabled")
	}

	// Redis is optional. Without it the guard is process local and prices are cached in memory only.
	var (
		guard transfer.Guard = transfer.NewMemoryGuard()
		rdb   redis.Cmdable
	)
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		client, err := redisclient.Connect(ctx, redisURL)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		guard = redisclient.NewGuard(client, guardTTL)
		rdb = client
	}

	var publisher services.EventPublisher
	if queueURL := os.Getenv("TRANSFER_EVENTS_QUEUE_URL"); queueURL != "" {
		sqsPublisher, err := awsclient.NewEventPublisher(ctx, queueURL)
		if err != nil {
			logger.Fatal("Failed to create transfer event publisher", zap.Error(err))
		}
		publisher = sqsPublisher
	}

	// Signing keys
	var keyConfig wallet.KeyringConfig
	if err := secretsClient.GetSecretJSON(ctx, "SIGNING_KEYS_ARN", "SIGNING_KEYS", &keyConfig); err != nil {
		logger.Warn("No signing keys loaded, transfers will fail with signing_unavailable", zap.Error(err))
	}
	chainID := big.NewInt(sepoliaChainID)
	if ethClient != nil {
		chainID = ethClient.ChainID()
	}
	keyring, err := wallet.LoadKeyring(keyConfig, chainID)
	if err != nil {
		logger.Fatal("Failed to load signing keys", zap.Error(err))
	}

	// Transfer flows
	recorder := services.NewRecordWriter(store, publisher)
	timeout := envDuration("CONFIRMATION_TIMEOUT", defaultConfirmationTimeout)
	observer := transfer.ObserverFunc(func(attemptID uuid.UUID, t transfer.Transition, err error) {
		logger.Debug("Transfer attempt transition",
			zap.String("attempt_id", attemptID.String()),
			zap.String("from", string(t.From)),
			zap.String("to", string(t.To)),
			zap.Error(err),
		)
	})

	networks := []transfer.Network{solanaClient}
	flows := []*transfer.Flow{
		newFlow(solanaClient, envDecimal("TRANSFER_FEE_BUFFER_SOL", defaultFeeBufferSOL), level, timeout, recorder, guard, observer),
	}
	ethExplorer := ""
	if ethClient != nil {
		networks = append(networks, ethClient)
		flows = append(flows, newFlow(ethClient, envDecimal("TRANSFER_FEE_BUFFER_ETH", defaultFeeBufferETH), envLevel("ETH_COMMITMENT", transfer.LevelConfirmed), timeout, recorder, guard, observer))
		ethExplorer = ethClient.ExplorerURL()
	}

	// Prices
	var sources []services.PriceSource
	geckoKey, _ := secretsClient.GetSecretString(ctx, "COINGECKO_API_KEY_ARN", "COINGECKO_API_KEY")
	sources = append(sources, coingecko.NewClient(geckoKey))
	if cmcKey, _ := secretsClient.GetSecretString(ctx, "COIN_MARKET_CAP_API_KEY_ARN", "COIN_MARKET_CAP_API_KEY"); cmcKey != "" {
		sources = append(sources, coinmarketcap.NewClient(cmcKey))
	}
	priceService := services.NewPriceService(rdb, envDuration("PRICE_CACHE_TTL", defaultPriceCacheTTL), sources...)

	balanceService := services.NewBalanceService(transfer.NewBalanceReader(networks...), priceService, envDuration("BALANCE_CACHE_TTL", defaultBalanceCacheTTL))
	transferService := services.NewTransferService(keyring, balanceService, flows...)

	var mailer *services.ReceiptMailer
	if resendKey, _ := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY"); resendKey != "" {
		mailer = services.NewReceiptMailer(resendKey, os.Getenv("RECEIPT_FROM_EMAIL"), os.Getenv("RECEIPT_FROM_NAME"))
	} else {
		logger.Warn("RESEND_API_KEY not set, receipt emails disabled")
	}

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		Transfers: transferService,
		Purchases: services.NewPurchaseService(dbQueries, transferService),
		Artworks:  services.NewArtworkService(dbQueries),
		Users:     services.NewUserService(dbQueries),
		History:   services.NewHistoryService(dbQueries),
		Receipts:  services.NewReceiptService(dbQueries, solanaClient.Cluster(), ethExplorer),
		Balances:  balanceService,
		Prices:    priceService,
		Mailer:    mailer,
	})

	// Auth
	jwksURL, _ := secretsClient.GetSecretString(ctx, "CIVIC_JWKS_URL_ARN", "CIVIC_JWKS_URL")
	authClient, err = auth.NewAuthClient(auth.Config{
		JWKSURL:  jwksURL,
		Issuer:   os.Getenv("CIVIC_ISSUER"),
		ClientID: os.Getenv("CIVIC_CLIENT_ID"),
	})
	if err != nil {
		logger.Fatal("Failed to initialize auth client", zap.Error(err))
	}

	checks := map[string]handlers.HealthCheck{
		"database": connPool.Ping,
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	healthHandler = handlers.NewHealthHandler(checks)
	artworkHandler = handlers.NewArtworkHandler(common)
	transferHandler = handlers.NewTransferHandler(common)
	receiptHandler = handlers.NewReceiptHandler(common)
	walletHandler = handlers.NewWalletHandler(common)
	priceHandler = handlers.NewPriceHandler(common)
	userHandler = handlers.NewUserHandler(common)

	logger.Info("Handlers initialized",
		zap.String("stage", stage),
		zap.String("solana_cluster", solanaClient.Cluster()),
		zap.Bool("ethereum_enabled", ethClient != nil),
		zap.Bool("redis_enabled", rdb != nil),
		zap.Bool("events_enabled", publisher != nil),
	)
}

func newFlow(network transfer.Network, feeBuffer decimal.Decimal, level transfer.ConfirmationLevel, timeout time.Duration, recorder transfer.Recorder, guard transfer.Guard, observer transfer.Observer) *transfer.Flow {
	waiterConfig := transfer.DefaultWaiterConfig()
	waiterConfig.Level = level
	waiterConfig.Timeout = timeout

	return transfer.NewFlow(
		transfer.NewBuilder(network, feeBuffer),
		transfer.NewConfirmationWaiter(network, waiterConfig),
		recorder,
		guard,
		transfer.FlowConfig{SubmitRetries: 1, Observer: observer},
	)
}

func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.DefaultRateLimiter.Middleware())

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	v1.Use(authClient.Authenticate())
	{
		// Public routes
		v1.GET("/artworks", artworkHandler.ListArtworks)
		v1.GET("/artworks/:artwork_id", artworkHandler.GetArtwork)
		v1.GET("/users/:user_id/artworks", artworkHandler.ListCreatorArtworks)
		v1.GET("/users/by-wallet/:address", userHandler.GetUserByWallet)
		v1.GET("/prices", priceHandler.GetPrices)

		// Protected routes (authentication required)
		protected := v1.Group("/")
		protected.Use(auth.RequireAuth())
		{
			protected.GET("/me", userHandler.GetMe)
			protected.GET("/me/purchases", artworkHandler.ListPurchasedArtworks)

			protected.POST("/artworks", artworkHandler.CreateArtwork)
			protected.POST("/artworks/:artwork_id/purchase", middleware.StrictRateLimiter.Middleware(), artworkHandler.PurchaseArtwork)

			transfers := protected.Group("/transfers")
			{
				transfers.POST("", middleware.StrictRateLimiter.Middleware(), transferHandler.CreateTransfer)
				transfers.GET("", transferHandler.ListTransfers)
				transfers.GET("/:signature", transferHandler.GetTransfer)
				transfers.GET("/:signature/receipt", receiptHandler.GetReceipt)
				transfers.POST("/:signature/receipt/email", receiptHandler.EmailReceipt)
			}

			wallets := protected.Group("/wallets")
			{
				wallets.GET("/balances", walletHandler.GetBalances)
				wallets.POST("/balances/refresh", walletHandler.RefreshBalances)
				wallets.GET("/balances/stream", walletHandler.StreamBalances)
				wallets.GET("/:chain/qr", walletHandler.GetWalletQR)
			}
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = envList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"})
	corsConfig.AllowHeaders = envList("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.CorrelationIDHeader})
	corsConfig.ExposeHeaders = envList("CORS_EXPOSED_HEADERS", []string{"Content-Length", "Content-Disposition", middleware.CorrelationIDHeader})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}

func envList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	values := strings.Split(raw, ",")
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.Fatal("Invalid integer environment variable", zap.String("key", key), zap.String("value", raw))
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		logger.Fatal("Invalid duration environment variable", zap.String("key", key), zap.String("value", raw))
	}
	return v
}

func envDecimal(key, fallback string) decimal.Decimal {
	raw := os.Getenv(key)
	if raw == "" {
		raw = fallback
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		logger.Fatal("Invalid decimal environment variable", zap.String("key", key), zap.String("value", raw))
	}
	return v
}

func envLevel(key string, fallback transfer.ConfirmationLevel) transfer.ConfirmationLevel {
	level, err := parseLevel(os.Getenv(key), fallback)
	if err != nil {
		logger.Fatal("Invalid confirmation level environment variable", zap.String("key", key), zap.Error(err))
	}
	return level
}

// parseLevel accepts processed, confirmed or finalized. An empty value yields fallback.
func parseLevel(raw string, fallback transfer.ConfirmationLevel) (transfer.ConfirmationLevel, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return fallback, nil
	}
	level, ok := transfer.ParseConfirmationLevel(raw)
	if !ok {
		return transfer.LevelPending, fmt.Errorf("unknown confirmation level %q", raw)
	}
	return level, nil
}
