package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coletaverde/internal/adapter/http/handlers"
	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/adapter/http/routes"
	"coletaverde/internal/infrastructure/auth"
	"coletaverde/internal/infrastructure/config"
	"coletaverde/internal/infrastructure/database"
	"coletaverde/internal/infrastructure/lock"
	"coletaverde/internal/infrastructure/logging"
	"coletaverde/internal/infrastructure/mailer"
	"coletaverde/internal/infrastructure/media"
	"coletaverde/internal/infrastructure/notification"
	"coletaverde/internal/infrastructure/payments"
	"coletaverde/internal/infrastructure/viacep"
	"coletaverde/internal/usecase"
	"coletaverde/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// @title           Coleta Verde API
// @version         1.0
// @description     Waste collection marketplace: solicitations, value negotiation and payments.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	logger := logging.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	cfg := config.Load(logger)
	logger = logging.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, logger); err != nil {
		logging.LogError(logger, "main", "run", "startup", nil, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}

	rdb, err := database.ConnectRedis(ctx, cfg, logger)
	if err != nil {
		return err
	}
	var (
		notifier interfaces.INotifier = notification.NewLocalNotifier()
		locker   interfaces.ILocker
		limiter  *middleware.RateLimiter
	)
	if rdb != nil {
		defer closeRedis(rdb, logger)
		notifier = notification.NewRedisNotifier(rdb, logger)
		locker = lock.NewRedisLocker(rdb, logger)
		if cfg.RateLimit.Enabled {
			limiter = middleware.NewRateLimiter(middleware.NewRedisHitCounter(rdb), cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, logger)
		}
	} else if cfg.RateLimit.Enabled {
		logger.Warn("rate limit enabled but REDIS_ADDRESS is empty; running without it")
	}

	mediaStorage, err := media.NewLocalStorage(cfg.UploadsDir, cfg.MediaBaseURL)
	if err != nil {
		return err
	}

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger); err != nil {
		logger.WithError(err).Warn("Mercado Pago gateway not configured")
	} else {
		gateway = mp
	}

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	authUseCase := usecase.NewAuthUseCase(
		st.users, st.sequence, hasher,
		auth.NewJWTIssuer(cfg.APISecret, cfg.TokenHourLifespan),
		mailer.NewSMTPMailer(cfg.SMTP, logger),
		cfg.PublicBaseURL, logger,
	)
	solicitationUseCase := usecase.NewSolicitationUseCase(
		st.solicitations, st.users, st.sequence, notifier, logger,
		usecase.WithMediaStorage(mediaStorage),
	)
	paymentUseCase := usecase.NewBillingPaymentUseCase(st.payments, solicitationUseCase, gateway, cfg.PaymentGatewayMock, logger)

	router := routes.New(cfg, routes.Handlers{
		Auth:         handlers.NewAuthHandler(authUseCase),
		User:         handlers.NewUserHandler(usecase.NewUserUseCase(st.users, hasher), usecase.NewAddressUseCase(st.users, viacep.New(cfg.ViaCEPEndpoint))),
		Solicitation: handlers.NewSolicitationHandler(solicitationUseCase),
		Chat:         handlers.NewChatHandler(usecase.NewChatUseCase(st.chats, st.users, notifier, logger)),
		Events:       handlers.NewEventsHandler(notifier, logger),
		Payment:      handlers.NewBillingPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock, logger),
	}, authUseCase, limiter, logger)

	sweeper := usecase.NewExpirationSweeper(solicitationUseCase, locker, cfg.SweepInitialDelay, cfg.SweepInterval, logger)
	go sweeper.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{"port": cfg.Port, "store": cfg.StoreDriver}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func closeRedis(rdb *redis.Client, logger logrus.FieldLogger) {
	if err := rdb.Close(); err != nil {
		logger.WithError(err).Warn("redis close failed")
	}
}
