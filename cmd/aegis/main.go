package main

import (
	"context"
	"log/slog"
	"os"

	"aegis/config"
	"aegis/internal/delivery"
	"aegis/internal/delivery/http"
	"aegis/internal/delivery/http/middleware"
	"aegis/internal/delivery/http/router/handler"
	"aegis/internal/domain/service"
	"aegis/internal/infra/auth"
	"aegis/internal/infra/clock"
	logs "aegis/internal/infra/log"
	"aegis/internal/infra/notification"
	"aegis/internal/infra/persistence/postgres"
	"aegis/internal/infra/rand"
	"aegis/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewOneTimeCodeRepository,
			postgres.NewResetTokenRepository,
			postgres.NewAuditLogRepository,
			postgres.NewActivityRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			clock.New,
			rand.New,
			notification.NewMailSender,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher, honoring a configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewVerificationService,
			impl.NewPasswordResetService,
			impl.NewAdminService,
			impl.NewAuditService,
			impl.NewActivityService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewActorMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewVerificationHandler,
			handler.NewPasswordResetHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
