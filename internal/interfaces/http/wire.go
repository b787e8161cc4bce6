package http

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	activityuc "miniticker/internal/application/activity/usecases"
	areauc "miniticker/internal/application/area/usecases"
	authuc "miniticker/internal/application/auth/usecases"
	requesttypeuc "miniticker/internal/application/requesttype/usecases"
	ticketuc "miniticker/internal/application/ticket/usecases"
	useruc "miniticker/internal/application/user/usecases"
	"miniticker/internal/infrastructure/auth"
	"miniticker/internal/infrastructure/config"
	"miniticker/internal/infrastructure/email"
	"miniticker/internal/infrastructure/ratelimit"
	"miniticker/internal/infrastructure/repository"
	"miniticker/internal/infrastructure/storage"
	"miniticker/internal/interfaces/http/handlers"
	"miniticker/internal/interfaces/http/middleware"
	"miniticker/internal/shared/db"
	"miniticker/internal/shared/logger"
)

// BuildRouter wires repositories, infrastructure services, use cases and
// handlers into a ready-to-run router.
func BuildRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	userRepo := repository.NewUserRepository(gdb)
	areaRepo := repository.NewAreaRepository(gdb)
	typeRepo := repository.NewRequestTypeRepository(gdb)
	ticketRepo := repository.NewTicketRepository(gdb)
	commentRepo := repository.NewCommentRepository(gdb)
	ticketEventRepo := repository.NewTicketEventRepository(gdb)
	systemEventRepo := repository.NewSystemEventRepository(gdb)
	sequenceRepo := repository.NewSequenceRepository(gdb)

	txManager := db.NewTransactionManager(gdb)

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	var mailer email.Service
	if cfg.Email.Enabled {
		mailer = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	} else {
		mailer = email.NewNoopEmailService(log)
	}

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(client)
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}

	fileStorage := storage.NewLocalFileStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)

	authHandler := handlers.NewAuthHandler(
		authuc.NewLoginUseCase(userRepo, systemEventRepo, hasher, jwtService, limiter, log),
		authuc.NewLogoutUseCase(systemEventRepo, log),
		authuc.NewRefreshTokenUseCase(userRepo, jwtService, log),
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketuc.NewCreateTicketUseCase(ticketRepo, ticketEventRepo, areaRepo, typeRepo, sequenceRepo, txManager, log),
		ticketuc.NewUpdateTicketUseCase(ticketRepo, ticketEventRepo, txManager, log),
		ticketuc.NewChangeStatusUseCase(ticketRepo, commentRepo, ticketEventRepo, userRepo, txManager, mailer, log),
		ticketuc.NewAssignTicketUseCase(ticketRepo, ticketEventRepo, userRepo, txManager, mailer, log),
		ticketuc.NewAddCommentUseCase(ticketRepo, commentRepo, ticketEventRepo, txManager, log),
		ticketuc.NewGetTicketUseCase(ticketRepo, commentRepo, ticketEventRepo, userRepo, log),
		ticketuc.NewListTicketsUseCase(ticketRepo, log),
		fileStorage,
	)

	areaHandler := handlers.NewAreaHandler(
		areauc.NewCreateAreaUseCase(areaRepo, systemEventRepo, txManager, log),
		areauc.NewUpdateAreaUseCase(areaRepo, systemEventRepo, txManager, log),
		areauc.NewSetAreaActiveUseCase(areaRepo, systemEventRepo, txManager, log),
		areauc.NewDeleteAreaUseCase(areaRepo, ticketRepo, userRepo, systemEventRepo, txManager, log),
		areauc.NewAssignResponsibleUseCase(areaRepo, userRepo, systemEventRepo, txManager, log),
		areauc.NewRemoveResponsibleUseCase(areaRepo, userRepo, systemEventRepo, txManager, log),
		areauc.NewListAreasUseCase(areaRepo, log),
	)

	requestTypeHandler := handlers.NewRequestTypeHandler(
		requesttypeuc.NewCreateRequestTypeUseCase(typeRepo, areaRepo, systemEventRepo, txManager, log),
		requesttypeuc.NewUpdateRequestTypeUseCase(typeRepo, systemEventRepo, txManager, log),
		requesttypeuc.NewSetRequestTypeActiveUseCase(typeRepo, systemEventRepo, txManager, log),
		requesttypeuc.NewDeleteRequestTypeUseCase(typeRepo, systemEventRepo, txManager, log),
		requesttypeuc.NewListRequestTypesUseCase(typeRepo, log),
	)

	userHandler := handlers.NewUserHandler(
		useruc.NewCreateUserUseCase(userRepo, systemEventRepo, hasher, txManager, mailer, log),
		useruc.NewUpdateProfileUseCase(userRepo, systemEventRepo, txManager, log),
		useruc.NewChangeRoleUseCase(userRepo, areaRepo, systemEventRepo, txManager, log),
		useruc.NewChangePasswordUseCase(userRepo, hasher, log),
		useruc.NewSetUserActiveUseCase(userRepo, systemEventRepo, txManager, log),
		useruc.NewListUsersUseCase(userRepo, log),
		fileStorage,
	)

	activityHandler := handlers.NewActivityHandler(
		activityuc.NewPersonalFeedUseCase(ticketEventRepo, systemEventRepo, ticketRepo, userRepo, log),
		activityuc.NewGlobalFeedUseCase(ticketEventRepo, systemEventRepo, ticketRepo, userRepo, log),
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return NewRouter(
		authMiddleware,
		authHandler,
		ticketHandler,
		areaHandler,
		requestTypeHandler,
		userHandler,
		activityHandler,
	)
}
