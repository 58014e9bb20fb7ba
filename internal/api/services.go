package api

import (
	"context"
	"database/sql"
	"fmt"

	"devconnector/internal/api/interfaces"
	"devconnector/internal/auth"
	"devconnector/internal/database/repositories"
	"devconnector/internal/metrics"
	"devconnector/pkg/config"
	"devconnector/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// Services contains all the dependencies for API handlers
type Services struct {
	// Core dependencies
	DB      *sql.DB
	Logger  *logger.Logger
	Config  *config.Config
	Metrics *metrics.Metrics

	// Auth
	tokenService   interfaces.TokenServiceInterface
	passwordHasher *auth.PasswordHasher

	// Repositories
	userRepository    interfaces.UserStore
	profileRepository interfaces.ProfileStore
}

// NewServices creates a new services container. It fails when the token
// secret is missing so the process never serves traffic without one.
func NewServices(
	db *sql.DB,
	logger *logger.Logger,
	config *config.Config,
	registry prometheus.Registerer,
) (*Services, error) {
	tokenService, err := auth.NewTokenService(config.Security.JWTSecret, config.Security.JWTExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	services := &Services{
		DB:             db,
		Logger:         logger,
		Config:         config,
		Metrics:        metrics.New(registry),
		tokenService:   tokenService,
		passwordHasher: auth.NewPasswordHasher(config.Security.BcryptCost),
	}

	// Initialize repositories
	services.userRepository = repositories.NewUserRepository(db)
	services.profileRepository = repositories.NewProfileRepository(db)

	return services, nil
}

// Interface implementation methods
func (s *Services) GetLogger() *logger.Logger {
	return s.Logger
}

func (s *Services) GetConfig() *config.Config {
	return s.Config
}

func (s *Services) GetMetrics() *metrics.Metrics {
	return s.Metrics
}

func (s *Services) TokenService() interfaces.TokenServiceInterface {
	return s.tokenService
}

func (s *Services) PasswordHasher() interfaces.PasswordHasherInterface {
	return s.passwordHasher
}

func (s *Services) UserRepository() interfaces.UserStore {
	return s.userRepository
}

func (s *Services) ProfileRepository() interfaces.ProfileStore {
	return s.profileRepository
}

// Ping checks the database connection
func (s *Services) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}
