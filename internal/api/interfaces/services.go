package interfaces

import (
	"context"

	"devconnector/internal/database"
	"devconnector/internal/metrics"
	"devconnector/pkg/config"
	"devconnector/pkg/logger"
)

// UserStore persists credential records
type UserStore interface {
	Create(ctx context.Context, user *database.User) error
	GetByID(ctx context.Context, userID string) (*database.User, error)
	GetByEmail(ctx context.Context, email string) (*database.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProfileStore persists profiles and their nested entries
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*database.Profile, error)
	List(ctx context.Context) ([]*database.Profile, error)
	Create(ctx context.Context, profile *database.Profile) error
	Update(ctx context.Context, profile *database.Profile) error
	AddExperience(ctx context.Context, profileID string, exp *database.Experience) error
	DeleteExperience(ctx context.Context, profileID, experienceID string) error
	AddEducation(ctx context.Context, profileID string, edu *database.Education) error
	DeleteEducation(ctx context.Context, profileID, educationID string) error
	DeleteWithUser(ctx context.Context, userID string) error
}

// Services defines the interface for API services
type Services interface {
	GetLogger() *logger.Logger
	GetConfig() *config.Config
	GetMetrics() *metrics.Metrics
	TokenService() TokenServiceInterface
	PasswordHasher() PasswordHasherInterface
	UserRepository() UserStore
	ProfileRepository() ProfileStore
	Ping(ctx context.Context) error
}
