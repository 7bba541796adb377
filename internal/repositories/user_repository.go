package repositories

import (
	"errors"
	"time"

	"github.com/anonto42/snapgram/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user directory operations
type UserRepository interface {
	FindOrCreateByGitHubID(githubID int64, username, profilePicture string) (*models.User, error)
	GetByUserID(userID string) (*models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// FindOrCreateByGitHubID looks up a user by GitHub identity and creates a
// local record on first login. The unique index on github_id makes concurrent
// first logins for the same identity converge on a single record: the loser
// of the insert race re-reads the winner's row.
func (r *PostgresUserRepository) FindOrCreateByGitHubID(githubID int64, username, profilePicture string) (*models.User, error) {
	var user models.User
	err := r.db.Where("github_id = ?", githubID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		UserID:         uuid.NewString(),
		Username:       username,
		GitHubID:       githubID,
		ProfilePicture: profilePicture,
		CreatedAt:      time.Now().UTC(),
	}
	if err := r.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.User
			if err := r.db.Where("github_id = ?", githubID).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByUserID retrieves a user by internal user ID from PostgreSQL
func (r *PostgresUserRepository) GetByUserID(userID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
