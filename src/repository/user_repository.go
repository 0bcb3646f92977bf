package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"papertrader/src/database"
	"papertrader/src/model"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository() *GormUserRepository {
	logger.WithField("component", "GormUserRepository").
		Info("Creating new GormUserRepository with MainDB")

	return &GormUserRepository{db: database.MainDB}
}

// WithDB allows overriding the underlying *gorm.DB instance.
func (r *GormUserRepository) WithDB(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create registers a new user, assigning the row key and subscription
// timestamp at write time.
func (r *GormUserRepository) Create(
	ctx context.Context,
	user *model.User,
) error {

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.SubscribedAt.IsZero() {
		user.SubscribedAt = time.Now().UTC()
	}

	logger.WithFields(map[string]interface{}{
		"repo":    "GormUserRepository",
		"op":      "Create",
		"user_id": user.UserID,
	}).Debug("Creating user")

	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo":    "GormUserRepository",
			"op":      "Create",
			"user_id": user.UserID,
		}).WithError(err).Error("Failed to create user")

		return err
	}

	return nil
}

// FindAll lists every registered user.
func (r *GormUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	var users []model.User

	err := r.db.WithContext(ctx).
		Order("subscribed_at ASC").
		Find(&users).Error

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"repo": "GormUserRepository",
			"op":   "FindAll",
		}).WithError(err).Error("Failed to fetch users")

		return nil, err
	}

	return users, nil
}
