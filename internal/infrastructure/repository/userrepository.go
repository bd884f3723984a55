package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stride/internal/domain/user"
	"stride/internal/infrastructure/persistence/models"
	"stride/internal/shared/db"
	"stride/internal/shared/errors"
	"stride/internal/shared/logger"
)

// UserRepository implements the user repository interface backed by GORM
type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(gdb *gorm.DB, log logger.Interface) user.Repository {
	return &UserRepository{
		db:     gdb,
		logger: log,
	}
}

func userToModel(entity *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		CreatedAt:    entity.CreatedAt(),
	}
}

func userToEntity(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(model.ID, model.Username, model.Email, model.PasswordHash, model.CreatedAt)
}

// Create persists a new user
func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	model := userToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("username or email already exists")
		}
		r.logger.Errorw("failed to create user", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "username", model.Username)
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userToEntity(&model)
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by username", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userToEntity(&model)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userToEntity(&model)
}

// GetByIdentifier resolves a login identifier that may be a username or an email
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*user.User, error) {
	var model models.UserModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by identifier", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userToEntity(&model)
}

// Delete removes the user. Assigned work items are released (assignee set to
// NULL), authored comments and membership rows are removed with the account.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TaskModel{}).
			Where("assignee_id = ?", id).
			Update("assignee_id", nil).Error; err != nil {
			return fmt.Errorf("failed to release assigned tasks: %w", err)
		}

		if err := tx.Model(&models.BugModel{}).
			Where("assignee_id = ?", id).
			Update("assignee_id", nil).Error; err != nil {
			return fmt.Errorf("failed to release assigned bugs: %w", err)
		}

		if err := tx.Where("author_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete authored comments: %w", err)
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.UserProjectModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project memberships: %w", err)
		}

		result := tx.Delete(&models.UserModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("user not found")
		}

		r.logger.Infow("user deleted", "id", id)
		return nil
	})
}

// Count returns the total number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
