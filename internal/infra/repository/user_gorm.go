package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/sling-library/internal/domain/auth"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", u.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return auth.ErrEmailTaken
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err, auth.ErrUserNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err, auth.ErrUserNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var roles []string
	if err := r.db.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("user_id = ?", userID).
		Order("role ASC").
		Pluck("role", &roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *UserGormRepository) HasRole(ctx context.Context, userID uuid.UUID, role auth.Role) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, string(role)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GrantRole is idempotent.
func (r *UserGormRepository) GrantRole(ctx context.Context, userID uuid.UUID, role auth.Role) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserRole{UserID: userID, Role: string(role)}).Error
}

var _ auth.Repository = (*UserGormRepository)(nil)
