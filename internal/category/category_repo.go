package category

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	GetByPlayerID(ctx context.Context, playerID string) (*Category, error)
	AssignPlayer(ctx context.Context, categoryID, playerID string) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Omit("Players").Create(c).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*Category, error) {
	var c Category
	err := r.db.WithContext(ctx).Preload("Players").First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.WithContext(ctx).Preload("Players").Order("name ASC").Find(&categories).Error
	return categories, err
}

// GetByPlayerID returns the player's current category, or (nil, nil).
func (r *categoryRepository) GetByPlayerID(ctx context.Context, playerID string) (*Category, error) {
	var c Category
	err := r.db.WithContext(ctx).
		Joins("JOIN category_players ON category_players.category_id = categories.id").
		Where("category_players.player_id = ?", playerID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// AssignPlayer moves the player into the category, replacing any previous registration.
func (r *categoryRepository) AssignPlayer(ctx context.Context, categoryID, playerID string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"category_id", "created_at"}),
	}).Create(&CategoryPlayer{
		PlayerID:   playerID,
		CategoryID: categoryID,
		CreatedAt:  time.Now(),
	}).Error
}
