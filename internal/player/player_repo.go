package player

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type PlayerRepository interface {
	Create(ctx context.Context, p *Player) error
	Update(ctx context.Context, p *Player) error
	GetByID(ctx context.Context, id string) (*Player, error)
	FindByEmail(ctx context.Context, email string) (*Player, error)
	List(ctx context.Context) ([]Player, error)
	Delete(ctx context.Context, id string) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, p *Player) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update saves every column and clears a soft delete, so a returning
// player keeps their id.
func (r *playerRepository) Update(ctx context.Context, p *Player) error {
	p.DeletedAt = gorm.DeletedAt{}
	return r.db.WithContext(ctx).Unscoped().Save(p).Error
}

func (r *playerRepository) GetByID(ctx context.Context, id string) (*Player, error) {
	var p Player
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Convention: (nil, nil) when the record does not exist
		}
		return nil, err
	}
	return &p, nil
}

// FindByEmail also matches soft-deleted players since email is unique.
func (r *playerRepository) FindByEmail(ctx context.Context, email string) (*Player, error) {
	var p Player
	err := r.db.WithContext(ctx).Unscoped().Where("email = ?", email).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) List(ctx context.Context) ([]Player, error) {
	var players []Player
	err := r.db.WithContext(ctx).Order("name ASC").Find(&players).Error
	return players, err
}

func (r *playerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Player{}, "id = ?", id).Error
}
