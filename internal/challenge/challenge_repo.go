package challenge

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrVersionConflict is returned when a targeted update matched no row
// because another writer bumped the version first.
var ErrVersionConflict = errors.New("challenge version conflict")

// ChallengeRepository persists challenges and the matches that close them.
type ChallengeRepository interface {
	CreateChallenge(ctx context.Context, challenge *Challenge) error
	GetChallengeByID(ctx context.Context, id string) (*Challenge, error)
	GetChallenges(ctx context.Context, filter ChallengeFilter) ([]Challenge, error)
	UpdateChallengeFields(ctx context.Context, id string, version int, fields map[string]interface{}) error

	CreateMatch(ctx context.Context, match *Match) error

	WithTransaction(ctx context.Context, txFunc func(ChallengeRepository) error) error
}

// GormChallengeRepository implements ChallengeRepository using GORM
type GormChallengeRepository struct {
	db *gorm.DB
}

func NewGormChallengeRepository(db *gorm.DB) *GormChallengeRepository {
	return &GormChallengeRepository{db: db}
}

// WithTransaction runs txFunc against a repository bound to one transaction.
func (r *GormChallengeRepository) WithTransaction(ctx context.Context, txFunc func(ChallengeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return txFunc(&GormChallengeRepository{db: tx})
	})
}

// includeDeleted loads soft-deleted players too: a challenge keeps its
// participants after one of them leaves the directory.
func includeDeleted(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// withReferences expands challenger, players and match into full objects.
func withReferences(db *gorm.DB) *gorm.DB {
	return db.Preload("Challenger", includeDeleted).
		Preload("Players", includeDeleted).
		Preload("Match").
		Preload("Match.Players", includeDeleted).
		Preload("Match.Winner", includeDeleted)
}

// CreateChallenge inserts the challenge and its player links. Player rows
// themselves are owned by the player directory and are not written.
func (r *GormChallengeRepository) CreateChallenge(ctx context.Context, challenge *Challenge) error {
	return r.db.WithContext(ctx).
		Omit("Challenger", "Match", "Players.*").
		Create(challenge).Error
}

func (r *GormChallengeRepository) GetChallengeByID(ctx context.Context, id string) (*Challenge, error) {
	var challenge Challenge
	err := withReferences(r.db.WithContext(ctx)).First(&challenge, "challenges.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &challenge, nil
}

// GetChallenges lists challenges, newest request first.
func (r *GormChallengeRepository) GetChallenges(ctx context.Context, filter ChallengeFilter) ([]Challenge, error) {
	query := r.db.WithContext(ctx).Model(&Challenge{})

	if filter.PlayerID != "" {
		members := r.db.WithContext(ctx).Table("challenge_players").
			Select("challenge_id").
			Where("player_id = ?", filter.PlayerID)
		query = query.Where("challenges.id IN (?)", members)
	}
	if filter.Status != "" {
		query = query.Where("challenges.status = ?", filter.Status)
	}

	var challenges []Challenge
	err := withReferences(query).
		Order("challenges.date_of_request DESC").
		Find(&challenges).Error
	return challenges, err
}

// UpdateChallengeFields applies a targeted update when the stored version
// still equals version, and bumps it.
func (r *GormChallengeRepository) UpdateChallengeFields(ctx context.Context, id string, version int, fields map[string]interface{}) error {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["version"] = gorm.Expr("version + 1")

	result := r.db.WithContext(ctx).
		Model(&Challenge{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

// CreateMatch inserts the match and its player links.
func (r *GormChallengeRepository) CreateMatch(ctx context.Context, match *Match) error {
	return r.db.WithContext(ctx).
		Omit("Winner", "Players.*").
		Create(match).Error
}
