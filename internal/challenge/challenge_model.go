package challenge

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/DhavalSuthar-24/ladder/internal/models"
	"github.com/DhavalSuthar-24/ladder/internal/player"
	"gorm.io/gorm"
)

// Challenge is a proposed match between two or more players.
//
// Category is the challenger's category at the time the challenge was
// created. It is never recomputed, even if the challenger later moves.
type Challenge struct {
	models.BaseModel
	ChallengerID string          `json:"challenger_id" gorm:"index;not null;type:varchar(36)"`
	Challenger   *player.Player  `json:"challenger,omitempty" gorm:"foreignKey:ChallengerID"`
	Players      []player.Player `json:"players" gorm:"many2many:challenge_players"`
	Category     string          `json:"category" gorm:"index;not null"`
	Status       ChallengeStatus `json:"status" gorm:"index;not null;default:'PENDING'"`

	DateOfRequest  time.Time  `json:"date_of_request" gorm:"not null"`
	DateOfResponse *time.Time `json:"date_of_response,omitempty"`
	DateOfMatch    *time.Time `json:"date_of_match,omitempty"`

	MatchID *string `json:"match_id,omitempty" gorm:"uniqueIndex;type:varchar(36)"`
	Match   *Match  `json:"match,omitempty" gorm:"foreignKey:MatchID"`

	// Version guards targeted updates against concurrent writers.
	Version int `json:"version" gorm:"not null;default:1"`
}

// HasPlayer reports whether id is one of the challenge's participants.
func (c *Challenge) HasPlayer(id string) bool {
	for _, p := range c.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Match is the recorded result of a played challenge. It is written once
// and never modified.
type Match struct {
	models.BaseModel
	ChallengeID string          `json:"challenge_id" gorm:"uniqueIndex;not null;type:varchar(36)"`
	Category    string          `json:"category" gorm:"index;not null"`
	Players     []player.Player `json:"players" gorm:"many2many:match_players"`
	WinnerID    string          `json:"winner_id" gorm:"index;not null;type:varchar(36)"`
	Winner      *player.Player  `json:"winner,omitempty" gorm:"foreignKey:WinnerID"`
	Result      Result          `json:"result" gorm:"type:json"`
}

// SetResult is the score of one set, e.g. "6-4".
type SetResult struct {
	Set string `json:"set" binding:"required,max=20"`
}

// Result is stored as a JSON column.
type Result []SetResult

func (r Result) Value() (driver.Value, error) {
	if r == nil {
		r = Result{}
	}
	b, err := json.Marshal(r)
	return string(b), err
}

func (r *Result) Scan(src interface{}) error {
	return models.ScanJSON(src, r)
}

// --- DTOs for requests ---

type CreateChallengeRequest struct {
	Challenger  string     `json:"challenger" binding:"required"`
	Players     []string   `json:"players" binding:"required,min=2,dive,required"`
	DateOfMatch *time.Time `json:"date_of_match,omitempty"`
}

type UpdateChallengeRequest struct {
	Status      *ChallengeStatus `json:"status,omitempty" binding:"omitempty,oneof=PENDING ACCEPTED DENIED DONE CANCELED"`
	DateOfMatch *time.Time       `json:"date_of_match,omitempty"`
}

type RecordResultRequest struct {
	Winner string `json:"winner" binding:"required"`
	Result Result `json:"result" binding:"omitempty,dive"`
}

// ChallengeFilter narrows challenge listings. Zero values match everything.
type ChallengeFilter struct {
	PlayerID string
	Status   ChallengeStatus
}

// Migrate creates the challenge and match tables with their join tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Match{}, &Challenge{})
}
