package player

import (
	"github.com/DhavalSuthar-24/ladder/internal/models"
	"gorm.io/gorm"
)

// Player is a registered ladder competitor.
type Player struct {
	models.BaseModel
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string         `json:"phone"`
	PhotoURL  string         `json:"photo_url,omitempty"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// SavePlayerRequest creates a player or renames the one holding the email.
type SavePlayerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,max=32"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url"`
}
