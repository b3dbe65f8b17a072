package category

import (
	"time"

	"github.com/DhavalSuthar-24/ladder/internal/models"
	"github.com/DhavalSuthar-24/ladder/internal/player"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Category is a competitive tier players are registered in.
type Category struct {
	models.BaseModel
	Name        string          `json:"name" gorm:"uniqueIndex;not null"`
	Slug        string          `json:"slug" gorm:"index"`
	Description string          `json:"description"`
	Players     []player.Player `json:"players,omitempty" gorm:"many2many:category_players"`
}

// CategoryPlayer is the registration join row. PlayerID is the primary
// key, so a player sits in at most one category at a time.
type CategoryPlayer struct {
	PlayerID   string `gorm:"primaryKey;type:varchar(36)"`
	CategoryID string `gorm:"index;not null;type:varchar(36)"`
	CreatedAt  time.Time
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Slug = slug.Make(c.Name)
	return nil
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=60"`
	Description string `json:"description" binding:"max=500"`
}

// Migrate registers the join model and creates the category tables.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Category{}, "Players", &CategoryPlayer{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Category{}, &CategoryPlayer{})
}
