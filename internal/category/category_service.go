package category

import (
	"context"
	"strings"

	"github.com/DhavalSuthar-24/ladder/internal/player"
	"github.com/DhavalSuthar-24/ladder/pkg/apperrors"
	"github.com/DhavalSuthar-24/ladder/pkg/logger"
	"go.uber.org/zap"
)

// PlayerLookup resolves player ids; satisfied by *player.PlayerService.
type PlayerLookup interface {
	GetByID(ctx context.Context, id string) (*player.Player, error)
}

// CategoryService is the category registry.
type CategoryService struct {
	repo    CategoryRepository
	players PlayerLookup
}

func NewCategoryService(repo CategoryRepository, players PlayerLookup) *CategoryService {
	return &CategoryService{repo: repo, players: players}
}

func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.New(apperrors.ValidationFailed).WithMessage("category name must not be blank")
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	if existing != nil {
		return nil, apperrors.Newf(apperrors.AlreadyExists, "Category %s already exists", name).
			WithDetail("name", name)
	}

	c := &Category{Name: name, Description: req.Description}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	logger.Info(ctx, "category created", zap.String("category_id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	if c == nil {
		return nil, apperrors.Newf(apperrors.CategoryNotFound, "Category %s not found", id).
			WithDetail("category_id", id)
	}
	return c, nil
}

// GetByPlayerID returns the player's current category, or nil when the
// player is not registered anywhere.
func (s *CategoryService) GetByPlayerID(ctx context.Context, playerID string) (*Category, error) {
	c, err := s.repo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	return c, nil
}

// AssignPlayer registers the player in the category, leaving any previous one.
func (s *CategoryService) AssignPlayer(ctx context.Context, categoryID, playerID string) (*Category, error) {
	if _, err := s.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		return nil, err
	}
	if err := s.repo.AssignPlayer(ctx, categoryID, playerID); err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	logger.Info(ctx, "player assigned to category",
		zap.String("category_id", categoryID),
		zap.String("player_id", playerID),
	)
	return s.GetByID(ctx, categoryID)
}
