package player

import (
	"context"
	"strings"

	"github.com/DhavalSuthar-24/ladder/pkg/apperrors"
	"github.com/DhavalSuthar-24/ladder/pkg/logger"
	"go.uber.org/zap"
)

// PlayerService is the player directory: registry writes plus the
// lookups the challenge engine relies on.
type PlayerService struct {
	repo PlayerRepository
}

func NewPlayerService(repo PlayerRepository) *PlayerService {
	return &PlayerService{repo: repo}
}

// Save creates a player, or updates the player already registered with the email.
func (s *PlayerService) Save(ctx context.Context, req SavePlayerRequest) (*Player, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}

	if existing != nil {
		existing.Name = req.Name
		if req.Phone != "" {
			existing.Phone = req.Phone
		}
		if req.PhotoURL != "" {
			existing.PhotoURL = req.PhotoURL
		}
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, apperrors.Wrap(err, apperrors.DatabaseError)
		}
		logger.Info(ctx, "player updated", zap.String("player_id", existing.ID))
		return existing, nil
	}

	p := &Player{
		Name:     req.Name,
		Email:    email,
		Phone:    req.Phone,
		PhotoURL: req.PhotoURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	logger.Info(ctx, "player created", zap.String("player_id", p.ID))
	return p, nil
}

// ListAll returns every active player.
func (s *PlayerService) ListAll(ctx context.Context) ([]Player, error) {
	players, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	return players, nil
}

// GetByID fails with PlayerNotFound when the id does not resolve.
func (s *PlayerService) GetByID(ctx context.Context, id string) (*Player, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	if p == nil {
		return nil, apperrors.Newf(apperrors.PlayerNotFound, "Player %s not found", id).
			WithDetail("player_id", id)
	}
	return p, nil
}

func (s *PlayerService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Wrap(err, apperrors.DatabaseError)
	}
	logger.Info(ctx, "player deleted", zap.String("player_id", id))
	return nil
}
