package challenge

import (
	"context"
	"errors"
	"time"

	"github.com/DhavalSuthar-24/ladder/internal/category"
	"github.com/DhavalSuthar-24/ladder/internal/player"
	"github.com/DhavalSuthar-24/ladder/pkg/apperrors"
	"github.com/DhavalSuthar-24/ladder/pkg/logger"
	"go.uber.org/zap"
)

// PlayerDirectory is the source of truth for player existence.
type PlayerDirectory interface {
	ListAll(ctx context.Context) ([]player.Player, error)
	GetByID(ctx context.Context, id string) (*player.Player, error)
}

// CategoryRegistry maps a player to their current category.
type CategoryRegistry interface {
	GetByPlayerID(ctx context.Context, playerID string) (*category.Category, error)
}

// ChallengeService is the challenge lifecycle engine. Every mutation runs
// under a per-challenge lock and a versioned update.
type ChallengeService struct {
	repo       ChallengeRepository
	players    PlayerDirectory
	categories CategoryRegistry
	locker     Locker
	now        func() time.Time
}

func NewChallengeService(repo ChallengeRepository, players PlayerDirectory, categories CategoryRegistry, locker Locker) *ChallengeService {
	if locker == nil {
		locker = NewLocalLocker()
	}
	return &ChallengeService{
		repo:       repo,
		players:    players,
		categories: categories,
		locker:     locker,
		now:        time.Now,
	}
}

// Create validates participants in order: every id must be a known player,
// the challenger must be one of them, and the challenger must have a
// category. The category is copied onto the challenge and never refreshed.
func (s *ChallengeService) Create(ctx context.Context, req CreateChallengeRequest) (*Challenge, error) {
	known, err := s.players.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	byID := make(map[string]player.Player, len(known))
	for _, p := range known {
		byID[p.ID] = p
	}

	participants := make([]player.Player, 0, len(req.Players))
	seen := make(map[string]bool, len(req.Players))
	for _, id := range req.Players {
		if seen[id] {
			continue
		}
		seen[id] = true
		p, ok := byID[id]
		if !ok {
			logger.Warn(ctx, "challenge rejected: unknown player", zap.String("player_id", id))
			return nil, apperrors.Newf(apperrors.UnknownPlayer, "The id %s is not a player", id).
				WithDetail("player_id", id)
		}
		participants = append(participants, p)
	}

	if len(participants) < 2 {
		return nil, apperrors.New(apperrors.ValidationFailed).
			WithMessage("A challenge needs at least two distinct players").
			WithDetail("players", req.Players)
	}

	if !seen[req.Challenger] {
		logger.Warn(ctx, "challenge rejected: challenger not a participant", zap.String("challenger", req.Challenger))
		return nil, apperrors.New(apperrors.ChallengerNotParticipant).
			WithDetail("challenger", req.Challenger)
	}

	cat, err := s.categories.GetByPlayerID(ctx, req.Challenger)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	if cat == nil {
		logger.Warn(ctx, "challenge rejected: challenger has no category", zap.String("challenger", req.Challenger))
		return nil, apperrors.New(apperrors.ChallengerWithoutCategory).
			WithDetail("challenger", req.Challenger)
	}

	c := &Challenge{
		ChallengerID:  req.Challenger,
		Players:       participants,
		Category:      cat.Name,
		Status:        StatusPending,
		DateOfRequest: s.now(),
		DateOfMatch:   req.DateOfMatch,
		Version:       1,
	}
	if err := s.repo.CreateChallenge(ctx, c); err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}

	logger.Info(ctx, "challenge created",
		zap.String("challenge_id", c.ID),
		zap.String("challenger", c.ChallengerID),
		zap.String("category", c.Category),
	)
	return s.Get(ctx, c.ID)
}

// List returns every challenge, optionally only those in one status.
func (s *ChallengeService) List(ctx context.Context, status ChallengeStatus) ([]Challenge, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.Newf(apperrors.ValidationFailed, "Unknown challenge status %s", status).
			WithDetail("status", string(status))
	}
	challenges, err := s.repo.GetChallenges(ctx, ChallengeFilter{Status: status})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	return challenges, nil
}

// ListByPlayer returns the challenges the player takes part in.
func (s *ChallengeService) ListByPlayer(ctx context.Context, playerID string) ([]Challenge, error) {
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		return nil, err
	}
	challenges, err := s.repo.GetChallenges(ctx, ChallengeFilter{PlayerID: playerID})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	return challenges, nil
}

func (s *ChallengeService) Get(ctx context.Context, id string) (*Challenge, error) {
	c, err := s.repo.GetChallengeByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError)
	}
	if c == nil {
		return nil, apperrors.Newf(apperrors.ChallengeNotFound, "Challenge %s not found", id).
			WithDetail("challenge_id", id)
	}
	return c, nil
}

// Update moves the challenge to a new status and/or reschedules it.
// A status change always restamps the response date.
func (s *ChallengeService) Update(ctx context.Context, id string, req UpdateChallengeRequest) error {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Status == nil && req.DateOfMatch == nil {
		return apperrors.New(apperrors.InvalidParams).WithMessage("Nothing to update")
	}
	if c.Status.IsTerminal() {
		logger.Warn(ctx, "update rejected: challenge closed",
			zap.String("challenge_id", id),
			zap.String("status", string(c.Status)),
		)
		return apperrors.Newf(apperrors.ChallengeClosed, "Challenge %s is %s", id, c.Status).
			WithDetail("challenge_id", id).
			WithDetail("status", string(c.Status))
	}

	fields := make(map[string]interface{}, 3)
	if req.Status != nil {
		next := *req.Status
		if next == StatusDone {
			return apperrors.New(apperrors.InvalidTransition).
				WithMessage("A challenge is closed as DONE by recording its result").
				WithDetail("from", string(c.Status)).
				WithDetail("to", string(next))
		}
		if err := ValidateTransition(c.Status, next); err != nil {
			logger.Warn(ctx, "update rejected: illegal transition",
				zap.String("challenge_id", id),
				zap.String("from", string(c.Status)),
				zap.String("to", string(next)),
			)
			return err
		}
		fields["status"] = next
		fields["date_of_response"] = s.now()
	}
	if req.DateOfMatch != nil {
		fields["date_of_match"] = *req.DateOfMatch
	}

	if err := s.updateFields(ctx, c, fields); err != nil {
		return err
	}
	logger.Info(ctx, "challenge updated",
		zap.String("challenge_id", id),
		zap.Any("fields", fields),
	)
	return nil
}

// RecordResult stores the match and closes the challenge as DONE in one
// transaction. A challenge can be resolved only once.
func (s *ChallengeService) RecordResult(ctx context.Context, id string, req RecordResultRequest) (*Match, error) {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(c.Status, StatusDone); err != nil {
		logger.Warn(ctx, "result rejected: challenge not open",
			zap.String("challenge_id", id),
			zap.String("status", string(c.Status)),
		)
		return nil, err
	}
	if !c.HasPlayer(req.Winner) {
		logger.Warn(ctx, "result rejected: winner not a participant",
			zap.String("challenge_id", id),
			zap.String("winner", req.Winner),
		)
		return nil, apperrors.New(apperrors.WinnerNotParticipant).
			WithDetail("winner", req.Winner)
	}

	match := &Match{
		ChallengeID: c.ID,
		Category:    c.Category,
		Players:     c.Players,
		WinnerID:    req.Winner,
		Result:      req.Result,
	}
	err = s.repo.WithTransaction(ctx, func(tx ChallengeRepository) error {
		if err := tx.CreateMatch(ctx, match); err != nil {
			return err
		}
		return tx.UpdateChallengeFields(ctx, c.ID, c.Version, map[string]interface{}{
			"status":   StatusDone,
			"match_id": match.ID,
		})
	})
	if err != nil {
		return nil, s.translateUpdateError(err, id)
	}

	logger.Info(ctx, "challenge result recorded",
		zap.String("challenge_id", id),
		zap.String("match_id", match.ID),
		zap.String("winner", req.Winner),
	)
	return match, nil
}

// Cancel is the soft delete of a challenge.
func (s *ChallengeService) Cancel(ctx context.Context, id string) error {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := ValidateTransition(c.Status, StatusCanceled); err != nil {
		logger.Warn(ctx, "cancel rejected",
			zap.String("challenge_id", id),
			zap.String("status", string(c.Status)),
		)
		return err
	}
	if err := s.updateFields(ctx, c, map[string]interface{}{"status": StatusCanceled}); err != nil {
		return err
	}
	logger.Info(ctx, "challenge canceled", zap.String("challenge_id", id))
	return nil
}

func (s *ChallengeService) lock(ctx context.Context, id string) (func(), error) {
	unlock, err := s.locker.Lock(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLockNotAcquired) {
			return nil, apperrors.Newf(apperrors.ChallengeLocked, "Challenge %s is being modified", id).
				WithDetail("challenge_id", id)
		}
		return nil, apperrors.Wrap(err, apperrors.InternalServerError)
	}
	return unlock, nil
}

func (s *ChallengeService) updateFields(ctx context.Context, c *Challenge, fields map[string]interface{}) error {
	if err := s.repo.UpdateChallengeFields(ctx, c.ID, c.Version, fields); err != nil {
		return s.translateUpdateError(err, c.ID)
	}
	return nil
}

func (s *ChallengeService) translateUpdateError(err error, id string) error {
	if errors.Is(err, ErrVersionConflict) {
		return apperrors.Newf(apperrors.StaleChallenge, "Challenge %s was modified concurrently", id).
			WithDetail("challenge_id", id)
	}
	return apperrors.Wrap(err, apperrors.DatabaseError)
}
