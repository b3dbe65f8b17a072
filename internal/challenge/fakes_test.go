package challenge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/ladder/internal/category"
	"github.com/DhavalSuthar-24/ladder/internal/models"
	"github.com/DhavalSuthar-24/ladder/internal/player"
	"github.com/DhavalSuthar-24/ladder/pkg/apperrors"
)

type fakeRepo struct {
	mu         sync.Mutex
	seq        int
	challenges map[string]Challenge
	matches    map[string]Match

	// bumpBeforeUpdate simulates a concurrent writer winning the race.
	bumpBeforeUpdate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		challenges: make(map[string]Challenge),
		matches:    make(map[string]Match),
	}
}

func (f *fakeRepo) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeRepo) CreateChallenge(_ context.Context, c *Challenge) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == "" {
		c.ID = f.nextID("ch")
	}
	stored := *c
	stored.Players = append([]player.Player(nil), c.Players...)
	f.challenges[c.ID] = stored
	return nil
}

func (f *fakeRepo) GetChallengeByID(_ context.Context, id string) (*Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.challenges[id]
	if !ok {
		return nil, nil
	}
	c.Players = append([]player.Player(nil), c.Players...)
	return &c, nil
}

func (f *fakeRepo) GetChallenges(_ context.Context, filter ChallengeFilter) ([]Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Challenge
	for _, c := range f.challenges {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.PlayerID != "" && !c.HasPlayer(filter.PlayerID) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) UpdateChallengeFields(_ context.Context, id string, version int, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.challenges[id]
	if !ok {
		return ErrVersionConflict
	}
	if f.bumpBeforeUpdate {
		c.Version++
	}
	if c.Version != version {
		f.challenges[id] = c
		return ErrVersionConflict
	}
	for k, v := range fields {
		switch k {
		case "status":
			c.Status = v.(ChallengeStatus)
		case "date_of_response":
			t := v.(time.Time)
			c.DateOfResponse = &t
		case "date_of_match":
			t := v.(time.Time)
			c.DateOfMatch = &t
		case "match_id":
			s := v.(string)
			c.MatchID = &s
		default:
			return fmt.Errorf("unexpected field %q", k)
		}
	}
	c.Version++
	f.challenges[id] = c
	return nil
}

func (f *fakeRepo) CreateMatch(_ context.Context, m *Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.ID == "" {
		m.ID = f.nextID("m")
	}
	f.matches[m.ID] = *m
	return nil
}

// WithTransaction restores both maps when txFunc fails.
func (f *fakeRepo) WithTransaction(_ context.Context, txFunc func(ChallengeRepository) error) error {
	f.mu.Lock()
	challenges := make(map[string]Challenge, len(f.challenges))
	for k, v := range f.challenges {
		challenges[k] = v
	}
	matches := make(map[string]Match, len(f.matches))
	for k, v := range f.matches {
		matches[k] = v
	}
	f.mu.Unlock()

	if err := txFunc(f); err != nil {
		f.mu.Lock()
		f.challenges, f.matches = challenges, matches
		f.mu.Unlock()
		return err
	}
	return nil
}

type fakePlayers struct {
	players []player.Player
}

func newFakePlayers(ids ...string) *fakePlayers {
	f := &fakePlayers{}
	for _, id := range ids {
		f.players = append(f.players, player.Player{
			BaseModel: models.BaseModel{ID: id},
			Name:      "Player " + id,
		})
	}
	return f
}

func (f *fakePlayers) ListAll(context.Context) ([]player.Player, error) {
	return f.players, nil
}

func (f *fakePlayers) GetByID(_ context.Context, id string) (*player.Player, error) {
	for i := range f.players {
		if f.players[i].ID == id {
			return &f.players[i], nil
		}
	}
	return nil, apperrors.Newf(apperrors.PlayerNotFound, "Player %s not found", id)
}

type fakeCategories map[string]string

func (f fakeCategories) GetByPlayerID(_ context.Context, playerID string) (*category.Category, error) {
	name, ok := f[playerID]
	if !ok {
		return nil, nil
	}
	return &category.Category{Name: name}, nil
}
