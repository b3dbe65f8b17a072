package challenge

import (
	"context"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/ladder/pkg/apperrors"
)

var fixedNow = time.Date(2024, 5, 4, 10, 0, 0, 0, time.UTC)

type serviceFixture struct {
	repo    *fakeRepo
	locker  *LocalLocker
	service *ChallengeService
}

func newServiceFixture() serviceFixture {
	repo := newFakeRepo()
	locker := NewLocalLocker()
	svc := NewChallengeService(repo, newFakePlayers("A", "B", "C"), fakeCategories{"A": "C1", "B": "C1"}, locker)
	svc.now = func() time.Time { return fixedNow }
	return serviceFixture{repo: repo, locker: locker, service: svc}
}

func (f serviceFixture) create(t *testing.T) *Challenge {
	t.Helper()
	c, err := f.service.Create(context.Background(), CreateChallengeRequest{
		Challenger: "A",
		Players:    []string{"A", "B"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return c
}

func (f serviceFixture) setStatus(t *testing.T, id string, status ChallengeStatus) {
	t.Helper()
	c := f.repo.challenges[id]
	c.Status = status
	f.repo.challenges[id] = c
}

func statusPtr(s ChallengeStatus) *ChallengeStatus { return &s }

func TestCreateChallengeRejects(t *testing.T) {
	cases := []struct {
		name       string
		challenger string
		players    []string
		code       apperrors.ErrorCode
		detailKey  string
		detail     interface{}
	}{
		{"unknown player", "A", []string{"A", "Z"}, apperrors.UnknownPlayer, "player_id", "Z"},
		{"unknown player before membership", "X", []string{"B", "Z"}, apperrors.UnknownPlayer, "player_id", "Z"},
		{"challenger not a participant", "C", []string{"A", "B"}, apperrors.ChallengerNotParticipant, "challenger", "C"},
		{"challenger without category", "C", []string{"C", "A"}, apperrors.ChallengerWithoutCategory, "challenger", "C"},
		{"duplicate ids collapse below two", "A", []string{"A", "A"}, apperrors.ValidationFailed, "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture()
			_, err := f.service.Create(context.Background(), CreateChallengeRequest{
				Challenger: tc.challenger,
				Players:    tc.players,
			})
			if !apperrors.Is(err, tc.code) {
				t.Fatalf("got %v, want code %d", err, tc.code)
			}
			if tc.detailKey != "" {
				if got := apperrors.GetError(err).Details[tc.detailKey]; got != tc.detail {
					t.Errorf("detail %s = %v, want %v", tc.detailKey, got, tc.detail)
				}
			}
			if len(f.repo.challenges) != 0 {
				t.Errorf("expected nothing persisted, got %d challenges", len(f.repo.challenges))
			}
		})
	}
}

func TestCreateChallenge(t *testing.T) {
	f := newServiceFixture()
	matchDay := fixedNow.Add(48 * time.Hour)

	c, err := f.service.Create(context.Background(), CreateChallengeRequest{
		Challenger:  "A",
		Players:     []string{"A", "B", "A"},
		DateOfMatch: &matchDay,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected an id")
	}
	if c.Status != StatusPending || c.Category != "C1" || c.Version != 1 {
		t.Errorf("unexpected challenge: status=%s category=%s version=%d", c.Status, c.Category, c.Version)
	}
	if !c.DateOfRequest.Equal(fixedNow) {
		t.Errorf("date of request = %v, want %v", c.DateOfRequest, fixedNow)
	}
	if c.DateOfResponse != nil || c.MatchID != nil {
		t.Errorf("new challenge should have no response or match: %+v", c)
	}
	if c.DateOfMatch == nil || !c.DateOfMatch.Equal(matchDay) {
		t.Errorf("date of match = %v, want %v", c.DateOfMatch, matchDay)
	}
	if len(c.Players) != 2 || c.ChallengerID != "A" {
		t.Errorf("players = %v, challenger = %s", c.Players, c.ChallengerID)
	}
}

func TestCategoryIsSnapshotAtCreation(t *testing.T) {
	f := newServiceFixture()
	categories := fakeCategories{"A": "C1"}
	f.service.categories = categories
	c := f.create(t)

	categories["A"] = "C2"
	got, err := f.service.Get(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Category != "C1" {
		t.Fatalf("category = %s, want the snapshot C1", got.Category)
	}
}

func TestUpdateChallenge(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture()
		err := f.service.Update(ctx, "missing", UpdateChallengeRequest{Status: statusPtr(StatusAccepted)})
		if !apperrors.Is(err, apperrors.ChallengeNotFound) {
			t.Fatalf("got %v, want ChallengeNotFound", err)
		}
	})

	t.Run("status stamps response date", func(t *testing.T) {
		f := newServiceFixture()
		c := f.create(t)
		if err := f.service.Update(ctx, c.ID, UpdateChallengeRequest{Status: statusPtr(StatusAccepted)}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		got := f.repo.challenges[c.ID]
		if got.Status != StatusAccepted {
			t.Errorf("status = %s, want ACCEPTED", got.Status)
		}
		if got.DateOfResponse == nil || !got.DateOfResponse.Equal(fixedNow) {
			t.Errorf("date of response = %v, want %v", got.DateOfResponse, fixedNow)
		}
		if got.Version != 2 {
			t.Errorf("version = %d, want 2", got.Version)
		}
	})

	t.Run("date of match only", func(t *testing.T) {
		f := newServiceFixture()
		c := f.create(t)
		day := fixedNow.Add(72 * time.Hour)
		if err := f.service.Update(ctx, c.ID, UpdateChallengeRequest{DateOfMatch: &day}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		got := f.repo.challenges[c.ID]
		if got.Status != StatusPending || got.DateOfResponse != nil {
			t.Errorf("only the match date should change: %+v", got)
		}
		if got.DateOfMatch == nil || !got.DateOfMatch.Equal(day) {
			t.Errorf("date of match = %v, want %v", got.DateOfMatch, day)
		}
	})

	t.Run("response date overwritten on later status", func(t *testing.T) {
		f := newServiceFixture()
		c := f.create(t)
		if err := f.service.Update(ctx, c.ID, UpdateChallengeRequest{Status: statusPtr(StatusAccepted)}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		later := fixedNow.Add(time.Hour)
		f.service.now = func() time.Time { return later }
		if err := f.service.Update(ctx, c.ID, UpdateChallengeRequest{Status: statusPtr(StatusCanceled)}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got := f.repo.challenges[c.ID].DateOfResponse; got == nil || !got.Equal(later) {
			t.Errorf("date of response = %v, want %v", got, later)
		}
	})

	rejects := []struct {
		name   string
		status ChallengeStatus
		req    UpdateChallengeRequest
		code   apperrors.ErrorCode
	}{
		{"empty update", StatusPending, UpdateChallengeRequest{}, apperrors.InvalidParams},
		{"done only through result", StatusAccepted, UpdateChallengeRequest{Status: statusPtr(StatusDone)}, apperrors.InvalidTransition},
		{"illegal transition", StatusAccepted, UpdateChallengeRequest{Status: statusPtr(StatusDenied)}, apperrors.InvalidTransition},
		{"back to pending", StatusAccepted, UpdateChallengeRequest{Status: statusPtr(StatusPending)}, apperrors.InvalidTransition},
		{"closed after done", StatusDone, UpdateChallengeRequest{Status: statusPtr(StatusAccepted)}, apperrors.ChallengeClosed},
		{"closed after cancel", StatusCanceled, UpdateChallengeRequest{DateOfMatch: &fixedNow}, apperrors.ChallengeClosed},
		{"closed after deny", StatusDenied, UpdateChallengeRequest{Status: statusPtr(StatusAccepted)}, apperrors.ChallengeClosed},
	}
	for _, tc := range rejects {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture()
			c := f.create(t)
			f.setStatus(t, c.ID, tc.status)
			before := f.repo.challenges[c.ID]

			err := f.service.Update(ctx, c.ID, tc.req)
			if !apperrors.Is(err, tc.code) {
				t.Fatalf("got %v, want code %d", err, tc.code)
			}
			after := f.repo.challenges[c.ID]
			if after.Version != before.Version || after.Status != before.Status {
				t.Errorf("challenge changed on rejected update: %+v", after)
			}
		})
	}
}

func TestRecordResult(t *testing.T) {
	ctx := context.Background()

	t.Run("winner must be a participant", func(t *testing.T) {
		f := newServiceFixture()
		c := f.create(t)
		_, err := f.service.RecordResult(ctx, c.ID, RecordResultRequest{Winner: "C"})
		if !apperrors.Is(err, apperrors.WinnerNotParticipant) {
			t.Fatalf("got %v, want WinnerNotParticipant", err)
		}
		if got := apperrors.GetError(err).Details["winner"]; got != "C" {
			t.Errorf("winner detail = %v, want C", got)
		}
		if len(f.repo.matches) != 0 {
			t.Errorf("expected no match, got %d", len(f.repo.matches))
		}
		if got := f.repo.challenges[c.ID]; got.Status != StatusPending || got.Version != 1 {
			t.Errorf("challenge changed: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture()
		_, err := f.service.RecordResult(ctx, "missing", RecordResultRequest{Winner: "A"})
		if !apperrors.Is(err, apperrors.ChallengeNotFound) {
			t.Fatalf("got %v, want ChallengeNotFound", err)
		}
	})

	t.Run("closes challenge once", func(t *testing.T) {
		f := newServiceFixture()
		c := f.create(t)
		if err := f.service.Update(ctx, c.ID, UpdateChallengeRequest{Status: statusPtr(StatusAccepted)}); err != nil {
			t.Fatalf("Update: %v", err)
		}

		m, err := f.service.RecordResult(ctx, c.ID, RecordResultRequest{
			Winner: "B",
			Result: Result{{Set: "6-4"}, {Set: "7-5"}},
		})
		if err != nil {
			t.Fatalf("RecordResult: %v", err)
		}
		got := f.repo.challenges[c.ID]
		if got.Status != StatusDone || got.MatchID == nil || *got.MatchID != m.ID {
			t.Fatalf("challenge not closed with match: %+v", got)
		}
		if m.Category != "C1" || len(m.Players) != 2 || m.WinnerID != "B" || len(m.Result) != 2 {
			t.Errorf("unexpected match: %+v", m)
		}

		_, err = f.service.RecordResult(ctx, c.ID, RecordResultRequest{Winner: "A"})
		if !apperrors.Is(err, apperrors.InvalidTransition) {
			t.Fatalf("second result: got %v, want InvalidTransition", err)
		}
		if len(f.repo.matches) != 1 {
			t.Errorf("matches = %d, want exactly 1", len(f.repo.matches))
		}
	})

	t.Run("stale version rolls back match", func(t *testing.T) {
		f := newServiceFixture()
		c := f.create(t)
		f.repo.bumpBeforeUpdate = true

		_, err := f.service.RecordResult(ctx, c.ID, RecordResultRequest{Winner: "A"})
		if !apperrors.Is(err, apperrors.StaleChallenge) {
			t.Fatalf("got %v, want StaleChallenge", err)
		}
		if len(f.repo.matches) != 0 {
			t.Errorf("match should be rolled back, got %d", len(f.repo.matches))
		}
	})
}

func TestCancelChallenge(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		from ChallengeStatus
		code apperrors.ErrorCode
	}{
		{StatusPending, apperrors.Success},
		{StatusAccepted, apperrors.Success},
		{StatusDone, apperrors.InvalidTransition},
		{StatusDenied, apperrors.InvalidTransition},
		{StatusCanceled, apperrors.InvalidTransition},
	}
	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			f := newServiceFixture()
			c := f.create(t)
			f.setStatus(t, c.ID, tc.from)

			err := f.service.Cancel(ctx, c.ID)
			if got := apperrors.GetCode(err); got != tc.code {
				t.Fatalf("got %v, want code %d", err, tc.code)
			}
			if tc.code == apperrors.Success && f.repo.challenges[c.ID].Status != StatusCanceled {
				t.Errorf("status = %s, want CANCELED", f.repo.challenges[c.ID].Status)
			}
		})
	}

	f := newServiceFixture()
	if err := f.service.Cancel(ctx, "missing"); !apperrors.Is(err, apperrors.ChallengeNotFound) {
		t.Fatalf("got %v, want ChallengeNotFound", err)
	}
}

func TestMutationsFailWhileLocked(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	c := f.create(t)

	unlock, err := f.locker.Lock(ctx, c.ID)
	if err != nil {
		t.Fatalf("Lock: %v", err)
	}

	if err := f.service.Cancel(ctx, c.ID); !apperrors.Is(err, apperrors.ChallengeLocked) {
		t.Fatalf("Cancel: got %v, want ChallengeLocked", err)
	}
	if err := f.service.Update(ctx, c.ID, UpdateChallengeRequest{Status: statusPtr(StatusAccepted)}); !apperrors.Is(err, apperrors.ChallengeLocked) {
		t.Fatalf("Update: got %v, want ChallengeLocked", err)
	}
	if _, err := f.service.RecordResult(ctx, c.ID, RecordResultRequest{Winner: "A"}); !apperrors.Is(err, apperrors.ChallengeLocked) {
		t.Fatalf("RecordResult: got %v, want ChallengeLocked", err)
	}

	unlock()
	if err := f.service.Cancel(ctx, c.ID); err != nil {
		t.Fatalf("Cancel after unlock: %v", err)
	}
}

func TestStaleUpdate(t *testing.T) {
	f := newServiceFixture()
	c := f.create(t)
	f.repo.bumpBeforeUpdate = true

	err := f.service.Update(context.Background(), c.ID, UpdateChallengeRequest{Status: statusPtr(StatusAccepted)})
	if !apperrors.Is(err, apperrors.StaleChallenge) {
		t.Fatalf("got %v, want StaleChallenge", err)
	}
}

func TestListChallenges(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	first := f.create(t)
	f.create(t)
	f.setStatus(t, first.ID, StatusAccepted)

	all, err := f.service.List(ctx, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("List: %v, %d challenges", err, len(all))
	}
	accepted, err := f.service.List(ctx, StatusAccepted)
	if err != nil || len(accepted) != 1 || accepted[0].ID != first.ID {
		t.Fatalf("List(ACCEPTED): %v, %+v", err, accepted)
	}
	if _, err := f.service.List(ctx, "PLAYED"); !apperrors.Is(err, apperrors.ValidationFailed) {
		t.Fatalf("got %v, want ValidationFailed", err)
	}

	byPlayer, err := f.service.ListByPlayer(ctx, "B")
	if err != nil || len(byPlayer) != 2 {
		t.Fatalf("ListByPlayer(B): %v, %d challenges", err, len(byPlayer))
	}
	none, err := f.service.ListByPlayer(ctx, "C")
	if err != nil || len(none) != 0 {
		t.Fatalf("ListByPlayer(C): %v, %d challenges", err, len(none))
	}
	if _, err := f.service.ListByPlayer(ctx, "Z"); !apperrors.Is(err, apperrors.PlayerNotFound) {
		t.Fatalf("got %v, want PlayerNotFound", err)
	}
}
