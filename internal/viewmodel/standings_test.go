package viewmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/matchvision/internal/domain/leaguestanding"
	leaguestandingmock "github.com/riskibarqy/matchvision/internal/mocks/domain/leaguestanding"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

func TestStandings_LoadDefaultsSeasonAndSorts(t *testing.T) {
	t.Parallel()

	repo := leaguestandingmock.NewRepository(t)
	repo.On("GetLeagueStats", mock.Anything, 39, DefaultStandingsSeason).
		Return([]leaguestanding.TeamStanding{standingRow(3, 1), standingRow(1, 2), standingRow(2, 3)}, nil).Once()

	vm := NewStandings(context.Background(), newTestQueue(t), repo, nil)
	vm.Load(39, 0)
	vm.Wait()

	got := vm.Snapshot()
	if got.Season != 2024 || got.LeagueID != 39 {
		t.Fatalf("unexpected league/season %d/%d", got.LeagueID, got.Season)
	}
	for i, want := range []int{1, 2, 3} {
		if got.Rows[i].Rank != want {
			t.Fatalf("row %d: expected rank %d, got %d", i, want, got.Rows[i].Rank)
		}
	}
}

func TestStandings_EmptyIsReported(t *testing.T) {
	t.Parallel()

	repo := leaguestandingmock.NewRepository(t)
	repo.On("GetLeagueStats", mock.Anything, 61, 2023).Return(nil, usecase.ErrEmptyStandings).Once()

	vm := NewStandings(context.Background(), newTestQueue(t), repo, nil)
	vm.Load(61, 2023)
	vm.Wait()

	if got := vm.Snapshot(); got.Err != "Standings vacíos" || got.Loading || len(got.Rows) != 0 {
		t.Fatalf("expected empty standings message, got %+v", got)
	}
}
