package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
)

type stubCreator struct {
	created []string
	failFor map[string]error
}

func (s *stubCreator) CreateSlip(_ context.Context, room RoomInfo, _ Draft, _ types.Period) (id.ID, error) {
	if err, ok := s.failFor[room.Code]; ok {
		return id.Nil(), err
	}
	s.created = append(s.created, room.Code)
	return id.New(), nil
}

func plannerRooms() []RoomInfo {
	r1 := testRoom()
	r1.Code = "P102"
	r2 := testRoom()
	r2.Code = "P101"
	r3 := testRoom()
	r3.Code = "P103"
	r3.WaterPolicy = WaterMetered
	r3.WaterPrice = types.NewMoneyFromInt(15000)
	return []RoomInfo{r1, r2, r3}
}

func TestPlannerSeed_SortedBlankEntries(t *testing.T) {
	p := NewPlanner(&stubCreator{})

	entries := p.Seed(plannerRooms())

	require.Len(t, entries, 3)
	assert.Equal(t, "P101", entries[0].Room.Code)
	assert.Equal(t, "P102", entries[1].Room.Code)
	assert.Equal(t, "P103", entries[2].Room.Code)
	for _, e := range entries {
		assert.Empty(t, e.NewElectricity)
		assert.Empty(t, e.NewWater)
		assert.True(t, e.Debt.IsZero())
	}
}

func TestPlannerValidate_AllOrNothing(t *testing.T) {
	p := NewPlanner(&stubCreator{})
	entries := p.Seed(plannerRooms())
	entries[0].NewElectricity = "150"
	// P102 left blank, P103 missing its water reading.
	entries[2].NewElectricity = "200"

	err := p.Validate(entries)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.ElementsMatch(t, []string{"P102", "P103"}, appErr.Details["rooms"])
}

func TestPlannerValidate_AllFilled(t *testing.T) {
	p := NewPlanner(&stubCreator{})
	entries := p.Seed(plannerRooms())
	for i := range entries {
		entries[i].NewElectricity = "150"
		entries[i].NewWater = "30"
	}

	assert.NoError(t, p.Validate(entries))
}

func TestPlannerSubmit_PerItemResults(t *testing.T) {
	creator := &stubCreator{
		failFor: map[string]error{"P102": errors.New("insert failed")},
	}
	p := NewPlanner(creator)
	entries := p.Seed(plannerRooms())
	for i := range entries {
		entries[i].NewElectricity = "150"
		entries[i].NewWater = "30"
	}

	results := p.Submit(context.Background(), entries, period(3, 2025))

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.False(t, id.IsNil(results[0].SlipID))
	assert.Error(t, results[1].Err)
	assert.True(t, id.IsNil(results[1].SlipID))
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 1, FailedCount(results))
	// The failure in the middle does not stop or roll back the run.
	assert.Equal(t, []string{"P101", "P103"}, creator.created)
}

func TestPlannerSubmit_AllSucceed(t *testing.T) {
	creator := &stubCreator{}
	p := NewPlanner(creator)
	entries := p.Seed(plannerRooms()[:2])
	for i := range entries {
		entries[i].NewElectricity = "150"
	}

	results := p.Submit(context.Background(), entries, period(3, 2025))

	require.Len(t, results, 2)
	assert.Equal(t, 0, FailedCount(results))
	for _, r := range results {
		assert.False(t, id.IsNil(r.SlipID))
	}
}
