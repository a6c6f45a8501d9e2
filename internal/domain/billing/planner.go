package billing

import (
	"context"
	"sort"
	"strings"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/pkg/logger"
)

// Entry is one room's row in a bulk slip run: the room snapshot plus
// the operator's per-period input. Seed pre-fills the snapshot side;
// the operator fills in readings and debt.
type Entry struct {
	Room           RoomInfo    `json:"room"`
	NewElectricity string      `json:"newElectricity"`
	NewWater       string      `json:"newWater"`
	Debt           types.Money `json:"debt"`
}

// ItemResult is the per-room outcome of a bulk submit. Exactly one of
// SlipID or Err is set.
type ItemResult struct {
	RoomID   id.ID
	RoomCode string
	SlipID   id.ID
	Err      error
}

// SlipCreator persists one computed slip draft. The planner stays free
// of storage concerns; the money-slip service implements this.
type SlipCreator interface {
	CreateSlip(ctx context.Context, room RoomInfo, draft Draft, period types.Period) (id.ID, error)
}

// Planner drives create-slips-for-all-rooms runs: seed entries from
// the room catalog, validate the whole batch, then submit room by room.
type Planner struct {
	creator SlipCreator
}

// NewPlanner creates a bulk slip planner.
func NewPlanner(creator SlipCreator) *Planner {
	return &Planner{creator: creator}
}

// Seed builds the initial entry list from room snapshots: one entry
// per room, reading inputs blank, debt zero. Entries come back sorted
// by room code so the operator sees a stable order.
func (p *Planner) Seed(rooms []RoomInfo) []Entry {
	entries := make([]Entry, 0, len(rooms))
	for _, room := range rooms {
		entries = append(entries, Entry{Room: room, Debt: types.Zero()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Room.Code < entries[j].Room.Code
	})
	return entries
}

// Validate checks the whole batch before any slip is created: every
// entry must carry its required readings (new electricity always, new
// water for metered rooms). One invalid entry fails the entire batch;
// the error details name every offending room so the operator can fix
// them in one pass.
func (p *Planner) Validate(entries []Entry) error {
	var invalid []string
	for _, e := range entries {
		if strings.TrimSpace(e.NewElectricity) == "" {
			invalid = append(invalid, e.Room.Code)
			continue
		}
		if e.Room.WaterPolicy == WaterMetered && strings.TrimSpace(e.NewWater) == "" {
			invalid = append(invalid, e.Room.Code)
		}
	}
	if len(invalid) > 0 {
		return apperror.NewValidation("batch has rooms with missing readings").
			WithDetail("rooms", invalid).
			WithDetail("invalidCount", len(invalid))
	}
	return nil
}

// Submit creates one slip per entry, in entry order. Items are
// independent: a failed room is recorded in its result and the run
// moves on, with no rollback of slips already created. The caller
// inspects the results to report partial failures.
func (p *Planner) Submit(ctx context.Context, entries []Entry, period types.Period) []ItemResult {
	log := logger.FromContext(ctx).WithComponent("billing.planner")
	results := make([]ItemResult, 0, len(entries))

	for _, e := range entries {
		result := ItemResult{RoomID: e.Room.RoomID, RoomCode: e.Room.Code}

		draft, err := Build(BuildInput{
			Room:           e.Room,
			NewElectricity: e.NewElectricity,
			NewWater:       e.NewWater,
			Debt:           e.Debt,
		})
		if err == nil {
			result.SlipID, err = p.creator.CreateSlip(ctx, e.Room, draft, period)
		}
		if err != nil {
			result.Err = err
			log.Warnw("bulk slip creation failed",
				"room_code", e.Room.Code,
				"period", period.String(),
				"error", err)
		}
		results = append(results, result)
	}
	return results
}

// FailedCount counts results that carry an error.
func FailedCount(results []ItemResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
