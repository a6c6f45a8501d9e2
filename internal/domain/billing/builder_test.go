package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
)

func testRoom() RoomInfo {
	return RoomInfo{
		RoomID:           id.New(),
		Code:             "P101",
		RenterName:       "Nguyen Van A",
		OccupantCount:    2,
		RentAmount:       types.NewMoneyFromInt(2000000),
		ElectricityPrice: types.NewMoneyFromInt(3000),
		WaterPrice:       types.Zero(),
		WaterPolicy:      WaterFixed,
		OldElectricity:   dec("100"),
	}
}

func lineAmount(lines []LineItem, c Category) (types.Money, bool) {
	for _, l := range lines {
		if l.Category == c {
			return l.Amount, true
		}
	}
	return types.Zero(), false
}

func TestBuild_RentPlusElectricity(t *testing.T) {
	// 100 -> 150 at 3000/unit plus 2,000,000 rent, fixed water with no
	// fee: exactly two lines, total 2,150,000.
	draft, err := Build(BuildInput{Room: testRoom(), NewElectricity: "150"})
	require.NoError(t, err)

	require.Len(t, draft.Lines, 2)
	room, _ := lineAmount(draft.Lines, CategoryRoom)
	elec, _ := lineAmount(draft.Lines, CategoryElectricity)
	assert.True(t, room.Equal(types.NewMoneyFromInt(2000000)), "room %s", room)
	assert.True(t, elec.Equal(types.NewMoneyFromInt(150000)), "electricity %s", elec)
	assert.True(t, draft.Total.Equal(types.NewMoneyFromInt(2150000)), "total %s", draft.Total)
	assert.True(t, draft.ElectricityConsumption.Equal(dec("50")))
}

func TestBuild_MeteredWaterLine(t *testing.T) {
	room := testRoom()
	room.WaterPolicy = WaterMetered
	room.WaterPrice = types.NewMoneyFromInt(15000)
	room.OldWater = dec("20")

	draft, err := Build(BuildInput{Room: room, NewElectricity: "150", NewWater: "25"})
	require.NoError(t, err)

	water, ok := lineAmount(draft.Lines, CategoryWater)
	require.True(t, ok, "metered room must carry a water line")
	assert.True(t, water.Equal(types.NewMoneyFromInt(75000)), "water %s", water)
	assert.True(t, draft.WaterConsumption.Equal(dec("5")))
}

func TestBuild_FixedWaterHasNoWaterLine(t *testing.T) {
	// A fixed-policy room never gets a water line, even when a water
	// tariff is configured on the room.
	room := testRoom()
	room.WaterPrice = types.NewMoneyFromInt(100000)

	draft, err := Build(BuildInput{Room: room, NewElectricity: "150"})
	require.NoError(t, err)

	_, ok := lineAmount(draft.Lines, CategoryWater)
	assert.False(t, ok, "fixed water policy excludes the water line")
	assert.True(t, draft.Total.Equal(types.NewMoneyFromInt(2150000)), "total %s", draft.Total)
}

func TestBuild_FixedWaterIgnoresReadingInput(t *testing.T) {
	// Fixed-policy rooms have no water readings; stray input must not
	// produce a metered charge.
	draft, err := Build(BuildInput{Room: testRoom(), NewElectricity: "150", NewWater: "999"})
	require.NoError(t, err)

	_, ok := lineAmount(draft.Lines, CategoryWater)
	assert.False(t, ok)
	assert.True(t, draft.WaterConsumption.IsZero())
}

func TestBuild_MissingElectricityReading(t *testing.T) {
	_, err := Build(BuildInput{Room: testRoom()})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestBuild_MissingWaterReadingForMeteredRoom(t *testing.T) {
	room := testRoom()
	room.WaterPolicy = WaterMetered
	room.WaterPrice = types.NewMoneyFromInt(15000)

	_, err := Build(BuildInput{Room: room, NewElectricity: "150"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestBuild_NonNumericReadingBillsZeroConsumption(t *testing.T) {
	draft, err := Build(BuildInput{Room: testRoom(), NewElectricity: "n/a"})
	require.NoError(t, err)

	elec, _ := lineAmount(draft.Lines, CategoryElectricity)
	assert.True(t, elec.IsZero(), "electricity %s", elec)
	assert.True(t, draft.Total.Equal(types.NewMoneyFromInt(2000000)))
}

func TestBuild_DebtKeepsSign(t *testing.T) {
	draft, err := Build(BuildInput{
		Room:           testRoom(),
		NewElectricity: "150",
		Debt:           types.NewMoneyFromInt(-50000),
	})
	require.NoError(t, err)

	debt, ok := lineAmount(draft.Lines, CategoryDebt)
	require.True(t, ok)
	assert.True(t, debt.Equal(types.NewMoneyFromInt(-50000)))
	assert.True(t, draft.Total.Equal(types.NewMoneyFromInt(2100000)))
}

func TestBuild_TotalIsExactLineSum(t *testing.T) {
	room := testRoom()
	room.ParkingFee = types.NewMoneyFromInt(120000)
	room.ServiceFee = types.NewMoneyFromInt(30000)

	draft, err := Build(BuildInput{
		Room:           room,
		NewElectricity: "150",
		Debt:           types.NewMoneyFromInt(200000),
		ExtraCharges:   []LineItem{{Category: CategoryOther, Amount: types.NewMoneyFromInt(45000)}},
	})
	require.NoError(t, err)

	sum := types.Zero()
	for _, l := range draft.Lines {
		sum = sum.Add(l.Amount)
	}
	assert.True(t, draft.Total.Equal(sum), "total %s sum %s", draft.Total, sum)
	assert.True(t, draft.Total.Equal(types.NewMoneyFromInt(2545000)))
}
