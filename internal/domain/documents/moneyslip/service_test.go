package moneyslip

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/internal/domain/billing"
	"github.com/anmds2025/roomify/pkg/numerator"
)

type memoryRepo struct {
	docs  map[id.ID]*MoneySlip
	lines map[id.ID][]Line
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		docs:  make(map[id.ID]*MoneySlip),
		lines: make(map[id.ID][]Line),
	}
}

func (r *memoryRepo) Create(_ context.Context, doc *MoneySlip) error {
	copied := *doc
	r.docs[doc.ID] = &copied
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, docID id.ID) (*MoneySlip, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("money slip", docID)
	}
	copied := *doc
	return &copied, nil
}

func (r *memoryRepo) GetByNumber(_ context.Context, number string) (*MoneySlip, error) {
	for _, doc := range r.docs {
		if doc.Number == number {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("money slip", number)
}

func (r *memoryRepo) Update(_ context.Context, doc *MoneySlip) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return apperror.NewNotFound("money slip", doc.ID)
	}
	copied := *doc
	r.docs[doc.ID] = &copied
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, docID id.ID) error {
	delete(r.docs, docID)
	return nil
}

func (r *memoryRepo) GetLines(_ context.Context, docID id.ID) ([]Line, error) {
	return r.lines[docID], nil
}

func (r *memoryRepo) SaveLines(_ context.Context, docID id.ID, lines []Line) error {
	r.lines[docID] = append([]Line(nil), lines...)
	return nil
}

func (r *memoryRepo) List(_ context.Context, _ ListFilter) (domain.ListResult[*MoneySlip], error) {
	return domain.ListResult[*MoneySlip]{}, nil
}

func (r *memoryRepo) FindByRoomAndPeriod(_ context.Context, roomID id.ID, period types.Period) (*MoneySlip, error) {
	for _, doc := range r.docs {
		if doc.RoomID == roomID && doc.Period.Equal(period) {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("money slip", roomID)
}

func (r *memoryRepo) GetForUpdate(ctx context.Context, docID id.ID) (*MoneySlip, error) {
	return r.GetByID(ctx, docID)
}

type carrierSpy struct {
	roomID      id.ID
	electricity decimal.Decimal
	water       decimal.Decimal
	calls       int
}

func (c *carrierSpy) CarryReadings(_ context.Context, roomID id.ID, electricity, water decimal.Decimal) error {
	c.roomID = roomID
	c.electricity = electricity
	c.water = water
	c.calls++
	return nil
}

type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*Service, *memoryRepo, *carrierSpy) {
	repo := newMemoryRepo()
	carrier := &carrierSpy{}
	svc := NewService(repo, carrier, numerator.NewMock(), noopTxManager{})
	return svc, repo, carrier
}

func testSlip() *MoneySlip {
	slip := NewMoneySlip(id.New(), id.New(), types.Period{Month: 3, Year: 2025})
	slip.RoomCode = "P101"
	slip.RenterName = "Nguyen Van A"
	slip.NewElectricity = decimal.RequireFromString("150")
	slip.OldElectricity = decimal.RequireFromString("100")
	slip.Lines = []Line{
		{LineID: id.New(), LineNo: 1, Category: billing.CategoryRoom, Amount: types.NewMoneyFromInt(2000000)},
		{LineID: id.New(), LineNo: 2, Category: billing.CategoryElectricity, Amount: types.NewMoneyFromInt(150000)},
	}
	slip.TotalAmount = types.NewMoneyFromInt(2150000)
	return slip
}

func TestCreate_AssignsNumber(t *testing.T) {
	svc, repo, _ := newTestService()
	slip := testSlip()

	require.NoError(t, svc.Create(context.Background(), slip))

	assert.NotEmpty(t, slip.Number)
	stored, err := repo.GetByID(context.Background(), slip.ID)
	require.NoError(t, err)
	assert.Equal(t, slip.Number, stored.Number)
}

func TestCreate_TotalMustMatchLineSum(t *testing.T) {
	svc, _, _ := newTestService()
	slip := testSlip()
	slip.TotalAmount = types.NewMoneyFromInt(999)

	err := svc.Create(context.Background(), slip)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCreate_RefusesSecondSlipForRoomAndPeriod(t *testing.T) {
	svc, _, _ := newTestService()
	first := testSlip()
	require.NoError(t, svc.Create(context.Background(), first))

	second := testSlip()
	second.RoomID = first.RoomID
	err := svc.Create(context.Background(), second)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestFinalize_LocksAndCarriesReadings(t *testing.T) {
	svc, repo, carrier := newTestService()
	slip := testSlip()
	require.NoError(t, svc.Create(context.Background(), slip))

	require.NoError(t, svc.Finalize(context.Background(), slip.ID))

	stored, err := repo.GetByID(context.Background(), slip.ID)
	require.NoError(t, err)
	assert.True(t, stored.Finalized)
	assert.Equal(t, 1, carrier.calls)
	assert.Equal(t, slip.RoomID, carrier.roomID)
	assert.True(t, carrier.electricity.Equal(slip.NewElectricity))
}

func TestFinalize_SecondFinalizeFails(t *testing.T) {
	svc, _, carrier := newTestService()
	slip := testSlip()
	require.NoError(t, svc.Create(context.Background(), slip))
	require.NoError(t, svc.Finalize(context.Background(), slip.ID))

	err := svc.Finalize(context.Background(), slip.ID)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeSlipFinalized, appErr.Code)
	assert.Equal(t, 1, carrier.calls)
}

func TestUpdate_FinalizedSlipIsImmutable(t *testing.T) {
	svc, repo, _ := newTestService()
	slip := testSlip()
	require.NoError(t, svc.Create(context.Background(), slip))
	require.NoError(t, svc.Finalize(context.Background(), slip.ID))

	stored, err := svc.GetByID(context.Background(), slip.ID)
	require.NoError(t, err)
	stored.Comment = "edited"
	err = svc.Update(context.Background(), stored)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeSlipFinalized, appErr.Code)

	unchanged, err := repo.GetByID(context.Background(), slip.ID)
	require.NoError(t, err)
	assert.Empty(t, unchanged.Comment)
}

func TestDelete_FinalizedSlipFails(t *testing.T) {
	svc, _, _ := newTestService()
	slip := testSlip()
	require.NoError(t, svc.Create(context.Background(), slip))
	require.NoError(t, svc.Finalize(context.Background(), slip.ID))

	err := svc.Delete(context.Background(), slip.ID)

	require.Error(t, err)
}

func TestRecordPayment(t *testing.T) {
	svc, repo, _ := newTestService()
	slip := testSlip()
	require.NoError(t, svc.Create(context.Background(), slip))

	require.NoError(t, svc.RecordPayment(context.Background(), slip.ID, types.NewMoneyFromInt(2000000)))

	stored, err := repo.GetByID(context.Background(), slip.ID)
	require.NoError(t, err)
	assert.True(t, stored.PaidAmount.Equal(types.NewMoneyFromInt(2000000)))
	assert.True(t, stored.Outstanding().Equal(types.NewMoneyFromInt(150000)))
	assert.False(t, stored.IsSettled())
}

func TestRecordPayment_RejectsNonPositive(t *testing.T) {
	svc, _, _ := newTestService()
	slip := testSlip()
	require.NoError(t, svc.Create(context.Background(), slip))

	err := svc.RecordPayment(context.Background(), slip.ID, types.Zero())

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCreateSlip_FromDraft(t *testing.T) {
	svc, repo, _ := newTestService()
	room := billing.RoomInfo{
		RoomID:           id.New(),
		HomeID:           id.New(),
		Code:             "P201",
		RenterName:       "Tran Thi B",
		RentAmount:       types.NewMoneyFromInt(2500000),
		ElectricityPrice: types.NewMoneyFromInt(3000),
		WaterPolicy:      billing.WaterFixed,
		OldElectricity:   decimal.RequireFromString("200"),
	}
	draft, err := billing.Build(billing.BuildInput{Room: room, NewElectricity: "250"})
	require.NoError(t, err)

	slipID, err := svc.CreateSlip(context.Background(), room, draft, types.Period{Month: 4, Year: 2025})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), slipID)
	require.NoError(t, err)
	assert.Equal(t, "P201", stored.RoomCode)
	assert.Equal(t, room.HomeID, stored.HomeID)
	assert.True(t, stored.TotalAmount.Equal(types.NewMoneyFromInt(2650000)))
	assert.False(t, stored.Finalized)
}
