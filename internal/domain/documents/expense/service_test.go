package expense

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/pkg/numerator"
)

type memoryRepo struct {
	docs map[id.ID]*Expense
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{docs: make(map[id.ID]*Expense)}
}

func (r *memoryRepo) Create(_ context.Context, doc *Expense) error {
	copied := *doc
	r.docs[doc.ID] = &copied
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, docID id.ID) (*Expense, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("expense", docID)
	}
	copied := *doc
	return &copied, nil
}

func (r *memoryRepo) GetByNumber(_ context.Context, number string) (*Expense, error) {
	for _, doc := range r.docs {
		if doc.Number == number {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("expense", number)
}

func (r *memoryRepo) Update(_ context.Context, doc *Expense) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return apperror.NewNotFound("expense", doc.ID)
	}
	copied := *doc
	r.docs[doc.ID] = &copied
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, docID id.ID) error {
	delete(r.docs, docID)
	return nil
}

func (r *memoryRepo) List(_ context.Context, _ ListFilter) (domain.ListResult[*Expense], error) {
	return domain.ListResult[*Expense]{}, nil
}

func (r *memoryRepo) GetForUpdate(ctx context.Context, docID id.ID) (*Expense, error) {
	return r.GetByID(ctx, docID)
}

type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*Service, *memoryRepo) {
	repo := newMemoryRepo()
	svc := NewService(repo, numerator.NewMock(), noopTxManager{})
	return svc, repo
}

func testExpense() *Expense {
	doc := NewExpense(id.New(), types.Period{Month: 3, Year: 2025}, KindMaintenance, types.NewMoneyFromInt(500000))
	doc.Description = "Pump repair"
	return doc
}

func TestCreate_AssignsNumber(t *testing.T) {
	svc, repo := newTestService()
	doc := testExpense()

	require.NoError(t, svc.Create(context.Background(), doc))

	assert.NotEmpty(t, doc.Number)
	stored, err := repo.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Number, stored.Number)
}

func TestCreate_RejectsInvalid(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*Expense)
	}{
		{"unknown kind", func(e *Expense) { e.Kind = "travel" }},
		{"blank description", func(e *Expense) { e.Description = "  " }},
		{"zero amount", func(e *Expense) { e.Amount = types.Zero() }},
		{"negative amount", func(e *Expense) { e.Amount = types.NewMoneyFromInt(-1000) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testExpense()
			tt.mutate(doc)

			err := svc.Create(context.Background(), doc)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestFinalize_LocksDocument(t *testing.T) {
	svc, repo := newTestService()
	doc := testExpense()
	require.NoError(t, svc.Create(context.Background(), doc))

	require.NoError(t, svc.Finalize(context.Background(), doc.ID))

	stored, err := repo.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.True(t, stored.Finalized)

	// Second finalize hits the immutability guard.
	assert.Error(t, svc.Finalize(context.Background(), doc.ID))

	stored.Description = "changed"
	assert.Error(t, svc.Update(context.Background(), stored))
}

func TestDelete_RefusesFinalized(t *testing.T) {
	svc, repo := newTestService()
	doc := testExpense()
	require.NoError(t, svc.Create(context.Background(), doc))
	require.NoError(t, svc.Finalize(context.Background(), doc.ID))

	require.Error(t, svc.Delete(context.Background(), doc.ID))

	_, err := repo.GetByID(context.Background(), doc.ID)
	assert.NoError(t, err, "finalized expense must survive a delete attempt")
}

func TestHooks_RunAroundCreate(t *testing.T) {
	svc, _ := newTestService()

	var stamped, logged bool
	svc.Hooks().OnBeforeCreate(func(_ context.Context, e *Expense) error {
		stamped = true
		e.CreatedBy = "seed"
		return nil
	})
	svc.Hooks().OnAfterCreate(func(_ context.Context, _ *Expense) error {
		logged = true
		return nil
	})

	doc := testExpense()
	require.NoError(t, svc.Create(context.Background(), doc))
	assert.True(t, stamped)
	assert.True(t, logged)
	assert.Equal(t, "seed", doc.CreatedBy)
}
