package contract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
)

func testContract() *Contract {
	c := NewContract(id.New(), id.New(), id.New(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	c.RenterName = "Nguyen Van A"
	c.Deposit = types.NewMoneyFromInt(2000000)
	c.MonthlyRent = types.NewMoneyFromInt(2000000)
	return c
}

func TestContractValidate(t *testing.T) {
	require.NoError(t, testContract().Validate(context.Background()))
}

func TestContractValidate_MissingRoom(t *testing.T) {
	c := testContract()
	c.RoomID = id.Nil()

	err := c.Validate(context.Background())

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestContractEnd(t *testing.T) {
	c := testContract()
	when := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, c.End(when, types.NewMoneyFromInt(1500000)))

	assert.Equal(t, StatusEnded, c.Status)
	require.NotNil(t, c.EndDate)
	assert.True(t, c.DepositReturned.Equal(types.NewMoneyFromInt(1500000)))
	assert.False(t, c.IsActive())
}

func TestContractEnd_Twice(t *testing.T) {
	c := testContract()
	when := time.Now().UTC()
	require.NoError(t, c.End(when, types.Zero()))

	err := c.End(when, types.Zero())

	require.Error(t, err)
}

func TestContractEnd_ReturnExceedsDeposit(t *testing.T) {
	c := testContract()

	err := c.End(time.Now().UTC(), types.NewMoneyFromInt(3000000))

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, StatusActive, c.Status)
}
