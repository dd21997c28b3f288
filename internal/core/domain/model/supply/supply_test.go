package supply_test

import (
	"fmt"
	"testing"
	"time"

	"wholesale/internal/core/domain/model/supply"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	s, err := supply.ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, supply.Ordered, s)

	s, err = supply.ParseStatus("доставлен")
	require.NoError(t, err)
	assert.Equal(t, supply.Delivered, s)

	s, err = supply.ParseStatus("Canceled")
	require.NoError(t, err)
	assert.Equal(t, supply.Cancelled, s)

	_, err = supply.ParseStatus("lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	testCases := []struct {
		from, to supply.Status
		allowed  bool
	}{
		{supply.Ordered, supply.Shipped, true},
		{supply.Ordered, supply.Cancelled, true},
		{supply.Ordered, supply.Delivered, false},
		{supply.Shipped, supply.Delivered, true},
		{supply.Shipped, supply.Cancelled, true},
		{supply.Shipped, supply.Ordered, false},
		{supply.Delivered, supply.Cancelled, false},
		{supply.Cancelled, supply.Ordered, false},
		{supply.Ordered, supply.Unknown, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s->%s", tc.from, tc.to), func(t *testing.T) {
			next, err := tc.from.TransitionTo(tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
				return
			}
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}

	assert.True(t, supply.Delivered.IsFinal())
	assert.True(t, supply.Cancelled.IsFinal())
	assert.False(t, supply.Shipped.IsFinal())

	_, err := supply.Cancelled.TransitionTo(supply.Delivered)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "cancelled is final")
}

func TestNewLineItem(t *testing.T) {
	li, err := supply.NewLineItem(4, 3, decimal.RequireFromString("12.345"))
	require.NoError(t, err)
	assert.True(t, li.Price().Equal(decimal.RequireFromString("12.35")))
	assert.True(t, li.Total().Equal(decimal.RequireFromString("37.05")))

	_, err = supply.NewLineItem(4, 0, decimal.NewFromInt(1))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = supply.NewLineItem(4, 1, decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = supply.NewLineItem(0, 1, decimal.NewFromInt(1))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSupply(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	items := func() []supply.LineItem {
		a, _ := supply.NewLineItem(1, 10, decimal.RequireFromString("2.50"))
		b, _ := supply.NewLineItem(2, 4, decimal.RequireFromString("7"))
		return []supply.LineItem{a, b}
	}

	t.Run("total cost from supplier prices", func(t *testing.T) {
		s, err := supply.NewSupply(3, 8, date, supply.Ordered, items())
		require.NoError(t, err)
		assert.True(t, s.TotalCost().Equal(decimal.NewFromInt(53)))
		assert.Equal(t, supply.Ordered, s.Status())
		assert.Equal(t, date, s.Date())
	})

	t.Run("rejects empty items and missing supplier", func(t *testing.T) {
		_, err := supply.NewSupply(0, 8, date, supply.Ordered, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "supplierId")
		assert.Contains(t, err.Error(), "lineItems")
	})

	t.Run("rejects missing date", func(t *testing.T) {
		_, err := supply.NewSupply(3, 8, time.Time{}, supply.Ordered, items())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects duplicate product", func(t *testing.T) {
		a, _ := supply.NewLineItem(1, 1, decimal.NewFromInt(1))
		_, err := supply.NewSupply(3, 8, date, supply.Ordered, []supply.LineItem{a, a})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("change status follows adjacency", func(t *testing.T) {
		s, err := supply.NewSupply(3, 8, date, supply.Ordered, items())
		require.NoError(t, err)

		require.NoError(t, s.ChangeStatus(supply.Shipped))
		require.NoError(t, s.ChangeStatus(supply.Delivered))
		require.Error(t, s.ChangeStatus(supply.Cancelled))
	})
}

func TestNewDocument(t *testing.T) {
	_, err := supply.NewDocument(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	d, err := supply.NewDocument(time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, d.AssignID(2))
	require.ErrorIs(t, d.AssignID(3), supply.ErrIDIsAlreadySet)
}
