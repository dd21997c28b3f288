package delivery_test

import (
	"testing"
	"time"

	"wholesale/internal/core/domain/model/delivery"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc, err := delivery.NewDocument(time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC), true, false)
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), doc.Date())
	assert.True(t, doc.SignatureBase())
	assert.False(t, doc.SignatureCustomer())

	require.NoError(t, doc.AssignID(4))
	assert.Equal(t, kernel.ID(4), doc.ID())
	require.ErrorIs(t, doc.AssignID(5), delivery.ErrIDIsAlreadySet)

	undated, err := delivery.NewDocument(time.Time{}, false, false)
	require.NoError(t, err)
	assert.False(t, undated.Date().IsZero())
}

func TestNewDelivery(t *testing.T) {
	window, err := kernel.NewDateRange(time.Now(), time.Now().AddDate(0, 0, 2))
	require.NoError(t, err)

	d, err := delivery.NewDelivery(3, window)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(3), d.DocumentID())
	assert.Equal(t, window, d.Window())

	_, err = delivery.NewDelivery(0, window)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = delivery.NewDelivery(3, kernel.DateRange{})
	require.ErrorIs(t, err, kernel.ErrDateRangeIsNotConstructed)

	var zero *delivery.Delivery
	require.ErrorIs(t, zero.Validate(), delivery.ErrDeliveryIsNotConstructed)
}
