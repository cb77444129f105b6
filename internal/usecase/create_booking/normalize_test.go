package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/pkg/ptr"
	"github.com/layananku/LSP-BookingGateway/pkg/types"
)

func TestNormalize_Psychology(t *testing.T) {
	booking, err := normalize(psychologyRequest(), testSession(), referenceNow, nopLogger{})

	require.NoError(t, err)
	require.NotNil(t, booking.ProviderReferenceID)
	assert.Equal(t, int64(5), *booking.ProviderReferenceID)
	assert.Nil(t, booking.ItemReferenceID)
	require.NotNil(t, booking.DurationMinutes)
	assert.Equal(t, 180, *booking.DurationMinutes)
	assert.Equal(t, "10:00", booking.ScheduledTime.String())
	assert.Equal(t, "2025-11-10", booking.ScheduledDate)
	assert.Equal(t, float64(600000), booking.TotalAmount)
	assert.Equal(t, "Consultation Senin with Budi - 3 hour(s)", booking.Notes)
	assert.Equal(t, int64(11), booking.OwnerUserID)
}

func TestNormalize_PsychologyUnknownDurationCode(t *testing.T) {
	req := psychologyRequest()
	req.DurationCode = 99

	booking, err := normalize(req, testSession(), referenceNow, nopLogger{})

	require.NoError(t, err)
	// Неизвестный код трактуется как один час
	require.NotNil(t, booking.DurationMinutes)
	assert.Equal(t, 60, *booking.DurationMinutes)
	assert.Equal(t, float64(200000), booking.TotalAmount)
	assert.Contains(t, booking.Notes, "1 hour(s)")
}

func TestNormalize_PsychologyMalformedTime(t *testing.T) {
	req := psychologyRequest()
	req.StartTime = "not-a-time"

	_, err := normalize(req, testSession(), referenceNow, nopLogger{})
	require.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestNormalize_Workshop(t *testing.T) {
	req := &Request{
		ServiceCategory: domain.CategoryWorkshop,
		WorkshopID:      ptr.Ptr(int64(3)),
		WorkshopName:    "Bengkel Jaya Motor",
		ProductID:       ptr.Ptr(int64(12)),
		ProductPrice:    "350000",
	}

	booking, err := normalize(req, testSession(), referenceNow, nopLogger{})

	require.NoError(t, err)
	require.NotNil(t, booking.ProviderReferenceID)
	assert.Equal(t, int64(3), *booking.ProviderReferenceID)
	require.NotNil(t, booking.ItemReferenceID)
	assert.Equal(t, int64(12), *booking.ItemReferenceID)
	assert.Nil(t, booking.DurationMinutes)
	assert.Equal(t, "09:30:15", booking.ScheduledTime.String())
	assert.Equal(t, "2025-11-05", booking.ScheduledDate)
	assert.Equal(t, float64(350000), booking.TotalAmount)
	assert.Equal(t, "Workshop booking: Bengkel Jaya Motor", booking.Notes)
}

func TestNormalize_WorkshopWithoutProduct(t *testing.T) {
	req := &Request{
		ServiceCategory: domain.CategoryWorkshop,
		WorkshopID:      ptr.Ptr(int64(3)),
		WorkshopName:    "Bengkel Jaya Motor",
	}

	booking, err := normalize(req, testSession(), referenceNow, nopLogger{})

	require.NoError(t, err)
	assert.Nil(t, booking.ItemReferenceID)
	assert.Equal(t, float64(0), booking.TotalAmount)
}

func TestNormalize_DailyService(t *testing.T) {
	req := &Request{
		ServiceCategory: domain.CategoryDailyService,
		OfferingID:      ptr.Ptr(int64(7)),
		OfferingName:    "Setrika pakaian",
		OfferingPrice:   "50000",
	}

	booking, err := normalize(req, testSession(), referenceNow, nopLogger{})

	require.NoError(t, err)
	assert.Nil(t, booking.ProviderReferenceID)
	require.NotNil(t, booking.ItemReferenceID)
	assert.Equal(t, int64(7), *booking.ItemReferenceID)
	assert.Equal(t, "Service booking: Setrika pakaian", booking.Notes)
	assert.Equal(t, float64(50000), booking.TotalAmount)
}

func TestNormalize_AlwaysPendingUnpaid(t *testing.T) {
	requests := []*Request{
		psychologyRequest(),
		{ServiceCategory: domain.CategoryWorkshop, WorkshopID: ptr.Ptr(int64(1))},
		{ServiceCategory: domain.CategoryDailyService, OfferingID: ptr.Ptr(int64(1))},
	}

	for _, req := range requests {
		booking, err := normalize(req, testSession(), referenceNow, nopLogger{})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, booking.Status, "category %s", req.ServiceCategory)
		assert.Equal(t, domain.PaymentUnpaid, booking.PaymentStatus, "category %s", req.ServiceCategory)
	}
}
