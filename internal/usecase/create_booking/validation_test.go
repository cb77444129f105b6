package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/pkg/ptr"
)

func validPsychologyBooking() *domain.Booking {
	return &domain.Booking{
		ServiceCategory:     domain.CategoryPsychology,
		ProviderReferenceID: ptr.Ptr(int64(5)),
		DurationMinutes:     ptr.Ptr(60),
		ScheduledTime:       "10:00",
	}
}

func TestValidateBooking_InvalidCategory(t *testing.T) {
	err := validateBooking(&domain.Booking{ServiceCategory: 0})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"serviceCategory"}, validationErr.Fields)
}

func TestValidateBooking_Psychology(t *testing.T) {
	require.NoError(t, validateBooking(validPsychologyBooking()))

	booking := validPsychologyBooking()
	booking.ProviderReferenceID = nil
	booking.ScheduledTime = ""
	booking.DurationMinutes = nil

	err := validateBooking(booking)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t,
		[]string{"providerReferenceId", "scheduledTime", "durationMinutes"},
		validationErr.Fields)
}

func TestValidateBooking_PsychologyZeroDuration(t *testing.T) {
	booking := validPsychologyBooking()
	booking.DurationMinutes = ptr.Ptr(0)

	err := validateBooking(booking)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"durationMinutes"}, validationErr.Fields)
}

func TestValidateBooking_Workshop(t *testing.T) {
	// Продукт необязателен, достаточно автосервиса
	require.NoError(t, validateBooking(&domain.Booking{
		ServiceCategory:     domain.CategoryWorkshop,
		ProviderReferenceID: ptr.Ptr(int64(3)),
	}))

	err := validateBooking(&domain.Booking{ServiceCategory: domain.CategoryWorkshop})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"providerReferenceId"}, validationErr.Fields)
}

func TestValidateBooking_DailyService(t *testing.T) {
	require.NoError(t, validateBooking(&domain.Booking{
		ServiceCategory: domain.CategoryDailyService,
		ItemReferenceID: ptr.Ptr(int64(7)),
	}))

	err := validateBooking(&domain.Booking{ServiceCategory: domain.CategoryDailyService})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"itemReferenceId"}, validationErr.Fields)
}
