package coreservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ServiceCategory:     domain.CategoryPsychology,
		ProviderReferenceID: ptr.Ptr(int64(5)),
		DurationMinutes:     ptr.Ptr(180),
		ScheduledTime:       "10:00",
		ScheduledDate:       "2025-11-10",
		TotalAmount:         600000,
		Notes:               "Consultation Senin with Budi - 3 hour(s)",
		Status:              domain.StatusPending,
		PaymentStatus:       domain.PaymentUnpaid,
		OwnerUserID:         11,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(BookingReceipt{BookingID: 42, TotalAmount: 600000, Status: "pending"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	receipt, err := client.CreateBooking(context.Background(), "tok-123", testBooking())

	require.NoError(t, err)
	assert.Equal(t, int64(42), receipt.BookingID)

	assert.Equal(t, "/tambahbooking", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "pending", gotPayload["status"])
	assert.Equal(t, "unpaid", gotPayload["paymentStatus"])
	assert.Equal(t, float64(11), gotPayload["ownerUserId"])
	assert.Equal(t, float64(600000), gotPayload["totalAmount"])
}

func TestCreateBooking_RejectionUsesMsgField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"msg":"Slot unavailable","debug":{"sql":"INSERT INTO booking ..."}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.CreateBooking(context.Background(), "tok", testBooking())

	var submissionErr *SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	assert.Equal(t, http.StatusBadRequest, submissionErr.StatusCode)
	assert.Equal(t, "Slot unavailable", submissionErr.Message)
	// Диагностическая нагрузка не просачивается в сообщение
	assert.NotContains(t, submissionErr.Error(), "INSERT INTO")
}

func TestCreateBooking_RejectionFallsBackToMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Booking already exists"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.CreateBooking(context.Background(), "tok", testBooking())

	var submissionErr *SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	assert.Equal(t, "Booking already exists", submissionErr.Message)
}

func TestCreateBooking_RejectionRawBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("plain text failure"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.CreateBooking(context.Background(), "tok", testBooking())

	var submissionErr *SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	assert.Equal(t, "plain text failure", submissionErr.Message)
}

func TestCreateBooking_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.CreateBooking(context.Background(), "tok", testBooking())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetBooking_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.GetBooking(context.Background(), "tok", 999)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetBooking_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getbooking/42", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":              42,
			"serviceCategory": 1,
			"scheduledTime":   "10:00",
			"scheduledDate":   "2025-11-10",
			"totalAmount":     600000,
			"status":          "pending",
			"paymentStatus":   "unpaid",
			"ownerUserId":     11,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	booking, err := client.GetBooking(context.Background(), "tok", 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, domain.CategoryPsychology, booking.ServiceCategory)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, int64(11), booking.OwnerUserID)
}

func TestListBookings_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getbooking", r.URL.Path)
		w.Write([]byte(`[{"id":1,"serviceCategory":2,"ownerUserId":11},{"id":2,"serviceCategory":3,"ownerUserId":12}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	bookings, err := client.ListBookings(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, domain.CategoryWorkshop, bookings[0].ServiceCategory)
	assert.Equal(t, int64(12), bookings[1].OwnerUserID)
}

func TestUpdateBookingStatus_Cancel(t *testing.T) {
	var gotMethod, gotPath string
	var gotPayload map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.UpdateBookingStatus(context.Background(), "tok", 42, domain.StatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/updatebooking/42", gotPath)
	assert.Equal(t, "cancelled", gotPayload["status"])
}
