package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layananku/LSP-BookingGateway/internal/api/middleware"
	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/internal/integrations/coreservice"
	createBooking "github.com/layananku/LSP-BookingGateway/internal/usecase/create_booking"
	"github.com/layananku/LSP-BookingGateway/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockUseCase struct {
	req      *createBooking.Request
	session  domain.Session
	response *createBooking.Response
	err      error
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request, session domain.Session) (*createBooking.Response, error) {
	m.req = req
	m.session = session
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func serveJSON(handler *Handler, body string) *httptest.ResponseRecorder {
	router := middleware.Auth(http.HandlerFunc(handler.Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "11")
	req.Header.Set("X-User-Name", "Budi")
	req.Header.Set("Authorization", "Bearer tok-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	useCase := &mockUseCase{response: &createBooking.Response{
		BookingID:           42,
		ServiceCategory:     domain.CategoryPsychology,
		ProviderReferenceID: ptr.Ptr(int64(5)),
		DurationMinutes:     ptr.Ptr(180),
		ScheduledTime:       "10:00",
		ScheduledDate:       "2025-11-10",
		TotalAmount:         600000,
		Notes:               "Consultation Senin with Budi - 3 hour(s)",
		Status:              "pending",
		PaymentStatus:       "unpaid",
	}}
	handler := NewHandler(useCase, nopLogger{})

	rec := serveJSON(handler, `{
		"serviceCategory": 1,
		"doctorId": 5,
		"doctorRate": "200000",
		"durationCode": 3,
		"weekday": "Senin",
		"startTime": "10:00"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, float64(600000), resp.TotalAmount)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "unpaid", resp.PaymentStatus)

	// Сессия из заголовков дошла до use case
	assert.Equal(t, int64(11), useCase.session.UserID)
	assert.Equal(t, "tok-123", useCase.session.Token)
	assert.Equal(t, "Senin", useCase.req.WeekdayName)
	assert.Equal(t, 3, useCase.req.DurationCode)
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&mockUseCase{}, nopLogger{})

	rec := serveJSON(handler, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ValidationError(t *testing.T) {
	useCase := &mockUseCase{err: &createBooking.ValidationError{
		Fields: []string{"providerReferenceId", "scheduledTime"},
	}}
	handler := NewHandler(useCase, nopLogger{})

	rec := serveJSON(handler, `{"serviceCategory": 1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string   `json:"message"`
		Fields  []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"providerReferenceId", "scheduledTime"}, resp.Fields)
}

func TestHandle_SubmissionErrorPassesThrough(t *testing.T) {
	useCase := &mockUseCase{err: &coreservice.SubmissionError{
		StatusCode: http.StatusBadRequest,
		Message:    "Slot unavailable",
	}}
	handler := NewHandler(useCase, nopLogger{})

	rec := serveJSON(handler, `{"serviceCategory": 1, "doctorId": 5, "startTime": "10:00", "durationCode": 1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Slot unavailable", resp.Message)
}

func TestHandle_SubmissionServerErrorBecomesBadGateway(t *testing.T) {
	useCase := &mockUseCase{err: &coreservice.SubmissionError{
		StatusCode: http.StatusInternalServerError,
		Message:    "boom",
	}}
	handler := NewHandler(useCase, nopLogger{})

	rec := serveJSON(handler, `{"serviceCategory": 2, "workshopId": 3}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandle_UpstreamUnavailable(t *testing.T) {
	useCase := &mockUseCase{err: createBooking.ErrInternal}
	handler := NewHandler(useCase, nopLogger{})

	rec := serveJSON(handler, `{"serviceCategory": 3, "offeringId": 7}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
