package models

import (
	"time"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
)

// BookingResponse бронирование в ответах сервиса
type BookingResponse struct {
	ID                  int64   `json:"id"`
	ServiceCategory     int     `json:"serviceCategory"`
	ProviderReferenceID *int64  `json:"providerReferenceId,omitempty"`
	ItemReferenceID     *int64  `json:"itemReferenceId,omitempty"`
	DurationMinutes     *int    `json:"durationMinutes,omitempty"`
	ScheduledTime       string  `json:"scheduledTime"`
	ScheduledDate       string  `json:"scheduledDate"`
	TotalAmount         float64 `json:"totalAmount"`
	Notes               string  `json:"notes"`
	Status              string  `json:"status"`
	PaymentStatus       string  `json:"paymentStatus"`
	OwnerUserID         int64   `json:"ownerUserId"`
	CreatedAt           string  `json:"createdAt,omitempty"`
	UpdatedAt           string  `json:"updatedAt,omitempty"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                  b.ID,
		ServiceCategory:     int(b.ServiceCategory),
		ProviderReferenceID: b.ProviderReferenceID,
		ItemReferenceID:     b.ItemReferenceID,
		DurationMinutes:     b.DurationMinutes,
		ScheduledTime:       b.ScheduledTime.String(),
		ScheduledDate:       b.ScheduledDate,
		TotalAmount:         b.TotalAmount,
		Notes:               b.Notes,
		Status:              string(b.Status),
		PaymentStatus:       string(b.PaymentStatus),
		OwnerUserID:         b.OwnerUserID,
	}

	if !b.CreatedAt.IsZero() {
		resp.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	if !b.UpdatedAt.IsZero() {
		resp.UpdatedAt = b.UpdatedAt.Format(time.RFC3339)
	}

	return resp
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBookingList конвертирует список domain.Booking
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: items}
}

// SubmissionRecordResponse запись журнала отправок в ответах сервиса
type SubmissionRecordResponse struct {
	ID                  int64   `json:"id"`
	ServiceCategory     int     `json:"serviceCategory"`
	ProviderReferenceID *int64  `json:"providerReferenceId,omitempty"`
	ItemReferenceID     *int64  `json:"itemReferenceId,omitempty"`
	ScheduledDate       string  `json:"scheduledDate"`
	ScheduledTime       string  `json:"scheduledTime"`
	TotalAmount         float64 `json:"totalAmount"`
	Outcome             string  `json:"outcome"`
	UpstreamBookingID   *int64  `json:"upstreamBookingId,omitempty"`
	ErrorText           *string `json:"errorText,omitempty"`
	CreatedAt           string  `json:"createdAt"`
}

// SubmissionHistoryResponse история отправок пользователя
type SubmissionHistoryResponse struct {
	Records []*SubmissionRecordResponse `json:"records"`
}

// FromDomainSubmissionRecords конвертирует записи журнала
func FromDomainSubmissionRecords(records []*domain.SubmissionRecord) *SubmissionHistoryResponse {
	items := make([]*SubmissionRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, &SubmissionRecordResponse{
			ID:                  r.ID,
			ServiceCategory:     int(r.ServiceCategory),
			ProviderReferenceID: r.ProviderReferenceID,
			ItemReferenceID:     r.ItemReferenceID,
			ScheduledDate:       r.ScheduledDate,
			ScheduledTime:       r.ScheduledTime,
			TotalAmount:         r.TotalAmount,
			Outcome:             r.Outcome,
			UpstreamBookingID:   r.UpstreamBookingID,
			ErrorText:           r.ErrorText,
			CreatedAt:           r.CreatedAt.Format(time.RFC3339),
		})
	}
	return &SubmissionHistoryResponse{Records: items}
}
