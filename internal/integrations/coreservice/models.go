package coreservice

import (
	"encoding/json"
	"time"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/pkg/types"
)

// bookingPayload тело запроса POST /tambahbooking
// Поля канонической записи передаются плоским объектом
type bookingPayload struct {
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
}

func toBookingPayload(b *domain.Booking) bookingPayload {
	return bookingPayload{
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
}

// BookingReceipt ответ core backend на успешное создание бронирования
type BookingReceipt struct {
	BookingID   int64   `json:"bookingId"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
}

// bookingModel бронирование в ответах GET /getbooking
type bookingModel struct {
	ID                  int64     `json:"id"`
	ServiceCategory     int       `json:"serviceCategory"`
	ProviderReferenceID *int64    `json:"providerReferenceId"`
	ItemReferenceID     *int64    `json:"itemReferenceId"`
	DurationMinutes     *int      `json:"durationMinutes"`
	ScheduledTime       string    `json:"scheduledTime"`
	ScheduledDate       string    `json:"scheduledDate"`
	TotalAmount         float64   `json:"totalAmount"`
	Notes               string    `json:"notes"`
	Status              string    `json:"status"`
	PaymentStatus       string    `json:"paymentStatus"`
	OwnerUserID         int64     `json:"ownerUserId"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (m *bookingModel) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:                  m.ID,
		ServiceCategory:     domain.ServiceCategory(m.ServiceCategory),
		ProviderReferenceID: m.ProviderReferenceID,
		ItemReferenceID:     m.ItemReferenceID,
		DurationMinutes:     m.DurationMinutes,
		ScheduledTime:       types.TimeString(m.ScheduledTime),
		ScheduledDate:       m.ScheduledDate,
		TotalAmount:         m.TotalAmount,
		Notes:               m.Notes,
		Status:              domain.BookingStatus(m.Status),
		PaymentStatus:       domain.PaymentStatus(m.PaymentStatus),
		OwnerUserID:         m.OwnerUserID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// updateStatusPayload тело запроса PUT /updatebooking/:id
type updateStatusPayload struct {
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от core backend
// Бэкенд отдает сообщение в msg или message; debug содержит
// диагностическую нагрузку, которая никогда не показывается пользователю
type ErrorResponse struct {
	Msg     string          `json:"msg"`
	Message string          `json:"message"`
	Debug   json.RawMessage `json:"debug,omitempty"`
}
