package create_booking

import (
	"github.com/layananku/LSP-BookingGateway/internal/domain"
	createBooking "github.com/layananku/LSP-BookingGateway/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Дискриминатор serviceCategory определяет, какая группа полей значима:
// 1 - психологическая консультация, 2 - автосервис, 3 - бытовая услуга
type CreateBookingRequest struct {
	ServiceCategory int `json:"serviceCategory"`

	// Психологическая консультация
	DoctorID     *int64 `json:"doctorId,omitempty"`
	DoctorRate   string `json:"doctorRate,omitempty"`   // "200000"
	DurationCode int    `json:"durationCode,omitempty"` // 1, 3 или 5 часов
	Weekday      string `json:"weekday,omitempty"`      // "Senin"
	StartTime    string `json:"startTime,omitempty"`    // "10:00"

	// Автосервис
	WorkshopID   *int64 `json:"workshopId,omitempty"`
	WorkshopName string `json:"workshopName,omitempty"`
	ProductID    *int64 `json:"productId,omitempty"`
	ProductPrice string `json:"productPrice,omitempty"`

	// Бытовая услуга
	OfferingID    *int64 `json:"offeringId,omitempty"`
	OfferingName  string `json:"offeringName,omitempty"`
	OfferingPrice string `json:"offeringPrice,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceCategory: domain.ServiceCategory(r.ServiceCategory),
		DoctorID:        r.DoctorID,
		DoctorRate:      r.DoctorRate,
		DurationCode:    r.DurationCode,
		WeekdayName:     r.Weekday,
		StartTime:       r.StartTime,
		WorkshopID:      r.WorkshopID,
		WorkshopName:    r.WorkshopName,
		ProductID:       r.ProductID,
		ProductPrice:    r.ProductPrice,
		OfferingID:      r.OfferingID,
		OfferingName:    r.OfferingName,
		OfferingPrice:   r.OfferingPrice,
	}
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID           int64   `json:"bookingId"`
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
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:           resp.BookingID,
		ServiceCategory:     int(resp.ServiceCategory),
		ProviderReferenceID: resp.ProviderReferenceID,
		ItemReferenceID:     resp.ItemReferenceID,
		DurationMinutes:     resp.DurationMinutes,
		ScheduledTime:       resp.ScheduledTime,
		ScheduledDate:       resp.ScheduledDate,
		TotalAmount:         resp.TotalAmount,
		Notes:               resp.Notes,
		Status:              resp.Status,
		PaymentStatus:       resp.PaymentStatus,
	}
}
