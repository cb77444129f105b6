package create_booking

import (
	"github.com/layananku/LSP-BookingGateway/internal/domain"
)

// Request модель запроса на создание бронирования
// Три вертикали приходят тремя разными наборами полей; какие поля
// значимы, определяет ServiceCategory. Денежные поля передаются
// сырыми строками - так их присылают формы платформы
type Request struct {
	ServiceCategory domain.ServiceCategory

	// Психологическая консультация
	DoctorID     *int64
	DoctorRate   string // тариф за час, сырая строка
	DurationCode int    // код пакета длительности
	WeekdayName  string // день недели, например "Senin"
	StartTime    string // время начала, "HH:MM"

	// Автосервис
	WorkshopID   *int64
	WorkshopName string
	ProductID    *int64  // опционально: запись без конкретного продукта допустима
	ProductPrice string  // цена продукта, сырая строка

	// Бытовая услуга
	OfferingID    *int64
	OfferingName  string
	OfferingPrice string // цена предложения, сырая строка
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID           int64
	ServiceCategory     domain.ServiceCategory
	ProviderReferenceID *int64
	ItemReferenceID     *int64
	DurationMinutes     *int
	ScheduledTime       string
	ScheduledDate       string
	TotalAmount         float64
	Notes               string
	Status              string
	PaymentStatus       string
}
