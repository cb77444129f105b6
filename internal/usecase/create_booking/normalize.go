package create_booking

import (
	"fmt"
	"time"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/pkg/types"
)

// normalize приводит запрос любой вертикали к канонической записи
// бронирования. Каждая запись создается заново на одну попытку отправки,
// статусы всегда начальные: pending / unpaid
func normalize(req *Request, session domain.Session, now time.Time, log Logger) (*domain.Booking, error) {
	booking := &domain.Booking{
		ServiceCategory: req.ServiceCategory,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentUnpaid,
		OwnerUserID:     session.UserID,
	}

	switch req.ServiceCategory {
	case domain.CategoryPsychology:
		units, minutes := domain.DurationFromCode(req.DurationCode)

		scheduledTime, err := resolveTime(req.ServiceCategory, req.StartTime, now)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrInvalidTimeString, err)
		}

		booking.ProviderReferenceID = req.DoctorID
		booking.DurationMinutes = &minutes
		booking.ScheduledTime = scheduledTime
		booking.ScheduledDate = resolveDate(req.WeekdayName, now, log)
		booking.TotalAmount = resolveTotal(req.ServiceCategory, req.DoctorRate, units, "")
		booking.Notes = fmt.Sprintf("Consultation %s with %s - %d hour(s)",
			req.WeekdayName, session.Name, units)

	case domain.CategoryWorkshop:
		scheduledTime, _ := resolveTime(req.ServiceCategory, "", now)

		booking.ProviderReferenceID = req.WorkshopID
		booking.ItemReferenceID = req.ProductID
		booking.ScheduledTime = scheduledTime
		booking.ScheduledDate = now.Format(domain.DateFormat)
		booking.TotalAmount = resolveTotal(req.ServiceCategory, "", 0, req.ProductPrice)
		booking.Notes = fmt.Sprintf("Workshop booking: %s", req.WorkshopName)

	case domain.CategoryDailyService:
		scheduledTime, _ := resolveTime(req.ServiceCategory, "", now)

		booking.ItemReferenceID = req.OfferingID
		booking.ScheduledTime = scheduledTime
		booking.ScheduledDate = now.Format(domain.DateFormat)
		booking.TotalAmount = resolveTotal(req.ServiceCategory, "", 0, req.OfferingPrice)
		booking.Notes = fmt.Sprintf("Service booking: %s", req.OfferingName)
	}

	return booking, nil
}
