package create_booking

import (
	"time"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/pkg/types"
)

// resolveDate преобразует название дня недели в конкретную дату
// Возвращается ближайшее СТРОГО будущее вхождение дня: если сегодня
// понедельник и запрошен "Senin", бронирование уходит на следующую неделю.
// Пустое или нераспознанное название дает дату reference (сегодня);
// нераспознанное название логируется, но ошибкой не считается
func resolveDate(weekdayName string, now time.Time, log Logger) string {
	if weekdayName == "" {
		return now.Format(domain.DateFormat)
	}

	target, ok := domain.WeekdayIndex(weekdayName)
	if !ok {
		log.Warn("resolveDate: unrecognized weekday name %q, falling back to reference date", weekdayName)
		return now.Format(domain.DateFormat)
	}

	delta := int(target) - int(now.Weekday())
	if delta <= 0 {
		delta += 7
	}

	return now.AddDate(0, 0, delta).Format(domain.DateFormat)
}

// resolveTime возвращает время бронирования
// Для психологии передается выбранное в форме время HH:MM,
// для остальных вертикалей - текущее время часов HH:MM:SS
func resolveTime(category domain.ServiceCategory, submitted string, now time.Time) (types.TimeString, error) {
	if category == domain.CategoryPsychology {
		if submitted == "" {
			// Отсутствие времени отлавливает валидация
			return "", nil
		}
		return types.NewTimeStringFromString(submitted)
	}
	return types.NewTimeString(now), nil
}
