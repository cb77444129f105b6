package create_booking

import (
	"math"
	"strconv"
	"strings"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
)

// resolveTotal вычисляет итоговую стоимость бронирования
// Психология: тариф за час * количество часов
// Автосервис и бытовые услуги: цена выбранной позиции как есть
func resolveTotal(category domain.ServiceCategory, rate string, durationUnits int, listedPrice string) float64 {
	switch category {
	case domain.CategoryPsychology:
		return parseAmount(rate) * float64(durationUnits)
	default:
		return parseAmount(listedPrice)
	}
}

// parseAmount парсит денежную строку
// Никогда не возвращает ошибку: нечитаемое, отрицательное или NaN
// значение превращается в 0. Формы платформы исторически присылают
// цены строками и полагаются на это поведение
func parseAmount(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
