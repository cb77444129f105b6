package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	formatHHMM   = "15:04"
	formatHHMMSS = "15:04:05"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM или HH:MM:SS
// Хранится как строка, чтобы не тянуть дату и таймзону в сравнение слотов
type TimeString string

// NewTimeString создает TimeString из time.Time (с секундами)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(formatHHMMSS))
}

// NewTimeStringFromString парсит и нормализует строку времени
// Принимает форматы HH:MM и HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := parseClock(s); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := parseClock(string(t))
	return err
}

// AddMinutes возвращает время, сдвинутое на указанное число минут
// Переход через полночь не поддерживается - время обрезается по 23:59
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := parseClock(string(t))
	if err != nil {
		return "", err
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	// Слоты не пересекают полночь
	if shifted.Day() != parsed.Day() {
		shifted = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 23, 59, 0, 0, parsed.Location())
	}

	return TimeString(shifted.Format(formatHHMM)), nil
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := parseClock(string(t))
	b, errB := parseClock(string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := parseClock(string(t))
	b, errB := parseClock(string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

func parseClock(s string) (time.Time, error) {
	if parsed, err := time.Parse(formatHHMM, s); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(formatHHMMSS, s); err == nil {
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q, expected HH:MM or HH:MM:SS", ErrInvalidTimeString, s)
}
