package coreservice

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUnauthorized возвращается, когда core backend отклонил креденшл
	ErrUnauthorized = errors.New("coreservice client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("coreservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("coreservice client: invalid response")
)

// SubmissionError возвращается, когда core backend отклонил запрос
// Message содержит извлеченное из ответа сообщение и безопасен для показа
// пользователю; диагностический payload (debug) логируется в клиенте
// и сюда не попадает
type SubmissionError struct {
	StatusCode int
	Message    string
}

// Error реализует интерфейс error
func (e *SubmissionError) Error() string {
	return fmt.Sprintf("coreservice client: submission rejected (status=%d): %s", e.StatusCode, e.Message)
}
