package coreservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
)

// maxRawErrorLength максимальная длина сырого тела ответа,
// используемого как сообщение об ошибке
const maxRawErrorLength = 200

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с core backend платформы
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента core backend
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateBooking отправляет каноническую запись бронирования в core backend
// POST /tambahbooking с bearer-креденшлом вызывающего
// Ретраев нет - политика повторной отправки остается за вызывающим
func (c *Client) CreateBooking(ctx context.Context, token string, booking *domain.Booking) (*BookingReceipt, error) {
	url := fmt.Sprintf("%s/tambahbooking", c.baseURL)

	body, err := json.Marshal(toBookingPayload(booking))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal booking: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, c.submissionError(resp)
	}

	var receipt BookingReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("%w: failed to decode receipt: %v", ErrInvalidResponse, err)
	}

	return &receipt, nil
}

// GetBooking получает бронирование по ID
// GET /getbooking/:id
func (c *Client) GetBooking(ctx context.Context, token string, bookingID int64) (*domain.Booking, error) {
	url := fmt.Sprintf("%s/getbooking/%d", c.baseURL, bookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var model bookingModel
	if err := json.NewDecoder(resp.Body).Decode(&model); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", ErrInvalidResponse, err)
	}

	return model.toDomain(), nil
}

// ListBookings получает все бронирования, доступные по токену вызывающего
// GET /getbooking
func (c *Client) ListBookings(ctx context.Context, token string) ([]*domain.Booking, error) {
	url := fmt.Sprintf("%s/getbooking", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var models []bookingModel
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return nil, fmt.Errorf("%w: failed to decode bookings: %v", ErrInvalidResponse, err)
	}

	bookings := make([]*domain.Booking, 0, len(models))
	for i := range models {
		bookings = append(bookings, models[i].toDomain())
	}

	return bookings, nil
}

// UpdateBookingStatus обновляет статус бронирования
// PUT /updatebooking/:id, отмена выполняется со статусом "cancelled"
func (c *Client) UpdateBookingStatus(ctx context.Context, token string, bookingID int64, status domain.BookingStatus) error {
	url := fmt.Sprintf("%s/updatebooking/%d", c.baseURL, bookingID)

	body, err := json.Marshal(updateStatusPayload{Status: string(status)})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal status: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrBookingNotFound
	default:
		return c.submissionError(resp)
	}
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// submissionError извлекает сообщение об ошибке из тела ответа
// Предпочитается поле msg, затем message, иначе используется сырое тело.
// Диагностический payload debug только логируется и никогда не попадает
// в возвращаемую ошибку
func (c *Client) submissionError(resp *http.Response) error {
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return &SubmissionError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if len(errResp.Debug) > 0 {
			c.log.Error("core backend rejected request (status=%d), debug payload: %s",
				resp.StatusCode, string(errResp.Debug))
		}
		if errResp.Msg != "" {
			return &SubmissionError{StatusCode: resp.StatusCode, Message: errResp.Msg}
		}
		if errResp.Message != "" {
			return &SubmissionError{StatusCode: resp.StatusCode, Message: errResp.Message}
		}
	}

	raw := string(body)
	if len(raw) > maxRawErrorLength {
		raw = raw[:maxRawErrorLength]
	}
	if raw == "" {
		raw = resp.Status
	}

	return &SubmissionError{StatusCode: resp.StatusCode, Message: raw}
}
