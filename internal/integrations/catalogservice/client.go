package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент каталога платформы
// Каталог публичный: врачи, длительности консультаций, автосервисы
// с продуктами и предложения бытовых услуг. Аутентификация не требуется
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDoctors получает список психологов
// GET /getdokter
func (c *Client) GetDoctors(ctx context.Context) ([]Doctor, error) {
	var doctors []Doctor
	if err := c.getList(ctx, "/getdokter", &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// GetDurations получает варианты длительности консультаций
// GET /getdurasi
func (c *Client) GetDurations(ctx context.Context) ([]DurationOption, error) {
	var durations []DurationOption
	if err := c.getList(ctx, "/getdurasi", &durations); err != nil {
		return nil, err
	}
	return durations, nil
}

// GetWorkshops получает список автосервисов с продуктами
// GET /getbengkel
func (c *Client) GetWorkshops(ctx context.Context) ([]Workshop, error) {
	var workshops []Workshop
	if err := c.getList(ctx, "/getbengkel", &workshops); err != nil {
		return nil, err
	}
	return workshops, nil
}

// GetDailyServices получает предложения бытовых услуг
// GET /getjasa
func (c *Client) GetDailyServices(ctx context.Context) ([]DailyServiceOffering, error) {
	var offerings []DailyServiceOffering
	if err := c.getList(ctx, "/getjasa", &offerings); err != nil {
		return nil, err
	}
	return offerings, nil
}

func (c *Client) getList(ctx context.Context, path string, dst interface{}) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
