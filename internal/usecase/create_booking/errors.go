package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSession возвращается, когда запрос пришел без аутентифицированной
	// сессии. Это нарушение предусловия: запрос к core backend не выполняется
	ErrNoSession = errors.New("create_booking: no authenticated session")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError возвращается при отсутствии обязательных полей
// Содержит список проблемных полей для показа в UI
type ValidationError struct {
	Fields []string
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("create_booking: missing or invalid required fields: %s", strings.Join(e.Fields, ", "))
}
