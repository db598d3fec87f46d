// internal/api/sai/errors.go
package sai

import (
	"encoding/json"
	"fmt"
)

// TransportError - запрос к индексатору не удалось выполнить:
// сеть, таймаут, не-2xx статус или нечитаемое тело ответа
type TransportError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sai %s: %v", e.Op, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("sai %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("sai %s: transport error", e.Op)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError - индексатор ответил, но вернул список ошибок GraphQL.
// Errors хранит сырое содержимое поля "errors".
type UpstreamError struct {
	Errors json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("sai query errors: %s", string(e.Errors))
}
