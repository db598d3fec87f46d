// internal/core/session/store.go
package session

import (
	"container/list"
	"fmt"
	"sync"
)

// DefaultCap - лимит записей по умолчанию
const DefaultCap = 50

// Entry - сохраненный результат выборки: упорядоченный список как он был
// получен плюс последний запрошенный номер страницы
type Entry[T any] struct {
	Items    []T
	LastPage int
}

// Store - хранилище результатов выборок на время жизни процесса.
// Ключ - пара (чат, дискриминатор результата); записи перезаписываются
// свежей выборкой того же дискриминатора и вытесняются по LRU сверх лимита.
// Состояние никогда не переживает рестарт процесса.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // LRU: свежие в начале
	cap     int
}

type record[T any] struct {
	key   string
	entry Entry[T]
}

// NewStore создает новое хранилище с лимитом записей
func NewStore[T any](capacity int) *Store[T] {
	if capacity <= 0 {
		capacity = DefaultCap
	}
	return &Store[T]{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		cap:     capacity,
	}
}

func key(chatID int64, discriminator string) string {
	return fmt.Sprintf("%d:%s", chatID, discriminator)
}

// Put сохраняет свежую выборку, перезаписывая прежнюю запись дискриминатора
// и сбрасывая номер страницы на 0
func (s *Store[T]) Put(chatID int64, discriminator string, items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(chatID, discriminator)

	if el, exists := s.entries[k]; exists {
		el.Value.(*record[T]).entry = Entry[T]{Items: items}
		s.order.MoveToFront(el)
		return
	}

	el := s.order.PushFront(&record[T]{key: k, entry: Entry[T]{Items: items}})
	s.entries[k] = el

	// Вытесняем самую старую запись сверх лимита
	for s.order.Len() > s.cap {
		oldest := s.order.Back()
		if oldest == nil {
			break
		}
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*record[T]).key)
	}
}

// Get возвращает сохраненную выборку. false - состояние отсутствует
// (не сохранялось, вытеснено или процесс был перезапущен); вызывающий
// обязан трактовать это как "попросите пользователя повторить команду"
func (s *Store[T]) Get(chatID int64, discriminator string) (Entry[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, exists := s.entries[key(chatID, discriminator)]
	if !exists {
		return Entry[T]{}, false
	}

	s.order.MoveToFront(el)
	return el.Value.(*record[T]).entry, true
}

// SetPage запоминает последний запрошенный номер страницы записи.
// Отсутствующая запись молча игнорируется.
func (s *Store[T]) SetPage(chatID int64, discriminator string, page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, exists := s.entries[key(chatID, discriminator)]; exists {
		el.Value.(*record[T]).entry.LastPage = page
	}
}

// Len возвращает число записей
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// Reset полностью очищает хранилище (эквивалент рестарта процесса)
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*list.Element)
	s.order.Init()
}
