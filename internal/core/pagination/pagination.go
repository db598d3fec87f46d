// internal/core/pagination/pagination.go
package pagination

// Page - одна страница упорядоченного списка
type Page[T any] struct {
	Items   []T
	Start   int // порядковый номер первого элемента страницы
	End     int // порядковый номер за последним элементом страницы
	Total   int
	HasMore bool
}

// Paginate вычисляет срез [pageIndex*pageSize, +pageSize) упорядоченного списка.
// Чистая функция: одинаковые аргументы всегда дают одинаковый результат,
// поэтому путь первичной команды и путь callback разделяют одну реализацию,
// а повторная доставка нажатия кнопки идемпотентна.
// Индекс за пределами списка дает пустую страницу, не ошибку.
func Paginate[T any](items []T, pageIndex, pageSize int) Page[T] {
	total := len(items)

	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize < 1 {
		pageSize = 1
	}

	// Страница целиком за концом списка; произведение не вычисляется,
	// чтобы сверхбольшой номер страницы не переполнил int
	if pageIndex > total/pageSize {
		return Page[T]{
			Items: items[total:],
			Start: total,
			End:   total,
			Total: total,
		}
	}

	start := pageIndex * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:   items[start:end],
		Start:   start,
		End:     end,
		Total:   total,
		HasMore: end < total,
	}
}
