// internal/core/pagination/pagination_test.go
package pagination

import (
	"math"
	"testing"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageIndex int
		pageSize  int
		wantStart int
		wantEnd   int
		wantLen   int
		wantMore  bool
	}{
		{name: "first page of many", total: 12, pageIndex: 0, pageSize: 5, wantStart: 0, wantEnd: 5, wantLen: 5, wantMore: true},
		{name: "middle page", total: 12, pageIndex: 1, pageSize: 5, wantStart: 5, wantEnd: 10, wantLen: 5, wantMore: true},
		{name: "short last page", total: 12, pageIndex: 2, pageSize: 5, wantStart: 10, wantEnd: 12, wantLen: 2, wantMore: false},
		{name: "page past the end", total: 12, pageIndex: 5, pageSize: 5, wantStart: 12, wantEnd: 12, wantLen: 0, wantMore: false},
		{name: "exact multiple last page", total: 10, pageIndex: 1, pageSize: 5, wantStart: 5, wantEnd: 10, wantLen: 5, wantMore: false},
		{name: "single full page", total: 5, pageIndex: 0, pageSize: 5, wantStart: 0, wantEnd: 5, wantLen: 5, wantMore: false},
		{name: "empty input", total: 0, pageIndex: 0, pageSize: 5, wantStart: 0, wantEnd: 0, wantLen: 0, wantMore: false},
		{name: "negative index clamps to first", total: 12, pageIndex: -3, pageSize: 5, wantStart: 0, wantEnd: 5, wantLen: 5, wantMore: true},
		{name: "zero page size clamps to one", total: 3, pageIndex: 1, pageSize: 0, wantStart: 1, wantEnd: 2, wantLen: 1, wantMore: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := Paginate(seq(tt.total), tt.pageIndex, tt.pageSize)

			if pg.Start != tt.wantStart || pg.End != tt.wantEnd {
				t.Errorf("границы [%d:%d], ожидалось [%d:%d]", pg.Start, pg.End, tt.wantStart, tt.wantEnd)
			}
			if len(pg.Items) != tt.wantLen {
				t.Errorf("len(Items) = %d, ожидалось %d", len(pg.Items), tt.wantLen)
			}
			if pg.Total != tt.total {
				t.Errorf("Total = %d, ожидалось %d", pg.Total, tt.total)
			}
			if pg.HasMore != tt.wantMore {
				t.Errorf("HasMore = %v, ожидалось %v", pg.HasMore, tt.wantMore)
			}
			for i, v := range pg.Items {
				if v != pg.Start+i {
					t.Fatalf("Items[%d] = %d, ожидалось %d", i, v, pg.Start+i)
				}
			}
		})
	}
}

// Последовательный обход страниц восстанавливает исходный список без
// пропусков и дублей
func TestPaginateReconstruction(t *testing.T) {
	items := seq(23)
	pageSize := 5

	var walked []int
	for page := 0; ; page++ {
		pg := Paginate(items, page, pageSize)
		walked = append(walked, pg.Items...)
		if !pg.HasMore {
			break
		}
	}

	if len(walked) != len(items) {
		t.Fatalf("обход собрал %d элементов, ожидалось %d", len(walked), len(items))
	}
	for i, v := range walked {
		if v != items[i] {
			t.Fatalf("walked[%d] = %d, ожидалось %d", i, v, items[i])
		}
	}
}

// Сверхбольшой номер страницы дает пустую страницу, а не панику
func TestPaginateHugePageIndex(t *testing.T) {
	items := seq(10)

	for _, pageIndex := range []int{math.MaxInt, math.MaxInt / 2, math.MaxInt/5 + 1} {
		pg := Paginate(items, pageIndex, 5)

		if len(pg.Items) != 0 {
			t.Fatalf("pageIndex %d: len(Items) = %d, ожидалось 0", pageIndex, len(pg.Items))
		}
		if pg.Start != 10 || pg.End != 10 {
			t.Fatalf("pageIndex %d: границы [%d:%d], ожидалось [10:10]", pageIndex, pg.Start, pg.End)
		}
		if pg.Total != 10 || pg.HasMore {
			t.Fatalf("pageIndex %d: Total = %d, HasMore = %v", pageIndex, pg.Total, pg.HasMore)
		}
	}
}

// Повторный запрос той же страницы возвращает тот же срез
func TestPaginateIdempotent(t *testing.T) {
	items := seq(17)

	first := Paginate(items, 2, 5)
	second := Paginate(items, 2, 5)

	if first.Start != second.Start || first.End != second.End || first.HasMore != second.HasMore {
		t.Fatalf("повторный вызов дал другие границы: %+v vs %+v", first, second)
	}
	for i := range first.Items {
		if first.Items[i] != second.Items[i] {
			t.Fatalf("Items[%d] отличается между вызовами", i)
		}
	}
}
