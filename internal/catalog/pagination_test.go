package catalog

import (
	"net/url"
	"testing"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginateLastPartialPage(t *testing.T) {
	// 14 items, page size 6: pages of 6, 6 and 2
	items := makeItems(14)

	page := Paginate(items, 3, 6)
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items on the last page, got %d", len(page.Items))
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
	if page.HasNext {
		t.Error("last page should not have a next page")
	}
	if !page.HasPrev {
		t.Error("last page should have a previous page")
	}
}

func TestPaginateEvenlyDivisible(t *testing.T) {
	// 12 items, page size 6: the last page is full
	page := Paginate(makeItems(12), 2, 6)
	if len(page.Items) != 6 {
		t.Fatalf("expected a full last page of 6, got %d", len(page.Items))
	}
	if page.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %d", page.TotalPages)
	}
}

func TestPaginateFirstPageBoundary(t *testing.T) {
	page := Paginate(makeItems(14), 1, 6)
	if page.HasPrev {
		t.Error("first page should not have a previous page")
	}
	if !page.HasNext {
		t.Error("first page of 14 items should have a next page")
	}
	if page.Items[0] != 1 || page.Items[5] != 6 {
		t.Errorf("unexpected first page contents: %v", page.Items)
	}
}

func TestPaginateBeyondEnd(t *testing.T) {
	page := Paginate(makeItems(5), 4, 6)
	if len(page.Items) != 0 {
		t.Fatalf("page beyond the end should be empty, got %d items", len(page.Items))
	}
	if page.TotalItems != 5 {
		t.Errorf("expected total of 5, got %d", page.TotalItems)
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate([]int{}, 1, 6)
	if len(page.Items) != 0 || page.TotalPages != 1 {
		t.Errorf("unexpected empty-collection page: %+v", page)
	}
	if page.HasPrev || page.HasNext {
		t.Error("empty collection should have no prev/next")
	}
}

func TestPaginateClampsBadInput(t *testing.T) {
	page := Paginate(makeItems(10), 0, -1)
	if page.Page != 1 {
		t.Errorf("page should clamp to 1, got %d", page.Page)
	}
	if page.PageSize != DefaultPageSize {
		t.Errorf("size should fall back to %d, got %d", DefaultPageSize, page.PageSize)
	}
}

func TestPageFromQuery(t *testing.T) {
	q, _ := url.ParseQuery("page=3&pageSize=12")
	page, size := PageFromQuery(q)
	if page != 3 || size != 12 {
		t.Errorf("expected page 3 size 12, got page %d size %d", page, size)
	}

	q, _ = url.ParseQuery("")
	page, size = PageFromQuery(q)
	if page != 1 || size != DefaultPageSize {
		t.Errorf("expected defaults, got page %d size %d", page, size)
	}
}
