package pagination

import "testing"

func TestPageRequest_Defaults(t *testing.T) {
	var req PageRequest
	req.Defaults()

	if req.Page != 1 || req.PageSize != 20 {
		t.Errorf("expected defaults page=1 page_size=20, got page=%d page_size=%d", req.Page, req.PageSize)
	}

	req = PageRequest{Page: 3, PageSize: 50}
	req.Defaults()
	if req.Page != 3 || req.PageSize != 50 {
		t.Errorf("expected explicit values preserved, got page=%d page_size=%d", req.Page, req.PageSize)
	}
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("first_page", func(t *testing.T) {
		got := Window(items, PageRequest{Page: 1, PageSize: 2})
		if len(got) != 2 || got[0] != 1 || got[1] != 2 {
			t.Errorf("expected [1 2], got %v", got)
		}
	})

	t.Run("partial_last_page", func(t *testing.T) {
		got := Window(items, PageRequest{Page: 3, PageSize: 2})
		if len(got) != 1 || got[0] != 5 {
			t.Errorf("expected [5], got %v", got)
		}
	})

	t.Run("page_past_end", func(t *testing.T) {
		if got := Window(items, PageRequest{Page: 4, PageSize: 2}); len(got) != 0 {
			t.Errorf("expected empty window, got %v", got)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		if got := Window([]int{}, PageRequest{Page: 1, PageSize: 20}); len(got) != 0 {
			t.Errorf("expected empty window, got %v", got)
		}
	})
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse([]string{"a", "b"}, 1, 2, 5)

	if resp.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", resp.TotalPages)
	}
	if resp.TotalItems != 5 {
		t.Errorf("expected 5 total items, got %d", resp.TotalItems)
	}

	empty := NewPageResponse[string](nil, 1, 20, 0)
	if empty.Data == nil {
		t.Error("expected nil data to be normalized to an empty slice")
	}
}
