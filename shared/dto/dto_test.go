package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"busbooking/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		defaults bool
		want     dto.QueryParams
	}{
		{
			name:     "explicit values",
			url:      "/v1/buses?page=2&limit=5&sort_by=price&sort_dir=desc",
			defaults: true,
			want:     dto.QueryParams{Page: 2, Limit: 5, SortBy: "price", SortDir: dto.SortDirDesc},
		},
		{
			name:     "defaults applied",
			url:      "/v1/buses",
			defaults: true,
			want:     dto.QueryParams{Page: 1, Limit: 10, SortBy: "departure_date", SortDir: dto.SortDirAsc},
		},
		{
			name:     "invalid values ignored without defaults",
			url:      "/v1/buses?page=-1&limit=abc&sort_dir=sideways",
			defaults: false,
			want:     dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.url, nil)

			var q dto.QueryParams
			q.FromRequest(request, tt.defaults)

			assert.Equal(t, tt.want, q)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := dto.Paginate(items, dto.QueryParams{Page: 2, Limit: 3})
	assert.Equal(t, []int{4, 5, 6}, page.Items)
	assert.Equal(t, dto.Metadata{Page: 2, Limit: 3, Total: 7, TotalPage: 3}, page.Metadata)

	last := dto.Paginate(items, dto.QueryParams{Page: 3, Limit: 3})
	assert.Equal(t, []int{7}, last.Items)

	beyond := dto.Paginate(items, dto.QueryParams{Page: 9, Limit: 3})
	assert.Empty(t, beyond.Items)

	all := dto.Paginate(items, dto.QueryParams{})
	assert.Len(t, all.Items, 7)
	assert.Equal(t, 1, all.Metadata.TotalPage)
}
