package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     PageInfo
	}{
		{
			name: "middle page", page: 2, pageSize: 10, total: 23,
			want: PageInfo{CurrentPage: 2, TotalPages: 3, TotalCount: 23, HasNext: true, HasPrev: true},
		},
		{
			name: "first page", page: 1, pageSize: 10, total: 23,
			want: PageInfo{CurrentPage: 1, TotalPages: 3, TotalCount: 23, HasNext: true, HasPrev: false},
		},
		{
			name: "last page", page: 3, pageSize: 10, total: 23,
			want: PageInfo{CurrentPage: 3, TotalPages: 3, TotalCount: 23, HasNext: false, HasPrev: true},
		},
		{
			name: "exact fit", page: 2, pageSize: 10, total: 20,
			want: PageInfo{CurrentPage: 2, TotalPages: 2, TotalCount: 20, HasNext: false, HasPrev: true},
		},
		{
			name: "empty set", page: 1, pageSize: 10, total: 0,
			want: PageInfo{CurrentPage: 1, TotalPages: 0, TotalCount: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "single item", page: 1, pageSize: 10, total: 1,
			want: PageInfo{CurrentPage: 1, TotalPages: 1, TotalCount: 1, HasNext: false, HasPrev: false},
		},
		{
			name: "zero page size guarded", page: 1, pageSize: 0, total: 3,
			want: PageInfo{CurrentPage: 1, TotalPages: 3, TotalCount: 3, HasNext: true, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageInfo(tt.page, tt.pageSize, tt.total))
		})
	}
}
