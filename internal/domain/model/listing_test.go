package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   PageQuery
		want PageQuery
	}{
		{"zero value", PageQuery{}, PageQuery{Page: 1, PageSize: DefaultPageSize}},
		{"valid untouched", PageQuery{Page: 3, PageSize: 20}, PageQuery{Page: 3, PageSize: 20}},
		{"negative page", PageQuery{Page: -1, PageSize: 10}, PageQuery{Page: 1, PageSize: 10}},
		{"page size over cap", PageQuery{Page: 1, PageSize: 500}, PageQuery{Page: 1, PageSize: MaxPageSize}},
		{"page size at cap", PageQuery{Page: 1, PageSize: 50}, PageQuery{Page: 1, PageSize: 50}},
		{"search trimmed", PageQuery{Page: 1, PageSize: 10, Search: "  go  "}, PageQuery{Page: 1, PageSize: 10, Search: "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPageQuery_HasSearch(t *testing.T) {
	t.Parallel()

	assert.False(t, PageQuery{}.HasSearch())
	assert.True(t, PageQuery{Search: "go"}.HasSearch())
}
