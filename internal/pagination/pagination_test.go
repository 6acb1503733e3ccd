package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClampsPageNumber(t *testing.T) {
	tests := []struct {
		name   string
		total  int64
		raw    string
		number int
		pages  int
	}{
		{"default page", 13, "", 1, 2},
		{"explicit first", 13, "1", 1, 2},
		{"second page", 13, "2", 2, 2},
		{"past the end", 13, "99", 2, 2},
		{"below one", 13, "0", 1, 2},
		{"negative", 13, "-3", 1, 2},
		{"garbage", 13, "abc", 1, 2},
		{"empty listing", 0, "5", 1, 1},
		{"exact multiple", 20, "3", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.total, tt.raw)
			assert.Equal(t, tt.number, p.Number)
			assert.Equal(t, tt.pages, p.Pages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestPageMetadata(t *testing.T) {
	p := New(13, "1")
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 2, p.Next())

	p = New(13, "2")
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 1, p.Prev())
}
