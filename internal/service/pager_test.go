package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
	"github.com/pkordes/bikeshare-explorer/internal/service"
)

// rows returns a dataset of n trips whose hour identifies the row index.
func rows(n int) domain.Dataset {
	records := make([]domain.TripRecord, n)
	for i := range records {
		records[i] = trip(at(1, 2, 0).Add(time.Duration(i)*time.Hour), "A", "B", int64(i))
	}
	return dataset(records...)
}

// durations extracts the row indexes encoded in TripDuration.
func durations(p domain.Page) []int64 {
	out := make([]int64, len(p.Records))
	for i, r := range p.Records {
		out[i] = r.TripDuration
	}
	return out
}

func TestPager_TwelveRows(t *testing.T) {
	p := service.NewPager(rows(12))
	assert.False(t, p.Started())

	first := p.Next()
	assert.True(t, p.Started())
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 0, first.Offset)
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, durations(first))

	second := p.Next()
	assert.Equal(t, 5, second.Offset)
	assert.Equal(t, []int64{5, 6, 7, 8, 9}, durations(second))

	third := p.Next()
	assert.Equal(t, []int64{10, 11}, durations(third))
	assert.Equal(t, 0, p.Remaining())

	fourth := p.Next()
	assert.True(t, fourth.IsEmpty())
	assert.True(t, p.Next().IsEmpty(), "past the end stays empty")

	p.Reset()
	assert.False(t, p.Started())
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, durations(p.Next()))
}

func TestPager_EmptyDataset(t *testing.T) {
	p := service.NewPager(dataset())

	page := p.Next()

	require.NotNil(t, page.Records)
	assert.True(t, page.IsEmpty())
}

func TestPager_PageDoesNotAliasLaterRows(t *testing.T) {
	p := service.NewPager(rows(7))

	page := p.Next()
	page.Records = append(page.Records, domain.TripRecord{TripDuration: 99})

	assert.Equal(t, []int64{5, 6}, durations(p.Next()))
}
