package monitor

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreadcrumbsBound(t *testing.T) {
	testCases := []struct {
		name     string
		capacity int
		inserts  int
		expected []string
	}{
		{name: "below_capacity", capacity: 3, inserts: 2, expected: []string{"0", "1"}},
		{name: "at_capacity", capacity: 3, inserts: 3, expected: []string{"0", "1", "2"}},
		{name: "past_capacity_evicts_oldest", capacity: 3, inserts: 7, expected: []string{"4", "5", "6"}},
		{name: "default_capacity", capacity: 0, inserts: 150, expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBreadcrumbs(tc.capacity)
			for i := 0; i < tc.inserts; i++ {
				b.Add(Breadcrumb{Message: strconv.Itoa(i)})
			}

			list := b.List()
			if tc.expected == nil {
				assert.Len(t, list, DefaultBreadcrumbCapacity)
				assert.Equal(t, "50", list[0].Message)
				assert.Equal(t, "149", list[len(list)-1].Message)
				return
			}

			got := make([]string, len(list))
			for i, c := range list {
				got[i] = c.Message
			}
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, len(tc.expected), b.Len())
		})
	}
}

func TestBreadcrumbsLast(t *testing.T) {
	b := NewBreadcrumbs(4)
	for i := 0; i < 6; i++ {
		b.Add(Breadcrumb{Message: strconv.Itoa(i)})
	}

	last := b.Last(2)
	assert.Equal(t, "4", last[0].Message)
	assert.Equal(t, "5", last[1].Message)
	assert.Len(t, b.Last(10), 4)

	b.Clear()
	assert.Empty(t, b.List())
}
