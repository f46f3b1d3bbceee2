package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityFeed_NewestFirstAndBounded(t *testing.T) {
	f := NewActivityFeed(3)
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		_ = f.Record(ctx, OrderPlacedMsg{EventID: fmt.Sprint("e", i), OrderID: int64(i)})
	}

	got := f.Recent(10)
	ids := make([]int64, 0, len(got))
	for _, m := range got {
		ids = append(ids, m.OrderID)
	}
	assert.Equal(t, []int64{5, 4, 3}, ids)
	assert.Len(t, f.Recent(2), 2)
}

func TestActivityFeed_DropsDuplicates(t *testing.T) {
	f := NewActivityFeed(5)
	ctx := context.Background()
	_ = f.Record(ctx, OrderPlacedMsg{EventID: "e1", OrderID: 1})
	_ = f.Record(ctx, OrderPlacedMsg{EventID: "e1", OrderID: 1})

	assert.Len(t, f.Recent(0), 1)
}
