package committer

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplier struct {
	calls  [][]*spanner.Mutation
	failOn int // 1-based call number that fails; 0 never fails
}

func (f *fakeApplier) Apply(_ context.Context, ms []*spanner.Mutation, _ ...spanner.ApplyOption) (time.Time, error) {
	f.calls = append(f.calls, ms)
	if f.failOn == len(f.calls) {
		return time.Time{}, errors.New("commit rejected")
	}
	return time.Now(), nil
}

func insertMuts(n int) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, n)
	for i := range muts {
		muts[i] = spanner.Insert("products", []string{"product_id"}, []interface{}{i})
	}
	return muts
}

func TestCommitPlan(t *testing.T) {
	t.Run("ignores nil mutations", func(t *testing.T) {
		plan := NewPlan()
		plan.Add(nil)
		assert.True(t, plan.IsEmpty())

		plan.AddMultiple(insertMuts(3))
		assert.Equal(t, 3, plan.Count())
	})

	t.Run("batches preserve order and size", func(t *testing.T) {
		plan := NewPlan()
		muts := insertMuts(7)
		plan.AddMultiple(muts)

		batches := plan.Batches(3)
		require.Len(t, batches, 3)
		assert.Len(t, batches[0], 3)
		assert.Len(t, batches[2], 1)
		assert.Same(t, muts[6], batches[2][0])
	})

	t.Run("non-positive size falls back to default", func(t *testing.T) {
		plan := NewPlan()
		plan.AddMultiple(insertMuts(2))
		assert.Len(t, plan.Batches(0), 1)
	})
}

func TestCommitter_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("empty plan makes no call", func(t *testing.T) {
		fake := &fakeApplier{}
		require.NoError(t, NewCommitter(fake).Apply(ctx, NewPlan()))
		assert.Empty(t, fake.calls)
	})

	t.Run("applies all mutations at once", func(t *testing.T) {
		fake := &fakeApplier{}
		plan := NewPlan()
		plan.AddMultiple(insertMuts(4))

		require.NoError(t, NewCommitter(fake).Apply(ctx, plan))
		require.Len(t, fake.calls, 1)
		assert.Len(t, fake.calls[0], 4)
	})

	t.Run("wraps client errors", func(t *testing.T) {
		fake := &fakeApplier{failOn: 1}
		plan := NewPlan()
		plan.AddMultiple(insertMuts(1))

		err := NewCommitter(fake).Apply(ctx, plan)
		assert.ErrorContains(t, err, "failed to apply commit plan")
	})
}

func TestCommitter_ApplyInBatches(t *testing.T) {
	ctx := context.Background()

	t.Run("commits every batch", func(t *testing.T) {
		fake := &fakeApplier{}
		plan := NewPlan()
		plan.AddMultiple(insertMuts(5))

		n, err := NewCommitter(fake).ApplyInBatches(ctx, plan, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Len(t, fake.calls, 3)
	})

	t.Run("stops at the failing batch", func(t *testing.T) {
		fake := &fakeApplier{failOn: 2}
		plan := NewPlan()
		plan.AddMultiple(insertMuts(5))

		n, err := NewCommitter(fake).ApplyInBatches(ctx, plan, 2)
		assert.Error(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, fake.calls, 2)
	})
}
