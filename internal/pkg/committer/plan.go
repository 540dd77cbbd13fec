// Package committer collects Spanner mutations into a plan and applies them
// atomically, or in bounded batches for bulk loads such as catalog seeding.
package committer

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
)

// DefaultBatchSize keeps a batch well below Spanner's per-commit mutation limit.
const DefaultBatchSize = 500

// CommitPlan is an ordered list of mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add appends a mutation. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple appends several mutations.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Batches splits the plan into consecutive chunks of at most size mutations.
func (cp *CommitPlan) Batches(size int) [][]*spanner.Mutation {
	if size <= 0 {
		size = DefaultBatchSize
	}

	batches := make([][]*spanner.Mutation, 0, (len(cp.mutations)+size-1)/size)
	for start := 0; start < len(cp.mutations); start += size {
		end := min(start+size, len(cp.mutations))
		batches = append(batches, cp.mutations[start:end])
	}
	return batches
}

// Applier is the subset of *spanner.Client the committer needs.
type Applier interface {
	Apply(ctx context.Context, ms []*spanner.Mutation, opts ...spanner.ApplyOption) (time.Time, error)
}

// Committer applies CommitPlans.
type Committer struct {
	client Applier
}

// NewCommitter creates a new Committer.
func NewCommitter(client Applier) *Committer {
	return &Committer{client: client}
}

// Apply executes the whole plan in one transaction.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return errors.Wrap(err, "failed to apply commit plan")
	}
	return nil
}

// ApplyInBatches commits the plan batch by batch. Batches before a failing
// one stay committed; the error reports how far it got.
func (c *Committer) ApplyInBatches(ctx context.Context, plan *CommitPlan, size int) (int, error) {
	applied := 0
	for i, batch := range plan.Batches(size) {
		if _, err := c.client.Apply(ctx, batch); err != nil {
			return applied, errors.Wrapf(err, "failed to apply batch %d (%d mutations committed)", i, applied)
		}
		applied += len(batch)
	}
	return applied, nil
}
