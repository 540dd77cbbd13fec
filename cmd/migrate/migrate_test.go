package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/pkg/mockdata"
)

func TestSplitDDLStatements(t *testing.T) {
	ddl := `-- products table
CREATE TABLE products (
  product_id STRING(36) NOT NULL,
) PRIMARY KEY (product_id);

-- index
CREATE INDEX idx_products_category ON products(category);
`
	stmts := splitDDLStatements(ddl)
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "CREATE TABLE products")
	assert.Equal(t, "CREATE INDEX idx_products_category ON products(category)", stmts[1])

	assert.Empty(t, splitDDLStatements("-- nothing here\n\n"))
}

func TestSeedPlan(t *testing.T) {
	plan, err := seedPlan(mockdata.NewGenerator(7).Products(12))
	require.NoError(t, err)
	assert.Equal(t, 12, plan.Count())
	assert.Len(t, plan.Batches(5), 3)
}

func TestOptionsPaths(t *testing.T) {
	opts := &options{projectID: "p", instanceID: "i", databaseID: "d"}
	assert.Equal(t, "projects/p/instances/i", opts.instancePath())
	assert.Equal(t, "projects/p/instances/i/databases/d", opts.databasePath())
}
