package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/internal/catalog"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	require.NoError(t, err)

	ctx := context.Background()
	sales, err := c.Sales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 7)
	assert.Equal(t, "Microsoft", sales[0].Company)
	assert.Equal(t, "$48,430.25", sales[5].Amount)

	customers, err := c.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 7)
	assert.Equal(t, "Pending", customers[4].Status)

	salesStats, err := c.SalesStats(ctx)
	require.NoError(t, err)
	require.Len(t, salesStats, 4)
	assert.Equal(t, "Total Sale", salesStats[0].Title)

	customerStats, err := c.CustomerStats(ctx)
	require.NoError(t, err)
	require.Len(t, customerStats, 4)
	assert.Equal(t, "+12 customers", customerStats[0].Change)
	assert.Empty(t, customerStats[0].ChangePercent)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "products: []\n"},
		{"duplicate sale id", "sales:\n  - {id: 1}\n  - {id: 1}\n"},
		{"duplicate customer id", "customers:\n  - {id: 3}\n  - {id: 3}\n"},
		{"malformed", "sales: {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := catalog.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, catalog.ErrInvalidFixture)
		})
	}
}
