package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/hrms/store/memstore"
)

func TestOpenMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, &config.Config{Store: config.StoreMemory})
	require.NoError(t, err)
	assert.IsType(t, &memstore.Store{}, s)
	assert.NoError(t, s.Ping(ctx))
	assert.NoError(t, Migrate(ctx, s))
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Store: "sqlite"})
	assert.EqualError(t, err, `unknown store "sqlite"`)
}
