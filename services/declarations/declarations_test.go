package declarations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticLookup(t *testing.T) {
	source := NewStatic()
	ctx := context.Background()

	decl, ok, err := source.Lookup(ctx, 241)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ANDRZEJ ADAMCZYK", decl.FullName)
	require.NotNil(t, decl.House)
	require.NotNil(t, decl.Farm)
	require.Len(t, decl.Apartments, 1)
	require.Len(t, decl.Obligations, 2)

	decl, ok, err = source.Lookup(ctx, 242)
	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, decl.House)
	require.Len(t, decl.Apartments, 2)
}

func TestStaticLookupAbsent(t *testing.T) {
	source := NewStatic()

	decl, ok, err := source.Lookup(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, decl)
}
