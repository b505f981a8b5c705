package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pharmacy-storefront/internal/domain"
)

func TestFile_LoadAbsent(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "cart.json"))

	_, err := f.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFile_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	f := NewFile(filepath.Join(t.TempDir(), "cart.json"))

	require.NoError(t, f.Save(ctx, []byte(`[{"id":"med-001","qty":2}]`)))

	data, err := f.Load(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"med-001","qty":2}]`, string(data))
}

func TestFile_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	f := NewFile(filepath.Join(t.TempDir(), "cart.json"))

	require.NoError(t, f.Save(ctx, []byte(`[{"id":"a","qty":1}]`)))
	require.NoError(t, f.Save(ctx, []byte(`[]`)))

	data, err := f.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestFile_SaveCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	f := NewFile(filepath.Join(t.TempDir(), "nested", "deep", "cart.json"))

	require.NoError(t, f.Save(ctx, []byte("[]")))

	data, err := f.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestFile_Ping(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "cart.json"))
	require.NoError(t, f.Ping(context.Background()))
}
