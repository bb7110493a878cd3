package tim2

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icey9527/tim2/texture"
)

func TestTextureDB(t *testing.T) {
	db, err := NewTextureDB(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer db.Close()

	path, err := db.FindFileByCRC("DEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, "", path)

	id, err := db.AddFile("DEADBEEF", "a.tex", 2, 1)
	require.NoError(t, err)

	require.NoError(t, db.AddPicture(id, 0, texture.Picture{Width: 8, Height: 8, ColorCount: 16, Format: 4}))

	path, err = db.FindFileByCRC("DEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, "a.tex", path)

	// Adding the same container again reuses the existing row.
	again, err := db.AddFile("DEADBEEF", "b.tex", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	path, err = db.FindFileByCRC("DEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, "a.tex", path)
}
