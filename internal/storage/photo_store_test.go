package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/errs"
)

func TestMemoryPhotoStore(t *testing.T) {
	store := NewMemoryPhotoStore()

	require.NoError(t, store.Save("ph-1", strings.NewReader("photo bytes")))

	rc, err := store.Open("ph-1")
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "photo bytes", string(content))

	require.NoError(t, store.Delete("ph-1"))
	_, err = store.Open("ph-1")
	assert.ErrorIs(t, err, errs.ErrPhotoNotFound)
}

func TestMemoryPhotoStore_OpenMissing(t *testing.T) {
	store := NewMemoryPhotoStore()
	_, err := store.Open("ghost")
	assert.ErrorIs(t, err, errs.ErrPhotoNotFound)
}
