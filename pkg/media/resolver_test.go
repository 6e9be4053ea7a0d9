package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "audio"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "audio", "intro.mp3"), []byte("mp3data"), 0644))

	r := NewResolver(dir)
	data, err := r.Resolve(KindAudio, "intro.mp3")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3data"), data)
}

func TestResolveMissingFile(t *testing.T) {
	r := NewResolver(t.TempDir())

	_, err := r.Resolve(KindImage, "missing.jpg")
	assert.True(t, errors.Is(err, ErrMediaNotFound))
}

func TestResolveRejectsTraversal(t *testing.T) {
	r := NewResolver(t.TempDir())

	_, err := r.Resolve(KindImage, "../../etc/passwd")
	assert.True(t, errors.Is(err, ErrMediaNotFound))
}
