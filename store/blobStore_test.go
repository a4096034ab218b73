package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskBlobStoreWrite(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskBlobStore(dir, "/static")

	// larger than one read chunk so the copy loop runs more than once
	payload := bytes.Repeat([]byte("x"), 3000)
	url, err := s.Write("Cafe Roma.jpg", bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, "/static/Cafe Roma.jpg", url)

	written, err := os.ReadFile(filepath.Join(dir, "Cafe Roma.jpg"))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestDiskBlobStoreOverwrites(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskBlobStore(dir, "/static")

	_, err := s.Write("a.jpg", bytes.NewReader([]byte("first")))
	require.NoError(t, err)
	_, err = s.Write("a.jpg", bytes.NewReader([]byte("second")))
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), written)
}
