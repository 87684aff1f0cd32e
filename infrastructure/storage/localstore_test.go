package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

func TestNewLocalStore(t *testing.T) {
	t.Run("cria o diretório de dados se não existir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "aninhado", "dados")

		store, err := NewLocalStore(dir)

		require.NoError(t, err)
		require.NotNil(t, store)
		assert.DirExists(t, dir)
	})

	t.Run("rejeita diretório vazio", func(t *testing.T) {
		_, err := NewLocalStore("")

		assert.Error(t, err)
	})
}

func TestPutAndGet(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	in := document{Name: "Ana", Total: 1234.56}
	require.NoError(t, store.Put("ledger", in))

	var out document
	found, err := store.Get("ledger", &out)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestGet_MissingKey(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	var out document
	found, err := store.Get("inexistente", &out)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestGet_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ledger.json"), []byte("{truncado"), 0o644))

	var out document
	found, err := store.Get("ledger", &out)

	assert.Error(t, err)
	assert.False(t, found)
}

func TestPut_OverwritesWithoutLeavingTempFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put("ledger", document{Name: "Ana"}))
	require.NoError(t, store.Put("ledger", document{Name: "Beto"}))

	var out document
	found, err := store.Get("ledger", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Beto", out.Name)

	assert.NoFileExists(t, filepath.Join(dir, "ledger.json.tmp"))
}

func TestDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("ledger", document{Name: "Ana"}))
	require.NoError(t, store.Delete("ledger"))

	var out document
	found, err := store.Get("ledger", &out)
	require.NoError(t, err)
	assert.False(t, found)

	// Remover chave inexistente não é erro
	assert.NoError(t, store.Delete("ledger"))
}
