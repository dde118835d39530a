package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/sunnyrun/internal/infrastructure/levelstore"
)

const testdata = "../../internal/infrastructure/tiled/testdata"

func TestOpenStore_File(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "levels")

	store, err := openStore(dir, "")
	require.NoError(t, err)
	assert.IsType(t, &levelstore.FileStore{}, store)

	_, err = os.Stat(dir)
	assert.NoError(t, err, "level dir is created")
}

func TestImportMaps(t *testing.T) {
	mapsDir := t.TempDir()
	raw, err := os.ReadFile(filepath.Join(testdata, "meadow.tmx"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(mapsDir, "meadow.tmx"), raw, 0o644))

	store, err := levelstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	n, err := importMaps(store, mapsDir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	lvl, err := store.Load("meadow")
	require.NoError(t, err)
	assert.Equal(t, "meadow", lvl.ID)

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"meadow"}, names)
}

func TestImportMaps_Invalid(t *testing.T) {
	store, err := levelstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	// testdata also holds broken.tmx, which has no collisions layer
	_, err = importMaps(store, testdata)
	assert.Error(t, err)
}

func TestNewServer_SaveLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	store, err := levelstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	srv := newServer(":0", store, "demo")
	assert.Equal(t, ":0", srv.Addr)

	row := []int{1, 1}
	grid := [][]int{row, row}
	payload := map[string][][]int{}
	for _, name := range []string{"collisions", "gems", "enemies", "blockers", "deaths", "illusions"} {
		payload[name] = grid
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/save?name=meadow", bytes.NewReader(body))
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, strings.Count(buf.String(), "saved meadow"))
}
