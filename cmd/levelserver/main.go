package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/younwookim/sunnyrun/internal/infrastructure/levelstore"
	"github.com/younwookim/sunnyrun/internal/infrastructure/tiled"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dir := flag.String("dir", "levels", "Directory of <name>.json level files")
	appName := flag.String("data", "", "Store levels in the per-user data dir of this app instead of -dir")
	importDir := flag.String("import", "", "Import every .tmx map in this directory before serving")
	defaultName := flag.String("default", "demo", "Level name used when a request has none")
	flag.Parse()

	store, err := openStore(*dir, *appName)
	if err != nil {
		log.Fatalf("[levelserver] %v", err)
	}

	if *importDir != "" {
		n, err := importMaps(store, *importDir)
		if err != nil {
			log.Fatalf("[levelserver] %v", err)
		}
		log.Printf("[levelserver] imported %d maps from %s", n, *importDir)
	}

	srv := newServer(*addr, store, *defaultName)
	log.Printf("[levelserver] listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("[levelserver] %v", err)
	}
}

// newServer serves the level endpoints over store. The handler logs saves
// and failures itself.
func newServer(addr string, store levelstore.Store, defaultName string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           levelstore.NewHandler(store, defaultName),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// openStore picks the gdata backend when appName is set, the file store otherwise
func openStore(dir, appName string) (levelstore.Store, error) {
	if appName != "" {
		s, err := levelstore.NewDataStore(appName)
		if err != nil {
			return nil, fmt.Errorf("open data store %s: %w", appName, err)
		}
		return s, nil
	}
	s, err := levelstore.NewFileStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open level dir %s: %w", dir, err)
	}
	return s, nil
}

// importMaps converts the TMX maps in dir and saves them under their file names
func importMaps(store levelstore.Store, dir string) (int, error) {
	levels, err := tiled.ImportAll(os.DirFS(dir), ".")
	if err != nil {
		return 0, err
	}
	for _, lvl := range levels {
		if err := store.Save(lvl.ID, lvl); err != nil {
			return 0, fmt.Errorf("save %s: %w", lvl.ID, err)
		}
	}
	return len(levels), nil
}
