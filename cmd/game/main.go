package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sunnyrun/internal/application/game"
	"github.com/younwookim/sunnyrun/internal/application/scene"
	"github.com/younwookim/sunnyrun/internal/application/scene/playing"
	"github.com/younwookim/sunnyrun/internal/application/scene/title"
	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
	"github.com/younwookim/sunnyrun/internal/infrastructure/levelstore"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	levelName := flag.String("level", "demo", "Level name under <config>/levels")
	levelFile := flag.String("file", "", "Level file to play instead of -level (.json or .tmx)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and print the final state")
	jsonFlag := flag.Bool("json", false, "Print the replay summary as JSON")
	watchFlag := flag.Bool("watch", false, "Reload the level when its file changes on disk")
	cameraFlag := flag.String("camera", "", "Camera mode override: follow or center")
	skipTitle := flag.Bool("notitle", false, "Start playing without the title screen")
	hitboxes := flag.Bool("hitboxes", false, "Draw hitboxes and hidden geometry")
	flag.Parse()

	// Load configurations from disk, or from the embedded filesystem
	var loader *config.Loader
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			log.Fatalf("Failed to get config subfs: %v", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *cameraFlag != "" {
		cfg.Physics.Camera.Mode = *cameraFlag
	}

	level, levelPath, err := loadStartLevel(loader, *configDir, *levelName, *levelFile)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if *replayFlag != "" {
		if _, err := runReplay(cfg, level, *replayFlag, *jsonFlag, os.Stdout); err != nil {
			log.Fatalf("Failed to replay %s: %v", *replayFlag, err)
		}
		return
	}

	opts := playing.Options{
		RecordPath:   *recordFlag,
		ShowHitboxes: *hitboxes,
	}
	if *watchFlag {
		if levelPath == "" {
			log.Fatalf("-watch needs a level on disk: use -config or -file")
		}
		watcher, err := levelstore.NewWatcher(filepath.Dir(levelPath))
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", levelPath, err)
		}
		defer func() { _ = watcher.Close() }()
		go func() {
			for err := range watcher.Errors {
				log.Printf("[watch] %v", err)
			}
		}()
		opts.Reloads = watcher.Events
		opts.LoadLevel = loadLevelFile
		log.Printf("[watch] watching %s", filepath.Dir(levelPath))
	}

	screenW := cfg.Physics.Display.ScreenWidth
	screenH := cfg.Physics.Display.ScreenHeight
	start := func() (scene.Scene, error) {
		return playing.New(cfg, level, opts)
	}

	var first scene.Scene
	if *skipTitle {
		if first, err = start(); err != nil {
			log.Fatalf("Failed to start level: %v", err)
		}
	} else {
		heading := level.Name
		if heading == "" {
			heading = level.ID
		}
		first = title.New(heading, screenW, screenH, start)
	}

	g := game.New(first, screenW, screenH)
	if t := cfg.Physics.Timing; t.MaxDelta > 0 || t.ResumeThreshold > 0 {
		maxDelta, resume := t.MaxDelta, t.ResumeThreshold
		if maxDelta <= 0 {
			maxDelta = game.DefaultMaxDelta
		}
		if resume <= 0 {
			resume = game.DefaultResumeThreshold
		}
		g.SetClock(game.NewFrameClock(maxDelta, resume))
	}

	// Set up ebiten
	ebiten.SetWindowSize(screenW*cfg.Physics.Display.Scale, screenH*cfg.Physics.Display.Scale)
	ebiten.SetWindowTitle("Sunny Run")
	if cfg.Physics.Display.Framerate > 0 {
		ebiten.SetTPS(cfg.Physics.Display.Framerate)
	}

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadStartLevel resolves the level to play. The returned path is the level
// file on disk, empty when the level comes from the embedded configs.
func loadStartLevel(loader *config.Loader, configDir, name, file string) (*config.LevelConfig, string, error) {
	if file != "" {
		lvl, err := loadLevelFile(file)
		return lvl, file, err
	}
	lvl, err := loader.LoadLevel(name)
	if err != nil {
		return nil, "", err
	}
	if configDir == "" {
		return lvl, "", nil
	}
	return lvl, filepath.Join(configDir, config.LevelPath(name)), nil
}
