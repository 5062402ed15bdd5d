package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lightpilot/lightpilot/internal/app"
	"github.com/lightpilot/lightpilot/internal/bridge"
	"github.com/lightpilot/lightpilot/internal/config"
	"github.com/lightpilot/lightpilot/internal/scene"
	"github.com/lightpilot/lightpilot/internal/viewport"
)

func main() {
	scenePath := flag.String("scene", "", "Scene YAML file (empty: built-in demo scene)")
	configPath := flag.String("config", "", "Config YAML file")
	listen := flag.String("listen", "", "Live-link listen address (e.g. 127.0.0.1:8080), overrides config")
	origins := flag.String("origins", "", "Comma-separated allowed live-link origins")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *listen != "" {
		cfg.Link.Listen = *listen
	}

	var sc *scene.Scene
	if *scenePath != "" {
		sc, err = scene.Load(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	} else {
		sc = scene.Demo()
	}

	var link *bridge.Broadcaster
	if cfg.Link.Listen != "" {
		link = bridge.NewBroadcaster(cfg.Link.BroadcastThrottle, cfg.Link.SnapshotInterval)
		link.PublishSnapshot(bridge.SnapshotOf(sc))

		server := bridge.NewServer(link, splitOrigins(*origins))
		mux := http.NewServeMux()
		server.SetupRoutes(mux)
		go func() {
			if err := http.ListenAndServe(cfg.Link.Listen, mux); err != nil {
				log.Printf("live-link server: %v", err)
			}
		}()
	}

	m := app.New(cfg, sc, viewport.New(), link)
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if link != nil {
		link.Close()
	}

	// Persist the scene (and its show-coordinates preference) when it
	// came from a file.
	if *scenePath != "" {
		if fm, ok := final.(app.Model); ok {
			if err := fm.Scene().Save(*scenePath); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to save scene: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
