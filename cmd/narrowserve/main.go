// Copyright 2025 The NarrowServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the search suggestion server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

NarrowServe generates ranked search suggestions for a chat client's query
field: as the user types, it classifies the text into structured narrowing
operators, matches streams and people by word prefix, and merges the
sources into one capped, ordered list. Selecting a suggestion resolves its
label back into a concrete narrowing action.

The engine keeps a candidate catalog rebuilt from the roster (known
streams and people) and indexed with a Patricia trie for prefix
retrieval. Suggestion order is fixed by source priority: the operators
candidate first, then streams, then private-message recipients, then
senders, each source capped individually.

# Usage

Start the server with a roster file:

	narrowserve -roster roster.toml

Enable debug mode:

	narrowserve -roster roster.toml -d

Run in CLI mode for interactive testing:

	narrowserve -roster roster.toml -c

Roster files are TOML for hand editing or msgpack binaries for machine
exchange:

	streams = ["general", "design"]

	[[people]]
	full_name = "Alice A"
	email = "alice@x.com"

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_items = 20
	max_query = 60

	[suggest]
	source_cap = 4

	[ui]
	blur_clear_ms = 100

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. A suggestion
request carries the typed query; the response carries ranked labels with
rendered descriptions and timing information:

	{"id": "req1", "cmd": "suggest", "q": "gen"}
	{"id": "req1", "s": [{"l": "gen", "d": "Search for gen"}, ...], "c": 2, "t": 87}

Selection resolves a label into a narrow and reports the resulting field
text:

	{"id": "req2", "cmd": "resolve", "label": "stream:general"}
	{"id": "req2", "text": "stream:general", "blur": true}

Roster changes rebuild the catalog wholesale:

	{"id": "req3", "cmd": "rebuild", "streams": [...], "people": [...]}

# CLI Mode

CLI mode provides an interactive interface for testing and debugging the
suggestion flow. It reads queries from stdin and displays ranked
suggestions; '!pick <label>' simulates selecting one.

This mode is primarily intended for development and testing new features
before deploying to server mode.

# Suggestion Engine

The core functionality is provided by the suggest package:

	engine := suggest.NewEngine(narrow.NewRecorder())
	engine.Rebuild(streams, people)
	labels := engine.Suggest("gen")

The engine is rebuilt on roster changes and queried per keystroke; both
paths run atomically under one lock, so a query never observes a
half-built catalog.

# Command Line Flags

The following flags control application behavior:

	-roster string
	    Roster file to load (.toml or .bin)
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-cap int
	    Per-source suggestion cap (default from config)
	-markup
	    CLI mode: show raw description markup instead of flattened text
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/narrowserve/internal/cli"
	"github.com/bastiangx/narrowserve/pkg/config"
	"github.com/bastiangx/narrowserve/pkg/narrow"
	"github.com/bastiangx/narrowserve/pkg/roster"
	"github.com/bastiangx/narrowserve/pkg/server"
	"github.com/bastiangx/narrowserve/pkg/suggest"
)

const (
	Version = "0.3.0-beta"
	AppName = "narrowserve"
	gh      = "https://github.com/bastiangx/narrowserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	rosterPath := flag.String("roster", defaultConfig.CLI.DefaultRoster, "Roster file to load (.toml or .bin)")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	sourceCap := flag.Int("cap", defaultConfig.Suggest.SourceCap, "Per-source suggestion cap")
	showMarkup := flag.Bool("markup", defaultConfig.CLI.ShowMarkup, "CLI mode: show raw description markup (DBG only)")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ NarrowServe ] Serves really fast search suggestions!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	narrower := narrow.NewRecorder()
	engine := suggest.NewEngine(narrower)
	if *sourceCap != defaultConfig.Suggest.SourceCap {
		engine.SetSourceCap(*sourceCap)
	} else {
		engine.SetSourceCap(appConfig.Suggest.SourceCap)
	}

	if *rosterPath != "" {
		r, err := roster.Load(*rosterPath)
		if err != nil {
			log.Warnf("Failed to load roster %s: %v. Starting with an empty catalog...", *rosterPath, err)
		} else {
			engine.Rebuild(r.Streams, r.People)
			log.Debugf("Roster loaded: %d streams, %d people", len(r.Streams), len(r.People))
		}
	} else {
		log.Warn("No roster specified, running with an empty catalog...")
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"maxQuery", appConfig.Server.MaxQuery,
			"sourceCap", *sourceCap,
			"showMarkup", *showMarkup)

		session := suggest.NewSession(narrower)
		session.SetClearDelay(time.Duration(appConfig.UI.BlurClearMs) * time.Millisecond)

		inputHandler := cli.NewInputHandler(engine, session, appConfig.Server.MaxQuery, *showMarkup)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig)

	showStartupInfo(*rosterPath)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(rosterPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=============")
	println(" NarrowServe ")
	println("=============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("roster: ( %s )", rosterPath)
	log.Info("status: ready")
	println("=============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
