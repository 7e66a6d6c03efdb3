/*
Package main implements the rankdex vocabulary server and CLI application.

Rankdex indexes a vocabulary of words with relevance scores and serves ranked
prefix completions: given a prefix, the k highest-scored words starting with
it, with exact-score ties broken alphabetically. The index supports dynamic
insert, score update and removal with synchronous pruning.

# Usage

Start the msgpack IPC server with the default snapshot:

	rankdex

Use a custom snapshot and enable debug logging:

	rankdex -data /path/to/words.csv -d

Run the interactive line-command session instead of the server:

	rankdex -c

# Command session

The -c mode reads one command per line from stdin and prints one result line
per query to stdout:

	load <path>
	save <path>
	insert <word> <score>
	remove <word>         -> OK | MISS
	contains <word>       -> YES | NO
	complete <prefix> <k> -> comma-joined words, best first
	stats                 -> words=N height=N nodes=N
	quit

Malformed or unknown commands are ignored, which keeps the stream simple for
automated callers. All logging goes to stderr.

# IPC Protocol

The default mode speaks msgpack over stdin/stdout; see pkg/server for the
message shapes. Completion requests are processed synchronously with
microsecond timing information included in responses.

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run:

	[server]
	max_limit = 64
	max_prefix = 60

	[cli]
	default_limit = 10
	max_prefix = 60

	[snapshot]
	path = "data/words.csv"

# Snapshots

The vocabulary snapshot is a two-column CSV of word,score records. Generate
one from a frequency list with the mkwords tool, or produce it from the
session's save command.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avasker/rankdex/internal/cli"
	"github.com/avasker/rankdex/internal/logger"
	"github.com/avasker/rankdex/internal/utils"
	"github.com/avasker/rankdex/pkg/config"
	"github.com/avasker/rankdex/pkg/index"
	"github.com/avasker/rankdex/pkg/server"
	"github.com/avasker/rankdex/pkg/snapshot"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "rankdex"
	gh      = "https://github.com/avasker/rankdex"
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

// main wires the flags, config, snapshot and adapters together. It holds no
// indexing logic of its own.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Vocabulary snapshot CSV to load at startup (default from config)")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive command session instead of the IPC server")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	resolvedConfigPath := *configPath
	if resolvedConfigPath == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			log.Warnf("Failed to determine config path: %v. Using built-in defaults...", err)
		}
		resolvedConfigPath = defaultPath
	}

	var appConfig *config.Config
	if resolvedConfigPath != "" {
		loaded, err := config.InitConfig(resolvedConfigPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		appConfig = loaded
		log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(resolvedConfigPath))
	} else {
		appConfig = config.DefaultConfig()
	}

	snapshotPath := *dataPath
	if snapshotPath == "" {
		snapshotPath = appConfig.Snapshot.Path
	}

	idx := index.New()
	if utils.FileExists(snapshotPath) {
		entries, err := snapshot.Load(snapshotPath)
		if err != nil {
			log.Fatalf("Failed to load snapshot %s: %v", snapshotPath, err)
		}
		for _, e := range entries {
			idx.Insert(e.Word, e.Score)
		}
		st := idx.Stats()
		log.Debugf("Snapshot loaded: %d words, %d nodes", st.Words, st.Nodes)
	} else {
		log.Warnf("No snapshot at %s, starting with an empty index", snapshotPath)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		session := cli.NewSession(idx, appConfig)
		if err := session.Start(); err != nil {
			log.Fatalf("Session error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(idx, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// printVersion displays a styled version banner on stderr.
func printVersion() {
	l := logger.Default("")

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ rankdex ] score-ranked prefix completion")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}
