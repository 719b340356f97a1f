// cmd/timeline/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"

	"github.com/bethropolis/timeline/internal/app"
	"github.com/bethropolis/timeline/internal/config"
	"github.com/bethropolis/timeline/internal/logger"
	"github.com/bethropolis/timeline/internal/session"
	"github.com/bethropolis/timeline/internal/timeline"
)

var (
	contentPath string
	sessionPath string
	savePath    string
)

func main() {
	// --- Argument & Flag Parsing ---
	flag.StringVar(&contentPath, "content", "", "Read the initial content from this file")
	flag.StringVar(&sessionPath, "session", "", "Restore a saved session (.json, .yaml, .toml)")
	flag.StringVar(&savePath, "save", "", "Write the session to this file after the script runs")

	var flags config.Flags
	args, err := flags.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	// --- Configuration ---
	cfg, err := config.Load(*flags.ConfigFilePath, &flags)
	if err != nil {
		stlog.Printf("Warning: %v, using defaults", err)
	}

	// --- Logger Initialization ---
	logOut, closeLog, err := logger.Open(cfg.Logger)
	if err != nil {
		stlog.Fatalf("%v", err)
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOut)
	logger.Infof("Starting %s %s", config.AppName, config.Version)

	if err := run(cfg, args); err != nil {
		logger.Errorf("Run failed: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		closeLog()
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

func run(cfg *config.Config, args []string) error {
	content, records, err := loadSource()
	if err != nil {
		return err
	}

	// --- Create and Run App ---
	timelineApp, err := app.NewApp(cfg, content, records, os.Stdout)
	if err != nil {
		return err
	}

	script, closeScript, err := openScript(args)
	if err != nil {
		return err
	}
	defer closeScript()

	runErr := timelineApp.Run(script)
	shutdownErr := timelineApp.Shutdown()

	// Whatever ran before a failing line is still worth keeping.
	if savePath != "" {
		if err := timelineApp.SaveSession(savePath); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	if shutdownErr != nil {
		return shutdownErr
	}

	fmt.Println(timelineApp.Timeline().Value())
	return nil
}

// loadSource reads the starting content, and prior records for a session.
func loadSource() (string, []timeline.Record, error) {
	if sessionPath != "" {
		if contentPath != "" {
			return "", nil, fmt.Errorf("-session and -content cannot be combined")
		}
		s, err := session.Load(sessionPath)
		if err != nil {
			return "", nil, err
		}
		return s.Content, s.Records, nil
	}

	if contentPath == "" {
		return "", nil, nil
	}
	data, err := os.ReadFile(contentPath)
	if err != nil {
		return "", nil, fmt.Errorf("read content: %w", err)
	}
	return string(data), nil, nil
}

// openScript returns the script named by the first argument, or stdin.
func openScript(args []string) (io.Reader, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, f.Close, nil
}
