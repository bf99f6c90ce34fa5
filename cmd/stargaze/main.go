package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"stargaze/internal/audit"
	"stargaze/internal/browser"
	"stargaze/internal/config"
	"stargaze/internal/domain"
	"stargaze/internal/log"
	"stargaze/internal/service"
	"stargaze/internal/starfeed"
	"stargaze/internal/store"
	"stargaze/internal/tui"
	"stargaze/internal/tui/styles"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	var showVersion, clearCache bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&clearCache, "clear-cache", false, "remove cached star data")
	flag.Parse()

	if showVersion {
		fmt.Printf("stargaze %s\n", Version)
		return
	}

	if clearCache {
		if err := config.ClearCache(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Cache cleared")
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting stargaze", "version", Version, "environment", cfg.Environment)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	client := starfeed.NewClient(cfg.Server.URL, cfg.Server.Token, logger)

	starStore, err := store.NewStarStore(config.CachePath(), cfg.Server.URL)
	if err != nil {
		logger.Warn("failed to open star cache, running without persistence", "error", err)
		starStore, _ = store.NewStarStore("", "")
	}
	defer starStore.Close()

	starSvc := service.NewStarService(client, starStore, logger)
	launcher := browser.NewLauncher(cfg.Browser.Command, logger)

	// The render audit is a development-only collaborator; it never
	// runs in production builds.
	var auditor *audit.Auditor
	if cfg.IsDevelopment() {
		auditor = audit.New(logger)
		logger.Info("render audit enabled")
	}

	model := tui.NewModel(starSvc, launcher, auditor, cfg.UI.ShowDescriptions)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when not configured
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to stargaze!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	// Loop until we get a reachable backend URL
	var serverURL string
	for {
		fmt.Print("Enter your star feed URL (e.g., http://localhost:8080): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		serverURL = strings.TrimRight(strings.TrimSpace(input), "/")

		if serverURL == "" {
			fmt.Println("Server URL cannot be empty. Please try again.")
			continue
		}

		fmt.Println()
		if err := probeServerWithSpinner(serverURL, logger); err != nil {
			fmt.Printf("\n✗ Could not reach the star feed: %v\n", err)
			fmt.Println("Please check the URL and try again.")
			fmt.Println()
			continue
		}
		break
	}

	cfg.Server.URL = serverURL

	// Optional token, read without echo
	fmt.Print("API token (leave empty if the feed is public): ")
	tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	cfg.Server.Token = strings.TrimSpace(string(tokenBytes))

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run stargaze again to start the application.")

	return nil
}

// probeServerWithSpinner checks backend reachability with a visual spinner
func probeServerWithSpinner(serverURL string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := starfeed.NewClient(serverURL, "", logger)

	resultCh := make(chan error, 1)
	go func() {
		resultCh <- client.Ping(ctx)
	}()

	frame := 0
	fmt.Printf("\r%s Checking the star feed...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			// An auth rejection still proves the feed is there; the
			// token is collected right after this probe.
			if err != nil && !errors.Is(err, domain.ErrAuthFailed) {
				return err
			}
			fmt.Println("✓ Star feed is reachable")
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking the star feed...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("probe timed out")
		}
	}
}
