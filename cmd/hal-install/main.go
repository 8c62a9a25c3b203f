package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/fairhill1/hal-install/internal/binary"
	"github.com/fairhill1/hal-install/internal/platform"
	"github.com/fairhill1/hal-install/internal/ui"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

const usage = "Usage: hal-install\n\nInstalls the latest hal release to ~/.local/bin/hal."

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "--version":
			fmt.Printf("hal-install %s\n", Version)
			return nil
		case "-h", "--help":
			fmt.Println(usage)
			return nil
		default:
			return fmt.Errorf("unexpected argument: %s\n%s", args[0], usage)
		}
	}

	// Interrupts cancel the transfer; the temp file is removed on the way out
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &binary.FilesystemError{Op: "get home directory", Path: "$HOME", Cause: err}
	}

	return runInstall(ctx, options{
		detector:  platform.NewDetector(),
		homeDir:   homeDir,
		pathEnv:   os.Getenv("PATH"),
		shellEnv:  os.Getenv("SHELL"),
		lookPath:  exec.LookPath,
		transfers: binary.DefaultTransfers(),
		out:       ui.New(os.Stdout),
	})
}
