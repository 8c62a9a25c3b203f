package main

import (
	"context"
	"fmt"

	"github.com/fairhill1/hal-install/internal/binary"
	"github.com/fairhill1/hal-install/internal/platform"
	"github.com/fairhill1/hal-install/internal/shell"
	"github.com/fairhill1/hal-install/internal/ui"
)

// apiKeyEnvVars are the provider keys hal reads on first run.
var apiKeyEnvVars = []string{
	"HAL_API_KEY_GEMINI",
	"HAL_API_KEY_OPENAI",
	"HAL_API_KEY_ANTHROPIC",
	"HAL_API_KEY_OPENROUTER",
}

// options carries every input the install run reads from the host
type options struct {
	detector  platform.Detector
	homeDir   string
	pathEnv   string
	shellEnv  string
	lookPath  binary.LookPathFunc
	transfers []binary.Transfer
	out       *ui.Printer
}

// runInstall resolves, fetches, installs, and advises, in that order.
// Every step before the advice is fatal on error.
func runInstall(ctx context.Context, opts options) error {
	p := opts.out

	// Step 1: Resolve platform
	p.Step("Detecting platform")
	host, err := opts.detector.Detect(ctx)
	if err != nil {
		return fmt.Errorf("detect platform: %w", err)
	}

	plat, err := platform.Resolve(host)
	if err != nil {
		return err
	}
	p.Detail(fmt.Sprintf("%s %s -> %s", host.OS, host.Arch, plat))

	// Step 2: Pick an HTTP client before touching the network
	transfer, err := binary.SelectTransfer(opts.lookPath, opts.transfers...)
	if err != nil {
		return err
	}

	mgr, err := binary.NewManager(binary.Config{
		HomeDir:  opts.homeDir,
		Transfer: transfer,
		Logger:   p,
	})
	if err != nil {
		return fmt.Errorf("create binary manager: %w", err)
	}

	// Step 3: Fetch and install
	artifact := mgr.Artifact(plat)
	p.Step(fmt.Sprintf("Installing %s", artifact.Filename))
	result, err := mgr.Install(ctx, plat)
	if err != nil {
		return err
	}
	p.Success(fmt.Sprintf("Installed %s to %s", binary.ToolHal, result.Path))

	// Step 4: Advise on PATH
	printAdvice(p, mgr.InstallDir(), shell.Advise(mgr.InstallDir(), shell.Environment{
		Path:    opts.pathEnv,
		Shell:   opts.shellEnv,
		HomeDir: opts.homeDir,
	}))

	printNextSteps(p)
	return nil
}

// printAdvice prints PATH guidance when the install dir is not on PATH
func printAdvice(p *ui.Printer, installDir string, advice *shell.Advice) {
	p.Blank()
	if advice.Status == shell.AlreadyOnPath {
		p.Success(fmt.Sprintf("%s is on your PATH", installDir))
		return
	}

	p.Warning(fmt.Sprintf("%s is not on your PATH", installDir))
	for _, g := range advice.Guidance {
		p.Blank()
		p.Detail(fmt.Sprintf("%s: add it for this session", g.Shell))
		p.Code(g.Export)
		p.Detail(fmt.Sprintf("%s: make it permanent (%s)", g.Shell, g.RCFile))
		p.Code(g.Persist)
	}
}

func printNextSteps(p *ui.Printer) {
	p.Blank()
	p.Step("Next steps")
	p.Detail("Set an API key for your provider, for example:")
	p.Code(fmt.Sprintf("export %s=...", apiKeyEnvVars[0]))
	p.Detail(fmt.Sprintf("Other providers: %s, %s, %s", apiKeyEnvVars[1], apiKeyEnvVars[2], apiKeyEnvVars[3]))
	p.Detail(fmt.Sprintf("Then run: %s", binary.ToolHal))
}
