package shell

import "fmt"

// Advise checks whether targetDir is on env.Path and, if not, returns
// configuration snippets for the detected shell.
func Advise(targetDir string, env Environment) *Advice {
	advice := &Advice{
		Status: CheckPath(targetDir, env.Path),
		Shell:  ParseShell(env.Shell),
	}

	if advice.Status == AlreadyOnPath {
		return advice
	}

	advice.Guidance = GuidanceFor(advice.Shell, targetDir, env.HomeDir)
	return advice
}

// GuidanceFor returns the snippets that put targetDir on PATH.
// Unknown shells get the bash and zsh snippets.
func GuidanceFor(shell ShellType, targetDir, homeDir string) []Guidance {
	shells := []ShellType{shell}
	if !shell.IsValid() {
		shells = []ShellType{ShellBash, ShellZsh}
	}

	dir := DisplayPath(targetDir, homeDir, "$HOME")

	guidance := make([]Guidance, 0, len(shells))
	for _, s := range shells {
		rcPath, err := RCFilePath(s, homeDir)
		if err != nil {
			// No home directory: name the file the way the shell does
			rcPath = defaultRCFile(s)
		} else {
			rcPath = DisplayPath(rcPath, homeDir, "~")
		}

		export, persistLine := exportLine(s, dir)
		guidance = append(guidance, Guidance{
			Shell:   s,
			RCFile:  rcPath,
			Export:  export,
			Persist: fmt.Sprintf("echo '%s' >> %s", persistLine, rcPath),
		})
	}

	return guidance
}

// exportLine returns the session command and the startup-file line for dir
func exportLine(shell ShellType, dir string) (string, string) {
	switch shell {
	case ShellFish:
		return fmt.Sprintf("set -gx PATH %s $PATH", dir),
			fmt.Sprintf("fish_add_path %s", dir)
	default:
		line := fmt.Sprintf(`export PATH="%s:$PATH"`, dir)
		return line, line
	}
}

func defaultRCFile(shell ShellType) string {
	switch shell {
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return "~/.bashrc"
	}
}
