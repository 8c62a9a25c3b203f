// Package shell decides whether the install directory is reachable through
// the user's command search path and, if not, produces copy-pasteable
// configuration snippets.
//
// This package never modifies files. The process environment is passed in
// explicitly (see Environment) so every function is testable with fixture
// values.
//
// # Search Path Check
//
// CheckPath splits the PATH value on the platform list separator and tests
// for an exact entry match. No normalization is applied: "~/.local/bin" and
// "/home/user/.local/bin/" do not match "/home/user/.local/bin".
//
// # Guidance
//
// The shell is taken from $SHELL:
//   - bash: ~/.bashrc
//   - zsh: ~/.zshrc
//   - fish: ~/.config/fish/config.fish
//
// Unknown shells receive the bash and zsh snippets.
//
// # Example Usage
//
//	advice := shell.Advise(installDir, shell.Environment{
//	    Path:    os.Getenv("PATH"),
//	    Shell:   os.Getenv("SHELL"),
//	    HomeDir: home,
//	})
//
//	if advice.Status == shell.NotOnPath {
//	    for _, g := range advice.Guidance {
//	        fmt.Println(g.Export)
//	        fmt.Println(g.Persist)
//	    }
//	}
package shell
