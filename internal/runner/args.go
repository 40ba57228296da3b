// Package runner implements the fake game process: a native window with a
// session timer, a tray presence, and the single-threaded loop that drives them.
package runner

// DefaultTitle is shown when no --title argument is given.
const DefaultTitle = "Quest Passer"

// Config holds the runner's invocation parameters.
type Config struct {
	Title       string
	StartHidden bool
	IconURL     string // empty when no --icon was given
}

// DefaultConfig returns the configuration used when no flags are recognized.
func DefaultConfig() Config {
	return Config{Title: DefaultTitle}
}

// HasIcon reports whether a remote icon was requested.
func (c Config) HasIcon() bool {
	return c.IconURL != ""
}

// ParseArgs builds a Config from the invocation tokens (without the program
// name). Parsing is best-effort: unknown tokens and value flags missing their
// value are skipped, so it always yields a usable Config.
func ParseArgs(tokens []string) Config {
	cfg := DefaultConfig()

	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "--title":
			if i+1 < len(tokens) {
				cfg.Title = tokens[i+1]
				i++
			}
		case "--icon":
			if i+1 < len(tokens) {
				cfg.IconURL = tokens[i+1]
				i++
			}
		case "--tray":
			cfg.StartHidden = true
		}
	}

	return cfg
}

// Args renders cfg back into invocation tokens. ParseArgs(cfg.Args()) == cfg.
func (c Config) Args() []string {
	args := []string{"--title", c.Title}
	if c.HasIcon() {
		args = append(args, "--icon", c.IconURL)
	}
	if c.StartHidden {
		args = append(args, "--tray")
	}
	return args
}
