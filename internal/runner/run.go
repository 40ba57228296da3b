package runner

import (
	"context"
	"log"
)

// Capabilities lists the optional features a platform runner honors.
type Capabilities struct {
	Icon bool // --icon is downloaded and applied
	Tray bool // a tray menu exists and --tray starts hidden
}

// Platform is the per-OS runner implementation, selected at build time.
type Platform interface {
	Name() string
	Capabilities() Capabilities
	// Run creates the window and blocks in the event loop until quit.
	// An error means the window could not be created.
	Run(ctx context.Context, cfg Config) error
}

// Run parses the invocation tokens and runs the platform runner.
func Run(ctx context.Context, tokens []string, trace *log.Logger) error {
	for i, arg := range tokens {
		trace.Printf("Arg %d: %s", i+1, arg)
	}

	cfg := ParseArgs(tokens)
	p := newPlatform(trace)
	cfg = restrict(cfg, p.Capabilities(), trace)
	trace.Printf("Args parsed: title=%q hidden=%t icon=%q (platform %s)", cfg.Title, cfg.StartHidden, cfg.IconURL, p.Name())

	return p.Run(ctx, cfg)
}

// restrict drops the flags a platform does not support.
func restrict(cfg Config, caps Capabilities, trace *log.Logger) Config {
	if cfg.HasIcon() && !caps.Icon {
		trace.Printf("Ignoring --icon %s: not supported on this platform", cfg.IconURL)
		cfg.IconURL = ""
	}
	if cfg.StartHidden && !caps.Tray {
		trace.Println("Ignoring --tray: not supported on this platform")
		cfg.StartHidden = false
	}
	return cfg
}
