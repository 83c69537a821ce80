// Package config reads and parses configurations.
package config

import (
	"fmt"
	"time"

	"github.com/favonia/cronkit/internal/cron"
	"github.com/favonia/cronkit/internal/output"
	"github.com/favonia/cronkit/internal/pp"
)

// Config holds the settings that do not come from the request itself.
type Config struct {
	// Format is how results are rendered.
	Format output.Format
	// Now is the reference instant for predicting occurrences.
	Now time.Time
}

// Default gives the default configuration.
func Default(now time.Time, format output.Format) *Config {
	return &Config{
		Format: format,
		Now:    now,
	}
}

// ReadEnv reads CRONKIT_OUTPUT and CRONKIT_NOW. EMOJI and QUIET are handled by [SetupPP].
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	return ReadFormat(ppfmt, "CRONKIT_OUTPUT", &c.Format) &&
		ReadTime(ppfmt, "CRONKIT_NOW", &c.Now)
}

const itemTitleWidth = 16

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Output:")
	item("Format:", "%s", c.Format)

	section("Scheduling:")
	item("Reference time:", "%s", c.Now.Format(time.RFC3339))
	item("Timezone:", "%s", cron.DescribeLocation(c.Now))
}
