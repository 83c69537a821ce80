package config

import (
	"os"
	"strings"
	"time"

	"github.com/favonia/cronkit/internal/output"
	"github.com/favonia/cronkit/internal/pp"
)

// Getenv reads an environment variable and trim the space.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// ReadFormat reads an environment variable as an output format.
func ReadFormat(ppfmt pp.PP, key string, field *output.Format) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	f, err := output.ParseFormat(val)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a supported output format: %v", key, val, err)
		return false
	}

	*field = f
	return true
}

// ReadTime reads an environment variable as an RFC 3339 timestamp.
func ReadTime(ppfmt pp.PP, key string, field *time.Time) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not an RFC 3339 timestamp: %v", key, val, err)
		return false
	}

	*field = t
	return true
}
