package color

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// Color represents a colorizer that can be enabled or disabled
type Color struct {
	enabled bool
}

// New creates a colorizer for output written to f. Color is used only when
// requested, f is a terminal and the environment allows it.
func New(enabled bool, f *os.File) *Color {
	return &Color{enabled: enabled && f != nil && isTerminal(f) && shouldEnableColor()}
}

// Plain returns a colorizer that never colors.
func Plain() *Color {
	return &Color{}
}

// Enabled reports whether output is colored.
func (c *Color) Enabled() bool {
	return c.enabled
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// shouldEnableColor determines if color should be enabled based on environment
func shouldEnableColor() bool {
	// Check NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	return term != "dumb" && term != ""
}

func (c *Color) wrap(code, text string) string {
	if !c.enabled {
		return text
	}
	return code + text + Reset
}

// OK colors a successfully resolved type
func (c *Color) OK(text string) string {
	return c.wrap(Green, text)
}

// Warn colors a note that does not fail the run
func (c *Color) Warn(text string) string {
	return c.wrap(Yellow, text)
}

// Error colors a diagnostic
func (c *Color) Error(text string) string {
	return c.wrap(Red, text)
}

// Bold makes text bold
func (c *Color) Bold(text string) string {
	return c.wrap(Bold, text)
}

// Cyan colors text cyan (for headers and labels)
func (c *Color) Cyan(text string) string {
	return c.wrap(Cyan, text)
}

// FormatSummaryLine formats resolved and failed counts
func (c *Color) FormatSummaryLine(resolved, failed int) string {
	return fmt.Sprintf("%s, %s.",
		c.OK(fmt.Sprintf("%d resolved", resolved)),
		c.Error(fmt.Sprintf("%d failed", failed)),
	)
}
