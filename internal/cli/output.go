package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/opencode-ai/folio/internal/colors"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// WriteOutput writes v as indented JSON.
func WriteOutput(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func colorEnabled() bool {
	if noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return hasTTY()
}

func colorize(text, color string) string {
	if !colorEnabled() || color == "" {
		return text
	}
	return color + text + colorReset
}

// swatchChip renders a 24-bit colour block for hex when colour is enabled.
func swatchChip(hex string) string {
	if !colorEnabled() {
		return ""
	}
	rgb, ok := colors.HexToRGB(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  %s ", rgb.R, rgb.G, rgb.B, colorReset)
}

func formatState(loaded bool) string {
	if loaded {
		return colorize("OK stored", colorGreen)
	}
	return colorize("WARN default", colorYellow)
}
