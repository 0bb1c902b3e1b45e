package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/veljkom/venuerank/schema"
)

// Tier label constants for table output.
const (
	LeadingValue  = "Leading"  // Leading international tier
	HighValue     = "High"     // High international tier
	StandardValue = "Standard" // Standard international tier
	NationalValue = "National" // National tier
	OtherValue    = "Other"    // Everything else in the rulebook
)

// Color variables for console output.
var (
	LeadingColor  = color.New(color.FgGreen, color.Bold) // leadingColor marks the most prestigious codes.
	HighColor     = color.New(color.FgCyan, color.Bold)  // highColor marks strong international codes.
	StandardColor = color.New(color.FgYellow)            // standardColor marks ordinary international codes.
	NationalColor = color.New(color.FgMagenta)           // nationalColor marks national-list codes.
)

// GetPlainCodeLabel returns a plain text label indicating the prestige band of
// a category code. This is the core logic used for CSV, JSON, and table printing.
func GetPlainCodeLabel(code schema.CategoryCode) string {
	switch {
	case code == "M21a" || code == "M21":
		return LeadingValue
	case code == "M22":
		return HighValue
	case code == "M23" || code == "M24":
		return StandardValue
	case strings.HasPrefix(string(code), "M5"):
		return NationalValue
	default:
		return OtherValue
	}
}

// GetColorCodeLabel returns a colored text label for console output (table).
// It uses GetPlainCodeLabel to determine the string, then applies the color.
func GetColorCodeLabel(code schema.CategoryCode) string {
	text := GetPlainCodeLabel(code)

	switch text {
	case LeadingValue:
		return LeadingColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case StandardValue:
		return StandardColor.Sprint(text)
	case NationalValue:
		return NationalColor.Sprint(text)
	default: // "Other"
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText shortens a string to maxLen runes, keeping the tail, which for
// venue names and reasoning strings preserves the most specific part.
// Requires maxLen > 3 to ensure there's space for both the "..." prefix and at
// least one character of content.
func TruncateText(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen && maxLen > 3 {
		return "..." + string(runes[len(runes)-maxLen+3:])
	}
	return s
}

// GetStoreDBFilePath returns the default path to the SQLite DB file.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".venuerank.db"
	}
	return filepath.Join(homeDir, ".venuerank.db")
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning with an optional error.
func LogWarn(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
		return
	}
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}
