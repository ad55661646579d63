package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/paywidget/paywidget/internal/config"
	"github.com/paywidget/paywidget/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for format names with no formatter.
var ErrUnsupportedFormat = errors.New("unsupported format")

// FormatAll selects every registered formatter in GenerateReport.
const FormatAll = "all"

// Extension is the file extension used when writing f's output.
func Extension(f Formatter) string {
	if f.Name() == "console" {
		return "txt"
	}
	return f.Name()
}

// LookupFormatter is GetFormatterByName with a descriptive error.
func LookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	err := fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	if s := SuggestFormatName(format); s != "" {
		err = fmt.Errorf("%w; did you mean %q?", err, s)
	}
	return nil, err
}

// GenerateReport writes the view to timestamped files in dir, one per
// formatter for FormatAll, and returns the file names.
func GenerateReport(view *domain.WidgetView, format, dir string) ([]string, error) {
	var formatters []Formatter
	if NormalizeFormatName(format) == FormatAll {
		formatters = builtInFormatters
	} else {
		f, err := LookupFormatter(format)
		if err != nil {
			return nil, err
		}
		formatters = []Formatter{f}
	}

	files := make([]string, 0, len(formatters))
	for _, f := range formatters {
		name, err := WriteFormatted(f, view, dir, Extension(f))
		if err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

// SaveDocument writes a widget document as YAML.
func SaveDocument(doc *config.Document, filename string) error {
	b, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
