package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/iheanyi/lazyopencode/pkg/customization"
)

// CLIOutput represents a structured output for machine-parseable JSON responses.
type CLIOutput struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONWriter handles JSON output for CLI commands.
type JSONWriter struct {
	Out io.Writer
}

// NewJSONWriter creates a new JSON writer that outputs to stdout.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{Out: os.Stdout}
}

// Write outputs a CLIOutput as JSON.
func (w *JSONWriter) Write(output CLIOutput) error {
	encoder := json.NewEncoder(w.Out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// WriteSuccess outputs a successful result as JSON.
func (w *JSONWriter) WriteSuccess(data any) error {
	return w.Write(CLIOutput{Success: true, Data: data})
}

// WriteError outputs an error as JSON.
func (w *JSONWriter) WriteError(err error) error {
	return w.Write(CLIOutput{Success: false, Error: err.Error()})
}

// ListOutput represents the JSON output for the list command.
type ListOutput struct {
	ProjectRoot      string              `json:"projectRoot,omitempty"`
	GlobalConfigPath string              `json:"globalConfigPath,omitempty"`
	Customizations   []CustomizationInfo `json:"customizations"`
}

// CustomizationInfo represents one customization in JSON output.
type CustomizationInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Level       string `json:"level"`
	Path        string `json:"path,omitempty"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

// NewCustomizationInfo converts a customization into its list output shape.
func NewCustomizationInfo(c *customization.Customization) CustomizationInfo {
	return CustomizationInfo{
		Name:        c.Name,
		Type:        string(c.Type),
		Level:       string(c.Level),
		Path:        c.Path,
		Description: c.Description,
		Error:       c.Error,
	}
}
