package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verikit/cfglower/domain"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter service
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// Format formats the lowering response according to the specified format
func (f *OutputFormatterImpl) Format(response *domain.LowerResponse, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return f.formatText(response)
	case domain.OutputFormatJSON:
		return f.formatJSON(response)
	case domain.OutputFormatYAML:
		return f.formatYAML(response)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// Write writes the formatted output to the writer
func (f *OutputFormatterImpl) Write(response *domain.LowerResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(response, format)
	if err != nil {
		return err
	}

	if _, err := writer.Write([]byte(output)); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

// formatText renders the lowered procedures as plain text
func (f *OutputFormatterImpl) formatText(response *domain.LowerResponse) (string, error) {
	var builder strings.Builder

	for i, procedure := range response.Procedures {
		if i > 0 {
			builder.WriteString("\n")
		}
		if procedure.FilePath != "" {
			builder.WriteString(fmt.Sprintf("// %s (from %s)\n", procedure.Name, procedure.FilePath))
		}
		builder.WriteString(procedure.Text)
	}

	if len(response.Warnings) > 0 {
		builder.WriteString("\n")
		for _, warning := range response.Warnings {
			builder.WriteString(fmt.Sprintf("// warning: %s\n", warning))
		}
	}

	if len(response.Errors) > 0 {
		builder.WriteString("\n")
		for _, errText := range response.Errors {
			builder.WriteString(fmt.Sprintf("// error: %s\n", errText))
		}
	}

	return builder.String(), nil
}

// formatJSON renders the response as indented JSON
func (f *OutputFormatterImpl) formatJSON(response *domain.LowerResponse) (string, error) {
	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to marshal JSON", err)
	}
	return string(data) + "\n", nil
}

// formatYAML renders the response as YAML
func (f *OutputFormatterImpl) formatYAML(response *domain.LowerResponse) (string, error) {
	data, err := yaml.Marshal(response)
	if err != nil {
		return "", domain.NewOutputError("failed to marshal YAML", err)
	}
	return string(data), nil
}
