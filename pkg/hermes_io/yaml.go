/* pkg/hermes_io/yaml.go */

package hermes_io

import (
	"context"
	"fmt"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/xdg"
)

// WriteYAML writes data to a YAML file with structured logging, creating the
// parent directory when it does not exist yet.
func WriteYAML(ctx context.Context, filePath string, in interface{}) error {
	logger := otelzap.Ctx(ctx)
	logger.Debug("Writing YAML file", zap.String("path", filePath))

	data, err := yaml.Marshal(in)
	if err != nil {
		logger.Error("Failed to marshal YAML", zap.Error(err))
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := xdg.EnsureDir(filePath); err != nil {
		logger.Error("Failed to create YAML directory",
			zap.String("path", filePath),
			zap.Error(err))
		return fmt.Errorf("failed to create YAML directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, shared.FilePermStandard); err != nil {
		logger.Error("Failed to write YAML file",
			zap.String("path", filePath),
			zap.Error(err))
		return fmt.Errorf("failed to write YAML file: %w", err)
	}

	logger.Debug("YAML file written",
		zap.String("path", filePath),
		zap.Int("size", len(data)))
	return nil
}
