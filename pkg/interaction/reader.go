// pkg/interaction/reader.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// testStdin lets tests inject scripted input; nil means real stdin.
var testStdin io.Reader

// One buffered reader is shared across sequential prompts. A fresh bufio
// per prompt would buffer ahead and silently drop input typed between
// prompts.
var (
	promptRd     *bufio.Reader
	promptRdFrom io.Reader
)

func promptReader() *bufio.Reader {
	src := io.Reader(os.Stdin)
	if testStdin != nil {
		src = testStdin
	}
	if promptRd == nil || promptRdFrom != src {
		promptRd = bufio.NewReader(src)
		promptRdFrom = src
	}
	return promptRd
}

// ReadLine prompts the user with a label and returns the line stripped of
// escape sequences, control characters, and surrounding whitespace.
func ReadLine(ctx context.Context, reader *bufio.Reader, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("Prompting user for input", zap.String("label", label))

	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Use os.Stderr for user-facing prompts to preserve stdout for automation
	_, _ = fmt.Fprint(os.Stderr, label+": ")

	text, err := reader.ReadString('\n')
	if err != nil && text == "" {
		logger.Error("Failed to read user input", zap.Error(err))
		return "", err
	}

	value := hermes_io.SanitizeUserInput(text)
	logger.Debug("User input received", zap.String("value", value))
	return value, nil
}
