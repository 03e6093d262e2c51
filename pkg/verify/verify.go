// pkg/verify/verify.go

package verify

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// One validator instance is safe for concurrent use and caches struct metadata.
var validate = validator.New()

func NewContext() *Context {
	return &Context{}
}

// ValidateAll validates the registered configuration, if any. Commands that
// never register a Cfg pass trivially.
func (v *Context) ValidateAll() error {
	if v == nil || v.Cfg == nil {
		return nil
	}
	return Struct(v.Cfg)
}

// Struct validates a Go struct with `validate:` tags (playground/validator).
func Struct(obj any) error {
	if err := validate.Struct(obj); err != nil {
		var invalid *validator.InvalidValidationError
		if cerr.As(err, &invalid) {
			return cerr.Wrap(err, "not a validatable struct")
		}
		var fieldErrs validator.ValidationErrors
		if cerr.As(err, &fieldErrs) {
			return cerr.New(formatFieldErrors(fieldErrs))
		}
		return err
	}
	return nil
}

// formatFieldErrors rewrites validator's terse output into one line per field
// an operator can act on.
func formatFieldErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	b.WriteString("configuration validation failed:")
	for _, fe := range errs {
		b.WriteString("\n  - ")
		b.WriteString(fe.Namespace())
		switch fe.Tag() {
		case "required":
			b.WriteString(" is required")
		case "min":
			b.WriteString(" must be at least " + fe.Param())
		case "max":
			b.WriteString(" must be at most " + fe.Param())
		case "hostname", "hostname_rfc1123", "fqdn":
			b.WriteString(" must be a valid hostname")
		case "email":
			b.WriteString(" must be a valid email address")
		case "ip":
			b.WriteString(" must be a valid IP address")
		default:
			b.WriteString(" failed the '" + fe.Tag() + "' constraint")
		}
	}
	return b.String()
}
