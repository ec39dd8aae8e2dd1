package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts headers into log attributes sorted by name. Values
// of logging.SensitiveHeaders are replaced with "[REDACTED]"; multi-value
// headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
