package runner

import (
	"strings"

	"github.com/conn-castle/install-layer/internal/logging"
)

// severityRule maps a leading output token to a log level.
type severityRule struct {
	prefix string
	level  logging.Level
}

// severityRules is the ordered classification table for engine output lines.
// Matching is case-insensitive on the leading token. Unmatched lines,
// unstructured engine output included, fall through to info.
var severityRules = []severityRule{
	{"error:", logging.LevelError},
	{"err:", logging.LevelError},
	{"warning:", logging.LevelWarn},
	{"notice:", logging.LevelWarn},
	{"info:", logging.LevelInfo},
	{"debug:", logging.LevelDebug},
}

// Classify infers a severity for one engine output line and strips the
// matched severity token from the forwarded message.
func Classify(line string) (logging.Level, string) {
	for _, rule := range severityRules {
		if len(line) >= len(rule.prefix) && strings.EqualFold(line[:len(rule.prefix)], rule.prefix) {
			return rule.level, strings.TrimLeft(line[len(rule.prefix):], " \t")
		}
	}
	return logging.LevelInfo, line
}
