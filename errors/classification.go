package errors

import (
	"fmt"
	"strings"
)

// Severity classifies the impact of an error.
type Severity int

const (
	// SeverityInfo marks an informational condition that needs no action.
	SeverityInfo Severity = iota

	// SeverityWarning marks a degraded but recoverable condition.
	SeverityWarning

	// SeverityError marks a failed operation.
	SeverityError

	// SeverityCritical marks a failure that needs prompt attention.
	SeverityCritical

	// SeverityFatal marks a failure the process cannot continue from.
	SeverityFatal
)

var severityNames = [...]string{
	SeverityInfo:     "INFO",
	SeverityWarning:  "WARNING",
	SeverityError:    "ERROR",
	SeverityCritical: "CRITICAL",
	SeverityFatal:    "FATAL",
}

// String returns the upper-case severity name.
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
	return severityNames[s]
}

// AtLeast reports whether s is as severe as or more severe than other.
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}

// ParseSeverity parses a severity name case-insensitively. "information" is
// accepted as an alias of "info".
func ParseSeverity(name string) (Severity, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "INFORMATION" {
		return SeverityInfo, nil
	}
	for i, n := range severityNames {
		if n == upper {
			return Severity(i), nil
		}
	}
	return 0, Newf(InvalidArgument, "unknown severity %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
