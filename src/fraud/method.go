package fraud

import (
	"fmt"
	"strings"
)

// Method selects the outlier detection strategy for a run.
type Method int

const (
	MethodStd Method = iota
	MethodIQR
)

func (m Method) String() string {
	switch m {
	case MethodStd:
		return "std"
	case MethodIQR:
		return "iqr"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts the short names as well as the dashboard labels.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "std", "stddev", "standard deviation", "standard-deviation":
		return MethodStd, nil
	case "iqr", "interquartile range":
		return MethodIQR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

func (m Method) MarshalText() ([]byte, error) {
	if m != MethodStd && m != MethodIQR {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
