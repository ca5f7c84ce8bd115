package boundary

import "errors"

// Sentinel errors returned by resolution. Callers test them with errors.Is.
var (
	// ErrParserUnavailable indicates no structural parser is configured or built in.
	ErrParserUnavailable = errors.New("structural parser unavailable")

	// ErrParseFailed indicates the structural parser rejected the source.
	ErrParseFailed = errors.New("structural parse failed")

	// ErrNodeNotFound indicates no construct encloses the symbol location.
	ErrNodeNotFound = errors.New("no enclosing construct")

	// ErrHeadUnresolvable indicates no plausible head end could be located.
	ErrHeadUnresolvable = errors.New("head unresolvable")

	// ErrBodyUnresolvable indicates the scan reached the end of the document
	// without an accepted terminator.
	ErrBodyUnresolvable = errors.New("body unresolvable")

	// ErrNotImplemented indicates an operation that is intentionally unbuilt.
	ErrNotImplemented = errors.New("not implemented")
)

// IsFallback reports whether err is a structural-route failure that the
// heuristic route recovers from.
func IsFallback(err error) bool {
	return errors.Is(err, ErrParserUnavailable) ||
		errors.Is(err, ErrParseFailed) ||
		errors.Is(err, ErrNodeNotFound)
}

// errorKinds lists sentinels with their short names, most specific first.
//
//nolint:gochecknoglobals // lookup table
var errorKinds = []struct {
	err  error
	name string
}{
	{ErrHeadUnresolvable, "head-unresolvable"},
	{ErrBodyUnresolvable, "body-unresolvable"},
	{ErrNodeNotFound, "node-not-found"},
	{ErrParseFailed, "parse-failed"},
	{ErrParserUnavailable, "parser-unavailable"},
	{ErrNotImplemented, "not-implemented"},
}

// ErrorKind returns a short name for the sentinel wrapped by err, "" for nil,
// and "other" for errors outside this package.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, kind := range errorKinds {
		if errors.Is(err, kind.err) {
			return kind.name
		}
	}
	return "other"
}
