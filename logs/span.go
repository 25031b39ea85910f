package logs

type spanKeyType struct{}

var SpanKey spanKeyType

// Span labels one unit of work, e.g. a single editor session or one load,
// so its log records can be correlated.
type Span string
