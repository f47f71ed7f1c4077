package printutils

// DefaultTimestampFormat is the strftime pattern used by NewConfig.
const DefaultTimestampFormat = "%H:%M:%S"

// Config controls how a PrintWrapper decorates and gates its output.
// It is a plain value; copies never share state.
type Config struct {
	// AllowPrint is the kill switch. When false, tagged operations and a
	// decorated Call print nothing.
	AllowPrint bool
	// DecoratePurePrint applies timestamp and title to Call as well.
	DecoratePurePrint bool
	// Timestamp prepends "[<time>] :" formatted with TimestampFormat.
	Timestamp       bool
	TimestampFormat string
	// Title prepends the wrapper name.
	Title bool
}

var defaultConfig = Config{
	AllowPrint:        true,
	DecoratePurePrint: false,
	Timestamp:         true,
	TimestampFormat:   DefaultTimestampFormat,
	Title:             true,
}

// NewConfig returns a fresh copy of the default configuration.
func NewConfig() Config {
	return defaultConfig
}
