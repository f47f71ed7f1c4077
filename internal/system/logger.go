package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger reports the CLI's own failures (bad flags, formatting errors).
// Wrapped output never goes through it; it prints to stderr so stdout stays
// exactly what the wrapper produced.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "printutils",
})
