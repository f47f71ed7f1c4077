package printutils

import (
	"strings"

	"github.com/muesli/termenv"
)

// Message tags.
const (
	TagLog     = "[L]"
	TagInfo    = "[I]"
	TagSuccess = "[S]"
	TagWarning = "[W]"
	TagError   = "[E]"
)

// Style is a foreground color with optional bold. It always renders plain
// 16-color ANSI sequences so output bytes do not depend on the terminal.
type Style struct {
	Color termenv.ANSIColor
	Bold  bool
}

// Render wraps s in the style's escape sequences and a full reset. Bold and
// color are separate sequences, bold first: ESC[1m ESC[31m s ESC[0m.
func (st Style) Render(s string) string {
	var b strings.Builder
	if st.Bold {
		b.WriteString(sgr(termenv.BoldSeq))
	}
	b.WriteString(sgr(st.Color.Sequence(false)))
	b.WriteString(s)
	b.WriteString(sgr(termenv.ResetSeq))
	return b.String()
}

func sgr(seq string) string {
	return termenv.CSI + seq + "m"
}

// Styles used by the tagged operations.
var (
	InfoStyle    = Style{Color: termenv.ANSICyan}
	SuccessStyle = Style{Color: termenv.ANSIGreen}
	WarningStyle = Style{Color: termenv.ANSIYellow}
	ErrorStyle   = Style{Color: termenv.ANSIRed, Bold: true}
)
