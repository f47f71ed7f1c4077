// Package printutils wraps a print primitive (fmt.Println by default) with
// tagged variants, an optional timestamp prefix, an optional title prefix and
// a global switch that silences output.
//
// Usage:
//
//	var print printutils.PrintFunc = fmt.Println
//
//	func init() {
//	    cfg := printutils.NewConfig()
//	    cfg.DecoratePurePrint = true
//	    printutils.Init(printutils.WithConfig(cfg), printutils.WithBinding(&print))
//	}
//
// After Init the package-level print variable routes through the wrapper.
// Pass Explicit to get the wrapper back without touching the binding:
//
//	console, err := printutils.Init(printutils.Explicit())
//	console.Success("deployed", 42)
//
// Output formats:
//
//	Log:     <title> [<time>] : [L] <args...>        (separate arguments)
//	Info:    ESC[36m<title> [<time>] : [I] <args...>ESC[0m (one string)
//	Success: same with [S] and green
//	Warning: same with [W] and yellow
//	Error:   same with [E] and bold red
package printutils
