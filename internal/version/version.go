package version

// AppVersion is overridden at build time:
//
//	go build -ldflags "-X printutils/internal/version.AppVersion=1.2.0" ./cmd/printutils
var AppVersion = "0.1.0-dev"
