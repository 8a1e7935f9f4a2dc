// Package version exposes build metadata of alarm-led.
//
// Version, Commit and BuildTime are injected with -ldflags -X at build time.
package version
