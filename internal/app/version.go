package app

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Version is the application version. Overridden at build time via
// -ldflags "-X github.com/DCRepairCenter/sysstatus/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the argument list requests the version.
// Checked before full flag parsing so --version works regardless of other
// flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes version and build information to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "sysstatus %s\n", resolveVersion())
	fmt.Fprintf(out, "  %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// resolveVersion prefers the ldflags version, falling back to the module
// version recorded by the Go toolchain when installed via `go install`.
func resolveVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
