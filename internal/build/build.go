// Package build holds build-time information.
package build

// Version is the application version. It defaults to "dev" and can be
// overwritten by linker flags (-ldflags "-X go.weft.dev/weft/internal/build.Version=...").
var Version = "dev"
