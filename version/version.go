package version

import (
	"fmt"
	"runtime"
)

// Values pre-populated in build using linker flags
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// String returns a multi-line description of the build.
func String() string {
	return fmt.Sprintf("overwrite\n  Version:    %s\n  Build date: %s\n  Go version: %s", Version, BuildDate, runtime.Version())
}
