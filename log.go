package figure

import (
	"log"
	"os"
)

// Debug enables verbose output about scale resolution and layout.
var Debug = false

// Logger receives warnings about blanked panels and, if Debug is set,
// layout traces.
var Logger = log.New(os.Stderr, "figure: ", 0)

func debugf(format string, args ...interface{}) {
	if !Debug {
		return
	}
	Logger.Printf(format, args...)
}
