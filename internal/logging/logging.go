package logging

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
)

// Init routes log output to w through the cli handler. Debug output is only
// shown when debug is set.
func Init(w io.Writer, debug bool) {
	log.SetHandler(cli.New(w))
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
