package session

import (
	"time"

	"github.com/justinpbarnett/cewatch/internal/compiler"
	"github.com/justinpbarnett/cewatch/internal/ui/clipboard"
	"github.com/justinpbarnett/cewatch/internal/watch"
)

// fileEventMsg carries one event from the watcher.
type fileEventMsg struct {
	Event watch.Event
}

// watchClosedMsg is sent when the watcher's event stream ends.
type watchClosedMsg struct{}

// compiledMsg is the completion of the compile started for generation Gen.
type compiledMsg struct {
	Gen     uint64
	Result  *compiler.Result
	Err     error
	Elapsed time.Duration
}

// yankedMsg reports a clipboard copy.
type yankedMsg struct {
	Panel  string
	Method clipboard.Method
	Err    error
}
