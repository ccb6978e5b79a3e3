package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/rs/zerolog"
)

// ConsoleLog is the types.LogSink of the CLI. Lines go to out and are
// mirrored to the debug log so a log file holds the full user transcript.
type ConsoleLog struct {
	mu     sync.Mutex
	out    io.Writer
	bar    *ProgressBar
	logger zerolog.Logger
}

// NewConsoleLog creates a log sink writing to out
func NewConsoleLog(out io.Writer) *ConsoleLog {
	return &ConsoleLog{
		out:    out,
		logger: logging.GetLogger("ui.console"),
	}
}

// AttachBar makes the sink clear bar before each line so messages are not
// drawn over the bar.
func (c *ConsoleLog) AttachBar(bar *ProgressBar) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bar = bar
}

// Logf implements types.LogSink
func (c *ConsoleLog) Logf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	c.logger.Debug().Msg(line)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bar != nil {
		c.bar.Clear()
	}
	fmt.Fprintln(c.out, line)
}
