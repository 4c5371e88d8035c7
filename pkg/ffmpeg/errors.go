package ffmpeg

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBinaryNotFound = errors.New("ffmpeg binary not found")

// stderrTailLines bounds how much of ffmpeg's stderr ends up in an error
// message; the full text stays on Result.
const stderrTailLines = 10

// ExitError reports an ffmpeg process that ran but exited unsuccessfully.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	tail := StderrTail(e.Stderr, stderrTailLines)
	if tail == "" {
		return fmt.Sprintf("ffmpeg exited with status %d", e.Code)
	}
	return fmt.Sprintf("ffmpeg exited with status %d: %s", e.Code, tail)
}

// StderrTail returns the last n non-empty lines of stderr joined by " | ".
func StderrTail(stderr string, n int) string {
	var lines []string
	for _, line := range strings.Split(stderr, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, " | ")
}
