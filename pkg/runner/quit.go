package runner

import (
	"bufio"
	"io"
)

// WatchQuit blocks until a single line (any content, including empty) is read
// from in, then calls quit and returns true. If in is closed before a line
// arrives, quit is not called and WatchQuit returns false.
//
// Unlike "any input ends the process", a bare EOF (e.g. stdin redirected from
// /dev/null) is not treated as a quit request, so the batch still runs to completion.
//
// quit is expected to end the process: running machines are abandoned, not drained.
func WatchQuit(in io.Reader, quit func()) bool {
	text, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return false
	}
	quit()
	return true
}
