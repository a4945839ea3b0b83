package shell

import (
	"strconv"
	"strings"
)

// promptLine prints msg and reads one trimmed line. ok=false means the
// input stream ended.
func (s *Shell) promptLine(msg string) (string, bool) {
	prompt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptInt reads one line and parses it as an integer, re-prompting on
// anything unparseable.
func (s *Shell) promptInt(msg string) (int, bool) {
	for {
		line, ok := s.promptLine(msg)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			failure.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}
		return n, true
	}
}
