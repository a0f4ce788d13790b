package out

import (
	"io"
	"strings"
)

// Terminator ends every reply line, so that CRLF-minded terminal clients display replies properly.
const Terminator = "\r\n"

// Reply writes a single framed reply line.
func Reply(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+Terminator)
	return err
}

// TrimRequest strips the line feed ending a request, and a carriage return preceding it.
func TrimRequest(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// TrimReply strips the framing off a reply line.
func TrimReply(line string) string {
	return strings.TrimSuffix(line, Terminator)
}
