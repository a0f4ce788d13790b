package client

import (
	"bufio"
	"context"
	"io"
	"net"
	"strings"

	"github.com/pkg/errors"

	"github.com/math-server/math-server/out"
)

const DefaultPort = "18000"

// Transport delivers a query and waits for its reply.
type Transport interface {
	SendQuery(query string) (string, error)
	Close() error
}

// NetworkTransport talks to a server over a single TCP connection, one query at a time.
type NetworkTransport struct {
	conn   net.Conn
	reader *bufio.Reader
}

// Dial connects to the server at host:port.
func Dial(ctx context.Context, host, port string) (*NetworkTransport, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, transportError(err)
	}
	return &NetworkTransport{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}, nil
}

// SendQuery sends query as a single line and returns the server's reply without its framing.
func (t *NetworkTransport) SendQuery(query string) (string, error) {
	if _, err := io.WriteString(t.conn, query+"\n"); err != nil {
		return "", transportError(err)
	}
	reply, err := t.readReply()
	if err != nil {
		return "", transportError(err)
	}
	return reply, nil
}

// readReply reads up to and including the next CRLF.
func (t *NetworkTransport) readReply() (string, error) {
	var sb strings.Builder
	for {
		chunk, err := t.reader.ReadString('\n')
		sb.WriteString(chunk)
		if err == io.EOF {
			return "", errors.Wrap(io.ErrUnexpectedEOF, "connection closed before a reply was received")
		}
		if err != nil {
			return "", err
		}
		if strings.HasSuffix(sb.String(), out.Terminator) {
			return out.TrimReply(sb.String()), nil
		}
	}
}

func (t *NetworkTransport) Close() error {
	return t.conn.Close()
}
