// Package client sends expressions to a math server and prints the replies.
package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

type Settings struct {
	// Command is a single expression to evaluate, used when HasCommand is set.
	Command    string
	HasCommand bool
	// Files are read line by line when no command is given.
	Files []string

	Host        string
	Port        string
	DialTimeout time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Host:        "localhost",
		Port:        DefaultPort,
		DialTimeout: 10 * time.Second,
	}
}

// Reader picks the input source: the command, else the files, else stdin.
func (s Settings) Reader(stdin *os.File) Reader {
	switch {
	case s.HasCommand:
		return StringReader(s.Command)
	case len(s.Files) > 0:
		return MultiFileReader(s.Files)
	default:
		return NewConsoleReader(stdin)
	}
}

type Client struct {
	input     Reader
	transport Transport
	out       io.Writer
}

func New(input Reader, transport Transport, out io.Writer) *Client {
	return &Client{input: input, transport: transport, out: out}
}

// Connect dials the server named in the settings and returns a client reading from the configured input.
func Connect(ctx context.Context, s Settings, stdin *os.File, stdout io.Writer) (*Client, error) {
	if s.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.DialTimeout)
		defer cancel()
	}
	transport, err := Dial(ctx, s.Host, s.Port)
	if err != nil {
		return nil, err
	}
	logger.WithField("addr", transport.conn.RemoteAddr().String()).Debug("connected")
	return New(s.Reader(stdin), transport, stdout), nil
}

// Run sends every input line and prints every reply verbatim, one per line.
func (c *Client) Run() error {
	return c.input.ForEach(func(line string) error {
		reply, err := c.transport.SendQuery(line)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, reply)
		return err
	})
}

func (c *Client) Close() error {
	return c.transport.Close()
}
