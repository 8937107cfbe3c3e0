package mcp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdioTransport frames JSON-RPC messages over stdin/stdout using
// Content-Length headers. Diagnostics go to stderr so stdout carries
// nothing but protocol traffic.
type StdioTransport struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewStdioTransport creates a transport bound to the process stdio streams.
func NewStdioTransport() *StdioTransport {
	return &StdioTransport{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// NewTransport creates a transport over arbitrary streams.
func NewTransport(in io.Reader, out, errOut io.Writer) *StdioTransport {
	return &StdioTransport{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// ReadMessage reads one framed JSON-RPC request. It returns io.EOF once the
// peer closes the stream.
func (t *StdioTransport) ReadMessage() (*JSONRPCRequest, error) {
	contentLength := -1
	for {
		line, err := t.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("failed to read header: %w", err)
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}

		var n int
		if _, err := fmt.Sscanf(line, "Content-Length: %d", &n); err == nil {
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(t.in, body); err != nil {
		return nil, fmt.Errorf("failed to read message body: %w", err)
	}

	return ParseRequest(body)
}

// WriteMessage writes one framed JSON-RPC response.
func (t *StdioTransport) WriteMessage(resp *JSONRPCResponse) error {
	data, err := SerializeResponse(resp)
	if err != nil {
		return fmt.Errorf("failed to serialize response: %w", err)
	}

	if _, err := fmt.Fprintf(t.out, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := t.out.Write(data); err != nil {
		return fmt.Errorf("failed to write body: %w", err)
	}

	return nil
}

// WriteError reports a transport-level problem on stderr.
func (t *StdioTransport) WriteError(err error) {
	fmt.Fprintf(t.errOut, "Error: %v\n", err)
}
