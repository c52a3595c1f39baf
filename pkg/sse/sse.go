// Package sse implements a minimal reader for Server-Sent-Events streams.
package sse

import (
	"bufio"
	"bytes"
	"io"
)

// Event is a single server-sent event. Data holds the concatenated payload of
// all data lines in the frame.
type Event struct {
	Event string `json:"event"`
	Data  []byte `json:"data"`
}

// StreamSseResponse reads SSE frames from r and delivers them on the returned
// channel. The channel is closed and r is closed when the stream ends or the
// underlying reader fails. Comment lines (leading ':') are ignored.
func StreamSseResponse(r io.ReadCloser) <-chan *Event {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	ch := make(chan *Event, 10)
	go func() {
		defer close(ch)
		defer r.Close()
		currentEvent := &Event{}
		var data [][]byte
		for scanner.Scan() {
			line := scanner.Bytes()
			switch {
			case len(line) == 0:
				// Blank line terminates the frame.
				if len(data) > 0 || currentEvent.Event != "" {
					currentEvent.Data = bytes.Join(data, []byte("\n"))
					ch <- currentEvent
					currentEvent = &Event{}
					data = nil
				}
			case line[0] == ':':
				// comment / keepalive
			case bytes.HasPrefix(line, []byte("event:")):
				currentEvent.Event = string(bytes.TrimSpace(bytes.TrimPrefix(line, []byte("event:"))))
			case bytes.HasPrefix(line, []byte("data:")):
				d := bytes.TrimPrefix(line, []byte("data:"))
				if len(d) > 0 && d[0] == ' ' {
					d = d[1:]
				}
				data = append(data, append([]byte(nil), d...))
			}
		}
		// Flush a final unterminated frame.
		if len(data) > 0 {
			currentEvent.Data = bytes.Join(data, []byte("\n"))
			ch <- currentEvent
		}
	}()
	return ch
}
