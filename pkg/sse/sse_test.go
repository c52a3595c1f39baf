package sse

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, ch <-chan *Event) []*Event {
	t.Helper()
	var events []*Event
	timeout := time.After(time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("timed out waiting for events")
		}
	}
}

func TestStreamSseResponse(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   []Event
	}{
		{
			name:   "single data frame",
			stream: "data: {\"inserted\":5}\n\n",
			want:   []Event{{Data: []byte(`{"inserted":5}`)}},
		},
		{
			name:   "named event",
			stream: "event: progress\ndata: {\"inserted\":1}\n\n",
			want:   []Event{{Event: "progress", Data: []byte(`{"inserted":1}`)}},
		},
		{
			name:   "multiple frames",
			stream: "data: one\n\ndata: two\n\n",
			want:   []Event{{Data: []byte("one")}, {Data: []byte("two")}},
		},
		{
			name:   "multi-line data",
			stream: "data: first\ndata: second\n\n",
			want:   []Event{{Data: []byte("first\nsecond")}},
		},
		{
			name:   "comments and keepalives ignored",
			stream: ": keepalive\n\ndata: payload\n\n",
			want:   []Event{{Data: []byte("payload")}},
		},
		{
			name:   "no space after colon",
			stream: "data:tight\n\n",
			want:   []Event{{Data: []byte("tight")}},
		},
		{
			name:   "unterminated final frame flushed",
			stream: "data: tail",
			want:   []Event{{Data: []byte("tail")}},
		},
		{
			name:   "empty stream",
			stream: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := StreamSseResponse(io.NopCloser(strings.NewReader(tt.stream)))
			events := collect(t, ch)

			require.Len(t, events, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.Event, events[i].Event)
				assert.Equal(t, string(want.Data), string(events[i].Data))
			}
		})
	}
}

// closeRecorder verifies the reader is closed when the stream drains.
type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestStreamClosesReader(t *testing.T) {
	rec := &closeRecorder{Reader: strings.NewReader("data: x\n\n")}
	ch := StreamSseResponse(rec)
	collect(t, ch)
	assert.True(t, rec.closed)
}
