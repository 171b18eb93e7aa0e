package service

// Stdio serves a dispatcher over newline-delimited envelopes: one request
// per line on the reader, one response per line on the writer. It is how the
// CLI exercises the dispatcher without binding it to any network transport;
// callers that want HTTP or WebSocket framing mount the dispatcher behind
// their preferred server instead.

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/theapemachine/dispatch-go/pkg/dispatch"
)

// maxLineSize bounds a single request line (1 MiB).
const maxLineSize = 1 << 20

type Stdio struct {
	dispatcher *dispatch.Dispatcher
}

func NewStdio(dispatcher *dispatch.Dispatcher) *Stdio {
	return &Stdio{dispatcher: dispatcher}
}

/*
Run reads request envelopes from r until EOF or context cancellation,
dispatching each and writing the response envelope to w. Blank lines are
skipped. Each call is tagged with a fresh call ID in the logs so overlapping
invocations can be told apart.
*/
func (s *Stdio) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := bytes.TrimSpace(scanner.Bytes())

		if len(line) == 0 {
			continue
		}

		callID := uuid.NewString()
		started := time.Now()

		resp := s.dispatcher.Handle(ctx, json.RawMessage(line))

		log.Debug(
			"call handled",
			"call", callID,
			"duration", time.Since(started),
			"failed", resp.Error != nil,
		)

		if err := encoder.Encode(resp); err != nil {
			return err
		}
	}

	return scanner.Err()
}
