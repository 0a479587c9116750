package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
)

// jsonLines encodes one value per line. After the first failed write it drops
// further output and reports that failure from Err.
type jsonLines struct {
	mu     sync.Mutex
	enc    *json.Encoder
	logger *slog.Logger
	err    error
}

func newJSONLines(out io.Writer, logger *slog.Logger) *jsonLines {
	return &jsonLines{enc: json.NewEncoder(out), logger: logger}
}

func (w *jsonLines) write(v any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return
	}
	if err := w.enc.Encode(v); err != nil {
		w.err = errors.Wrap(err, "failed to write output")
		w.logger.Error("Output write failed", slog.Any("error", err))
	}
}

// Err returns the first write failure.
func (w *jsonLines) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.err
}
