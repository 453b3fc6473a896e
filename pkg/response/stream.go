package response

import (
	"encoding/json"
	"iter"
	"net/http"
)

const ContentTypeNDJSON = "application/x-ndjson"

// NDJSON writes one JSON document per line, flushing after every item so
// clients receive rows while the stream is still reading. It returns the first
// error from seq or from the connection. Once the first line is written the
// status can no longer change, so the caller can only log and stop.
func NDJSON[T any](w http.ResponseWriter, seq iter.Seq2[T, error]) (written int, err error) {
	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)

	for item, err := range seq {
		if err != nil {
			return written, err
		}
		if written == 0 {
			w.Header().Set("Content-Type", ContentTypeNDJSON)
			w.WriteHeader(http.StatusOK)
		}
		if err := enc.Encode(item); err != nil {
			return written, err
		}
		written++
		if flusher != nil {
			flusher.Flush()
		}
	}

	if written == 0 {
		w.Header().Set("Content-Type", ContentTypeNDJSON)
		w.WriteHeader(http.StatusOK)
	}
	return written, nil
}
