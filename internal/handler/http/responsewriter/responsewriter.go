// Package responsewriter records the status code and body size of a response
// so the logging, metrics, tracing and SLO middleware can report them.
package responsewriter

import "net/http"

// Recorder is an http.ResponseWriter that remembers what was sent.
type Recorder struct {
	http.ResponseWriter
	status int // zero until the header is sent
	size   int
}

// Wrap returns a Recorder for w. Stacked middleware share one Recorder.
func Wrap(w http.ResponseWriter) *Recorder {
	if rec, ok := w.(*Recorder); ok {
		return rec
	}
	return &Recorder{ResponseWriter: w}
}

// WriteHeader forwards only the first status code.
func (r *Recorder) WriteHeader(status int) {
	if r.status != 0 {
		return
	}
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *Recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// Flush sends buffered data if the underlying writer supports it.
func (r *Recorder) Flush() {
	if r.status == 0 {
		r.WriteHeader(http.StatusOK)
	}
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// StatusCode is the status sent, or 200 when the handler wrote nothing.
func (r *Recorder) StatusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// BytesWritten is the response body size.
func (r *Recorder) BytesWritten() int { return r.size }

// Written reports whether the header has been sent.
func (r *Recorder) Written() bool { return r.status != 0 }

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *Recorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }
