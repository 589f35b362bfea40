// Package responsewriter wraps http.ResponseWriter to capture the status
// code and number of bytes written, for logging and metrics middleware.
package responsewriter

import "net/http"

// ResponseWriter records the status code and response size of a request.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

// Wrap returns a recording wrapper around w. The status code defaults to
// 200 OK, matching net/http's behavior when WriteHeader is never called.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (w *ResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// StatusCode returns the recorded status code.
func (w *ResponseWriter) StatusCode() int { return w.statusCode }

// BytesWritten returns the number of body bytes written.
func (w *ResponseWriter) BytesWritten() int { return w.bytesWritten }
