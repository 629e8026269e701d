package middleware

import (
	"github.com/gin-gonic/gin"
)

// hookWriter runs its hook once, right before the first byte of the
// response (and so its header) goes out.
type hookWriter struct {
	gin.ResponseWriter
	hook  func(status int)
	fired bool
}

// beforeWrite installs fn on the current response writer. Callers must
// call flush after c.Next() so handlers that write no body still run it.
func beforeWrite(c *gin.Context, fn func(status int)) *hookWriter {
	w := &hookWriter{ResponseWriter: c.Writer, hook: fn}
	c.Writer = w
	return w
}

func (w *hookWriter) fire() {
	if w.fired {
		return
	}
	w.fired = true
	w.hook(w.Status())
}

func (w *hookWriter) flush() {
	if !w.Written() {
		w.fire()
	}
}

func (w *hookWriter) WriteHeaderNow() {
	w.fire()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *hookWriter) Write(data []byte) (int, error) {
	w.fire()
	return w.ResponseWriter.Write(data)
}

func (w *hookWriter) WriteString(s string) (int, error) {
	w.fire()
	return w.ResponseWriter.WriteString(s)
}

func (w *hookWriter) Flush() {
	w.fire()
	w.ResponseWriter.Flush()
}
