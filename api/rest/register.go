package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Err is an HTTP-mapped handler error.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

// NewErrf creates an Err with the given status code and formatted message.
func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}
}

// pathParamSetter is implemented by request types that read path wildcards.
type pathParamSetter interface {
	setPathParams(r *http.Request)
}

// RegisterFunc registers a typed handler on the mux: the request body (if
// any) is JSON-decoded into Req, path wildcards are applied, and the
// response (or *Err) is JSON-encoded back.
func RegisterFunc[Req any, Resp any](
	logger *logrus.Logger,
	mux *http.ServeMux,
	method, pattern string,
	handler func(ctx context.Context, req *Req) (*Resp, error),
) {
	mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		req := new(Req)
		if r.Body != nil && r.ContentLength != 0 {
			err := json.NewDecoder(r.Body).Decode(req)
			if err != nil {
				writeJSON(logger, w, http.StatusBadRequest, &Err{Message: "Invalid JSON request body"})
				return
			}
		}
		if setter, ok := any(req).(pathParamSetter); ok {
			setter.setPathParams(r)
		}

		resp, err := handler(r.Context(), req)
		if err != nil {
			handlerErr := &Err{}
			if errors.As(err, &handlerErr) {
				writeJSON(logger, w, handlerErr.StatusCode, handlerErr)
				return
			}
			logger.WithField("pattern", pattern).WithError(err).Error("Handler returned an unexpected error")
			writeJSON(logger, w, http.StatusInternalServerError, &Err{Message: "Internal server error"})
			return
		}

		writeJSON(logger, w, http.StatusOK, resp)
	})
}

func writeJSON(logger *logrus.Logger, w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		logger.WithError(err).Error("Failed to encode response body")
	}
}
