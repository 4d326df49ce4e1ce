package server

import (
	"github.com/bokysan/base57"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"net/http"
	"strconv"
)

// decodeError is the body of the answer to input which does not decode
type decodeError struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
	Offset  int    `json:"offset"`
	Symbol  *byte  `json:"symbol,omitempty"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// errBodyTooLarge is the message of the error http.MaxBytesReader fails with
const errBodyTooLarge = "http: request body too large"

// readBody reads the whole request body. Bodies larger than MaxBodySize are answered with 413, bodies
// which cannot be read with 400.
func (ws *HttpServer) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, ws.MaxBodySize))
	if err == nil {
		return body, true
	}

	log.WithError(err).Debugf("Could not read request body: %v", err)
	if err.Error() == errBodyTooLarge {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
	} else {
		http.Error(w, "could not read request body", http.StatusBadRequest)
	}
	return nil, false
}

// handleEncode answers with the base57 text of the request body
func (ws *HttpServer) handleEncode(w http.ResponseWriter, r *http.Request) {
	body, ok := ws.readBody(w, r)
	if !ok {
		return
	}

	out := base57.AppendEncode(nil, body)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	if _, err := w.Write(out); err != nil {
		log.WithError(err).Debugf("Could not write response: %v", err)
	}
}

// handleDecode answers with the bytes encoded by the request body. Input which does not decode is
// answered with 400 and the reason and position of the failure.
func (ws *HttpServer) handleDecode(w http.ResponseWriter, r *http.Request) {
	body, ok := ws.readBody(w, r)
	if !ok {
		return
	}

	out := make([]byte, base57.DecodedMaxLen(len(body)))
	res := base57.Decode(out, body)
	if err := res.Err(); err != nil {
		writeDecodeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(res.Written))
	if _, err := w.Write(out[:res.Written]); err != nil {
		log.WithError(err).Debugf("Could not write response: %v", err)
	}
}

func writeDecodeError(w http.ResponseWriter, err error) {
	body := decodeError{Message: err.Error()}

	var corrupt *base57.CorruptInputError
	if errors.As(err, &corrupt) {
		body.Reason = corrupt.Reason.String()
		body.Offset = corrupt.Offset
		if corrupt.Reason == base57.ControlSymbol || corrupt.Reason == base57.InvalidSymbol {
			body.Symbol = &corrupt.Symbol
		}
		w.Header().Set("X-Base57-Reason", body.Reason)
		w.Header().Set("X-Base57-Offset", strconv.Itoa(body.Offset))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Debugf("Could not write response: %v", err)
	}
}
