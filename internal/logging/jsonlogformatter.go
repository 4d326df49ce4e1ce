package logging

import (
	"fmt"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

// JSONLogFormatter is a chi middleware.LogFormatter which writes access log entries as logrus fields,
// ready for the JSON log output
type JSONLogFormatter struct {
	ServerAddress *net.TCPAddr
}

// JSONLogEntry is the access log entry of a single request
type JSONLogEntry struct {
	request       *http.Request
	serverAddress *net.TCPAddr
}

// NewLogEntry creates a new entry for the request
func (j *JSONLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &JSONLogEntry{
		request:       r,
		serverAddress: j.ServerAddress,
	}
}

func getHeader(headers http.Header, name string) string {
	if name == "" {
		return ""
	}
	return headers.Get(name)
}

func (j *JSONLogEntry) fields() logrus.Fields {
	r := j.request

	remoteUser, _, basicAuthOk := r.BasicAuth()
	if !basicAuthOk {
		remoteUser = ""
	}

	port := 0
	if j.serverAddress != nil {
		port = j.serverAddress.Port
	}

	return logrus.Fields{
		"vhost":                   r.Host,
		"remote_addr":             r.RemoteAddr,
		"remote_user":             remoteUser,
		"x-forwarded-for":         getHeader(r.Header, "X-Forwarded-For"),
		"request":                 fmt.Sprintf("%s %s %s", r.Method, r.RequestURI, r.Proto),
		"request_length":          r.ContentLength,
		"request_id":              middleware.GetReqID(r.Context()),
		"request_method":          r.Method,
		"request_uri":             r.RequestURI,
		"query_string":            r.URL.RawQuery,
		"server_protocol":         r.Proto,
		"server_port":             port,
		"received_content_length": r.ContentLength,
		"received_content_type":   getHeader(r.Header, "Content-Type"),
		"protocol":                "HTTP",
		"app":                     "base57",
		"type":                    "access",
		"user_agent":              r.UserAgent(),
	}
}

// Write outputs the log entry once the response has been sent
func (j *JSONLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	fields := j.fields()
	fields["request_time"] = elapsed.Seconds()
	fields["request_completion"] = "OK"
	fields["status"] = status
	fields["sent_bytes"] = bytes
	fields["sent_content_type"] = getHeader(header, "Content-Type")
	fields["extra"] = extra

	logrus.WithFields(fields).Debug()
}

// Panic outputs the log entry of a request whose handler panicked
func (j *JSONLogEntry) Panic(v interface{}, stack []byte) {
	fields := j.fields()
	fields["request_completion"] = ""
	fields["error"] = v
	fields["stack"] = string(stack)

	logrus.WithFields(fields).Errorf("%+v", v)
}
