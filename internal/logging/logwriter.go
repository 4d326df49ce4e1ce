package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"strings"
)

// ChiLogWriter sends the lines of chi's DefaultLogFormatter to logrus at debug level
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(a ...interface{}) {
	msg := strings.TrimRight(fmt.Sprint(a...), "\n")
	logrus.Debug(msg)
}
