package logging

import "testing"

func TestNewTestLoggerImplementsLogger(t *testing.T) {
	var l Logger = NewTestLogger(t)
	l.Debugf("rectification table built: %d entries", 42)
}
