package console

import "github.com/sirupsen/logrus"

// Severity mirrors the toast levels of the UI.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier receives the transient, user-facing outcome of an operation.
// It is injected per controller; there is no shared notification singleton.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string, severity Severity)

func (f NotifierFunc) Notify(message string, severity Severity) { f(message, severity) }

// LogNotifier forwards notifications to a logrus logger. Used where no
// interactive surface is attached.
type LogNotifier struct {
	Logger *logrus.Logger
}

func (n *LogNotifier) Notify(message string, severity Severity) {
	entry := n.Logger.WithField("severity", string(severity))
	switch severity {
	case SeverityError:
		entry.Error(message)
	case SeverityWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}
