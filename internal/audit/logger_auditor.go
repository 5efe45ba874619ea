// filepath: internal/audit/logger_auditor.go
package audit

import (
	"context"
	"gamelog/internal/logging"
	"gamelog/internal/services"

	"github.com/sirupsen/logrus"
)

var _ services.Auditor = (*LoggerAuditor)(nil)

// LoggerAuditor writes tracker mutations to the application log.
type LoggerAuditor struct {
	enabled bool
	logger  *logrus.Logger
}

// NewLoggerAuditor creates a new instance of LoggerAuditor on the package logger.
func NewLoggerAuditor(enabled bool) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled}
}

// WithLogger directs audit events to logger instead of the package logger.
func (a *LoggerAuditor) WithLogger(logger *logrus.Logger) *LoggerAuditor {
	a.logger = logger
	return a
}

// Log records an event at info level if auditing is enabled.
func (a *LoggerAuditor) Log(ctx context.Context, action string, resource string, details map[string]interface{}) {
	if !a.enabled {
		return
	}

	fields := logrus.Fields{
		"audit_action":   action,
		"audit_resource": resource,
	}
	for k, v := range details {
		fields["detail."+k] = v
	}

	logger := a.logger
	if logger == nil {
		logger = logging.Log
	}
	logger.WithContext(ctx).WithFields(fields).Info("AUDIT EVENT")
}
