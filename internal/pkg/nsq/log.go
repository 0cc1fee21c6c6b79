package nsq

import (
	"strings"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
)

// nsqLogger forwards go-nsq client logs to the application logger
type nsqLogger struct{}

func (nsqLogger) Output(_ int, s string) error {
	switch {
	case strings.HasPrefix(s, "ERR"):
		logger.Error(strings.TrimSpace(s[3:]), logger.String("component", "nsq"))
	case strings.HasPrefix(s, "WRN"):
		logger.Warn(strings.TrimSpace(s[3:]), logger.String("component", "nsq"))
	default:
		logger.Debug(s, logger.String("component", "nsq"))
	}
	return nil
}
