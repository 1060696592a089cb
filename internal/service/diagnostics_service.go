package service

import (
	"context"
	"fmt"
	"time"
)

const (
	diagnosticTimeout = 5 * time.Second
	slowThreshold     = 3 * time.Second
)

// Pinger is any dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// ConnectionReport is the outcome of a connection check.
type ConnectionReport struct {
	Status       string            `json:"status"` // success, warning or error
	Message      string            `json:"message,omitempty"`
	Error        string            `json:"error,omitempty"`
	ResponseTime string            `json:"responseTime"`
	Checks       map[string]string `json:"checks"`
}

// DiagnosticsService checks connectivity to the backing stores
type DiagnosticsService struct {
	targets map[string]Pinger
	timeout time.Duration
	slow    time.Duration
}

// NewDiagnosticsService creates a diagnostics service over named targets
func NewDiagnosticsService(targets map[string]Pinger) *DiagnosticsService {
	return &DiagnosticsService{targets: targets, timeout: diagnosticTimeout, slow: slowThreshold}
}

// CheckConnection pings every target under one deadline.
func (s *DiagnosticsService) CheckConnection(ctx context.Context) *ConnectionReport {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report := &ConnectionReport{Checks: map[string]string{}}
	start := time.Now()
	var firstErr error
	for name, target := range s.targets {
		if err := target.Ping(ctx); err != nil {
			report.Checks[name] = err.Error()
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", name, err)
			}
			continue
		}
		report.Checks[name] = "ok"
	}
	elapsed := time.Since(start)
	report.ResponseTime = fmt.Sprintf("%dms", elapsed.Milliseconds())

	switch {
	case firstErr != nil:
		report.Status = "error"
		report.Error = firstErr.Error()
	case elapsed > s.slow:
		report.Status = "warning"
		report.Message = "Conexão estabelecida, mas com tempo de resposta alto"
	default:
		report.Status = "success"
		report.Message = "Conexão estabelecida com sucesso"
	}
	return report
}
