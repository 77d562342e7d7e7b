package utils

import (
	"log"
	"net/http"
	"os"
	"time"
)

// LoggerConfig defines the logger configuration
type LoggerConfig struct {
	// Log format (text/json)
	Format string
	// Output stream (os.Stdout, a file, etc.)
	Output *os.File
	// Enable/disable console colors
	EnableColors bool
}

// InitLogger initializes and returns the logger
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Learning Platform] "

	var logger *log.Logger
	if cfg.Format == "json" {
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
	} else {
		if cfg.EnableColors {
			prefix = "\033[36m" + prefix + "\033[0m"
		}
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
	}

	return logger
}

// LoggingTransport wraps an http.RoundTripper and logs every outgoing
// request with method, path, status and latency.
type LoggingTransport struct {
	Base   http.RoundTripper
	Logger *log.Logger
	Colors bool
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	latency := time.Since(start)

	if t.Logger == nil {
		return resp, err
	}

	method := req.Method
	path := req.URL.Path

	if err != nil {
		t.Logger.Printf("%s %s FAILED %s %v", method, path, latency, err)
		return resp, err
	}

	status := resp.StatusCode
	var statusColor, methodColor, resetColor string
	if t.Colors {
		statusColor, methodColor, resetColor = getStatusColor(status), getMethodColor(method), "\033[0m"
	}

	t.Logger.Printf("%s%s%s %s %s%d%s %s",
		methodColor, method, resetColor,
		path,
		statusColor, status, resetColor,
		latency,
	)

	return resp, err
}

func getStatusColor(status int) string {
	switch {
	case status >= 500:
		return "\033[31m" // red
	case status >= 400:
		return "\033[33m" // yellow
	case status >= 300:
		return "\033[36m" // cyan
	case status >= 200:
		return "\033[32m" // green
	default:
		return "\033[37m" // white
	}
}

func getMethodColor(method string) string {
	switch method {
	case "GET":
		return "\033[34m" // blue
	case "POST":
		return "\033[33m" // yellow
	case "PUT":
		return "\033[36m" // cyan
	case "DELETE":
		return "\033[31m" // red
	case "PATCH":
		return "\033[32m" // green
	default:
		return "\033[37m" // white
	}
}
