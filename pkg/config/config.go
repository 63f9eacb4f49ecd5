package config

import "github.com/google/uuid"

// this holds the resolved configuration values from CLI
var (
	LogLevel  string // sets the log level (zap log level values)
	LogFormat string // text vs json
	LogFilter string // zapfilter rules, e.g. "debug:pipeline info:*"

	Addr       string // UDP listen addr for game telemetry
	BufferSize int    // max datagram size read from the socket

	RecordFile string // JSONL output file, "-" for stdout

	NatsURL    string // NATS server URL, empty disables publishing
	NatsPrefix string // subject prefix

	WSAddr string // listen addr for the websocket stream, empty disables it

	CanIface string // socketcan interface, empty disables forwarding

	EnableMetrics   bool   // periodic otel metric export to stdout
	MetricsInterval string // export interval

	// RunID identifies this process in logs and NATS headers.
	RunID = uuid.NewString()
)

const (
	DefaultAddr       = ":20777"
	DefaultBufferSize = 2048
	DefaultNatsPrefix = "f123"
)
