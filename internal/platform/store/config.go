package store

import "time"

// Object store backends understood by Open
const (
	BackendMemory = "memory"
	BackendPG     = "pg"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG      PGConfig
	Objects ObjectsConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// Guard/boot knobs:
	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// ObjectsConfig selects the object store backend
// "pg" requires PG.Enabled; empty means memory
type ObjectsConfig struct {
	Backend string
}
