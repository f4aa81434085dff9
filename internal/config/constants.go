package config

import "time"

const (
	EnvPrefix      = "LANDING"
	ConfigName     = "landing"
	DefaultAddr    = ":8501"
	DefaultSiteDir = "."
	DefaultOutput  = "public"

	ServerReadTimeout    = 10 * time.Second
	ServerWriteTimeout   = 60 * time.Second
	ServerIdleTimeout    = 120 * time.Second
	ServerMaxHeaderBytes = 1 << 20
	ShutdownTimeout      = 10 * time.Second

	ReloadDebounce = 500 * time.Millisecond
)
