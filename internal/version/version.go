package version

// Set via -ldflags at build time.
var (
	AppName   = "Utility Bot"
	Version   = "dev"
	BuildDate = "unknown"
)
