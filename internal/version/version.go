package version

// Build information set via ldflags at compile time.
var (
	// Version is the semantic version of the application.
	Version = "0.3.0"

	// Commit is the short git commit hash of the build.
	Commit = "unknown"
)

// Info returns version information as a structured map.
func Info() map[string]string {
	return map[string]string{
		"version": Version,
		"commit":  Commit,
	}
}
