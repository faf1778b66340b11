package instance

import "os"

// GetID returns the identifier for this process instance, used in startup
// log fields. Deployment tooling sets INSTANCE_ID; containers fall back to
// the hostname.
func GetID() string {
	if id := os.Getenv("INSTANCE_ID"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
