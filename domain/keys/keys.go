package keys

import (
	"strings"
)

const (
	// PfxHealthCheck prefixes the health check probe key
	PfxHealthCheck = "healthcheck"
	// PfxNonce prefixes pending login nonces
	PfxNonce = "nonce"
	// PfxWhitelist prefixes cached whitelist answers
	PfxWhitelist = "whitelist"
)

// CustomKey joins components with delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey joins components with ':'
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns the first one or two components of a key, used to tag metrics
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	switch {
	case len(s) > 2:
		return s[0] + ":" + s[1]
	case len(s) > 1:
		return s[0]
	}
	return ""
}
