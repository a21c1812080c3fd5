package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "whitelist:0xabc:1", RedisKey(PfxWhitelist, "0xabc", "1"))
	assert.Equal(t, "a", RedisKey("a"))
}

func TestGetPrefix(t *testing.T) {
	cases := []struct {
		key string
		exp string
	}{
		{"whitelist:0xabc:1", "whitelist:0xabc"},
		{"nonce:0xabc", "nonce"},
		{"plain", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.exp, GetPrefix(c.key), c.key)
	}
}
