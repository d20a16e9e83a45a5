package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockedURLPatternsCoverRemoteAndLocalSchemes(t *testing.T) {
	blocked := func(url string) bool {
		for _, p := range blockedURLPatterns {
			if strings.HasPrefix(url, strings.TrimSuffix(p, "*")) {
				return true
			}
		}
		return false
	}

	for _, url := range []string{
		"http://169.254.169.254/latest/meta-data/",
		"https://10.0.0.1/internal",
		"ws://localhost:9222/devtools",
		"file:///etc/passwd",
	} {
		assert.True(t, blocked(url), url)
	}
	assert.False(t, blocked("data:image/png;base64,AAAA"))
	assert.False(t, blocked("about:blank"))
}
