package redact

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringRedactsAPIKeys(t *testing.T) {
	t.Parallel()

	out := String("request failed: api_key=AIzaSyD9x8y7z6w5v4u3t2")
	assert.NotContains(t, out, "AIzaSyD9x8y7z6w5v4u3t2")
	assert.Contains(t, out, RedactedKeyPlaceholder)
}

func TestStringRedactsPaths(t *testing.T) {
	t.Parallel()

	out := String("open /etc/cardsmith/config.yaml: permission denied")
	assert.NotContains(t, out, "/etc/cardsmith/config.yaml")
	assert.Contains(t, out, RedactedPathPlaceholder)
}

func TestStringRedactsHosts(t *testing.T) {
	t.Parallel()

	out := String("dial tcp generativelanguage.googleapis.com:443: i/o timeout")
	assert.False(t, strings.Contains(out, "googleapis.com"), "got %q", out)
}

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Error(nil))
	assert.Contains(t, Error(errors.New("plain message")), "plain message")
}
