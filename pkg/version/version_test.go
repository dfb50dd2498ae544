package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
}

func TestString(t *testing.T) {
	s := Get().String()

	assert.True(t, strings.HasPrefix(s, "testplan "))
	assert.Contains(t, s, Version)
	assert.Contains(t, s, runtime.Version())
}

func TestShort(t *testing.T) {
	assert.Equal(t, Version, Short())
}
