package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	defer func(v, c, b string) { Version, GitCommit, BuildTime = v, c, b }(Version, GitCommit, BuildTime)

	Version, GitCommit, BuildTime = "1.2.3", "unknown", "unknown"
	assert.Equal(t, "gorebar v1.2.3", String())

	GitCommit = "3f2c1ab"
	assert.Equal(t, "gorebar v1.2.3 (3f2c1ab)", String())

	BuildTime = "2026-10-19"
	assert.Equal(t, "gorebar v1.2.3 (3f2c1ab, 2026-10-19)", String())

	GitCommit = ""
	assert.Equal(t, "gorebar v1.2.3 (built 2026-10-19)", String())
}
