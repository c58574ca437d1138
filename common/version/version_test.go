package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersionString(t *testing.T) {
	oldTag, oldCommit := gitTag, gitCommit
	t.Cleanup(func() {
		gitTag, gitCommit = oldTag, oldCommit
	})

	gitTag = "v1.2.3-4-gdeadbee"
	gitCommit = "deadbee"

	s := BuildVersionString("VoxChain CLI")
	assert.Contains(t, s, "VoxChain CLI")
	assert.Contains(t, s, "Version:\tv1.2.3\n")
	assert.Contains(t, s, "Git commit:\tdeadbee")
	assert.Contains(t, s, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestBuildVersionStringUnknown(t *testing.T) {
	oldTag := gitTag
	t.Cleanup(func() { gitTag = oldTag })
	gitTag = ""

	assert.Contains(t, BuildVersionString("x"), "Version:\t"+unknownVersion)
	assert.Equal(t, unknownRevision, GetGitRevision())
}
