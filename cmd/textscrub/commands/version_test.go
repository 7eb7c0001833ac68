package commands

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.NotEmpty(t, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)

	info = &VersionInfo{Version: "v1.2.3", GoVersion: "go1.23.5", Platform: "linux/amd64", Revision: "abc123", Modified: true}
	assert.Equal(t, "textscrub v1.2.3\nRevision:  abc123 (modified)\nGo:        go1.23.5\nPlatform:  linux/amd64\n", info.String())
}

func TestVersionCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "textscrub ")
		assert.Contains(t, out.String(), runtime.Version())
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--json"})

		require.NoError(t, cmd.Execute())

		var got VersionInfo
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, runtime.Version(), got.GoVersion)
	})
}
