package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textscrub/pkg/config"
)

func TestRulesTable(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.Default()

		data := rulesTable(cfg)
		require.Len(t, data, 1+len(cfg.Emoji)+len(cfg.Tags)+2, "header, one row per entry, separator and cleanup")
		assert.Equal(t, []string{"stage", "#", "from", "to"}, data[0])
		assert.Equal(t, []string{"emoji", "1", `"✅"`, `""`}, data[1])
		assert.Equal(t, "separator", data[len(data)-2][0])
		assert.Equal(t, []string{"cleanup", "1", `//\s+\s+`, `"// "`}, data[len(data)-1])
	})

	t.Run("disabled_stages", func(t *testing.T) {
		cfg := config.Default()
		cfg.Emoji = nil
		cfg.Separator = config.Replacement{}
		cfg.Cleanup = config.Cleanup{}

		data := rulesTable(cfg)
		require.Len(t, data, 1+len(cfg.Tags))
		assert.Equal(t, []string{"tag", "2", `"[NEW]"`, `""`}, data[2])
	})
}
