package capacity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretedriver/gemba/internal/testutil/cli"
)

func TestCapacityPlan_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	t.Run("quiet mode prints the bottleneck capacity", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, PlanCmd(),
			[]string{"--goal", "200", "--installers", "24", "--install-minutes", "65", "--qa", "8", "--drivers", "6", "--quiet"})

		require.NoError(t, err)
		// 24 installers * 960 min / 65 min per unit = 354, the slowest role
		assert.Equal(t, "354", strings.TrimSpace(output))
	})

	t.Run("human output names the bottleneck and verdict", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, PlanCmd(),
			[]string{"--goal", "200", "--installers", "24", "--install-minutes", "65", "--qa", "8", "--drivers", "6"})

		require.NoError(t, err)
		assert.Contains(t, output, "Bottleneck: Install")
		assert.Contains(t, output, "goal met")
		assert.Contains(t, output, "takt 4.80 min/unit")
	})

	t.Run("understaffed role gets a hiring recommendation", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, PlanCmd(),
			[]string{"--goal", "600", "--installers", "24", "--install-minutes", "65", "--qa", "8", "--drivers", "6"})

		require.NoError(t, err)
		assert.Contains(t, output, "goal at risk")
		assert.Contains(t, output, "add")
	})
}
