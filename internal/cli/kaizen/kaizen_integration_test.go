package kaizen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretedriver/gemba/internal/testutil/cli"
)

func TestKaizenAdd_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	t.Run("quiet mode returns the item ID", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--description", "Move rack closer to line", "--impact", "4", "--effort", "1", "--quiet"})

		require.NoError(t, err)
		itemID := strings.TrimSpace(output)
		assert.Regexp(t, `^\d+$`, itemID)

		var description, status string
		err = db.QueryRowContext(context.Background(),
			"SELECT description, status FROM kaizen_items WHERE id = ?", itemID).Scan(&description, &status)
		require.NoError(t, err)
		assert.Equal(t, "Move rack closer to line", description)
		assert.Equal(t, "open", status)
	})

	t.Run("human output flags quick wins", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--description", "Label the bins", "--impact", "4", "--effort", "2", "--owner", "Rosa"})

		require.NoError(t, err)
		assert.Contains(t, output, "leverage 2.00")
		assert.Contains(t, output, "Quick win")
		assert.Contains(t, output, "Rosa")
	})
}

func TestKaizenList_QuickWins(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	_, err := cli.ExecuteCLICommand(t, app, AddCmd(),
		[]string{"--description", "Big rebuild", "--impact", "5", "--effort", "5", "--quiet"})
	require.NoError(t, err)
	_, err = cli.ExecuteCLICommand(t, app, AddCmd(),
		[]string{"--description", "Shadow board for tools", "--impact", "4", "--effort", "1", "--quiet"})
	require.NoError(t, err)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quick-wins", "--quiet"})
	require.NoError(t, err)

	ids := strings.Fields(strings.TrimSpace(output))
	assert.Len(t, ids, 1)

	full, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, full, "Found 2 items")
	assert.Contains(t, full, "Big rebuild")
}

func TestKaizenAdvance_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	output, err := cli.ExecuteCLICommand(t, app, AddCmd(),
		[]string{"--description", "Rebalance stations", "--impact", "3", "--effort", "2", "--quiet"})
	require.NoError(t, err)
	itemID := strings.TrimSpace(output)

	t.Run("single step moves open to in-progress", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, app, AdvanceCmd(), []string{"--id", itemID})
		require.NoError(t, err)
		assert.Contains(t, out, "in-progress")
	})

	t.Run("explicit target can skip ahead", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, app, AdvanceCmd(), []string{"--id", itemID, "--to", "done"})
		require.NoError(t, err)
		assert.Contains(t, out, "done")

		var status string
		err = db.QueryRowContext(context.Background(),
			"SELECT status FROM kaizen_items WHERE id = ?", itemID).Scan(&status)
		require.NoError(t, err)
		assert.Equal(t, "done", status)
	})
}

func TestKaizenUpdate_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	output, err := cli.ExecuteCLICommand(t, app, AddCmd(),
		[]string{"--description", "Stage fasteners at point of use", "--impact", "2", "--effort", "2", "--quiet"})
	require.NoError(t, err)
	itemID := strings.TrimSpace(output)

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(),
		[]string{"--id", itemID, "--impact", "5", "--owner", "Marcus", "--quiet"})
	require.NoError(t, err)

	var impact, effort int
	var owner string
	err = db.QueryRowContext(context.Background(),
		"SELECT impact, effort, owner FROM kaizen_items WHERE id = ?", itemID).Scan(&impact, &effort, &owner)
	require.NoError(t, err)
	assert.Equal(t, 5, impact)
	assert.Equal(t, 2, effort) // untouched flags stay put
	assert.Equal(t, "Marcus", owner)
}

func TestKaizenDelete_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	output, err := cli.ExecuteCLICommand(t, app, AddCmd(),
		[]string{"--description", "Duplicate idea", "--impact", "1", "--effort", "1", "--quiet"})
	require.NoError(t, err)
	itemID := strings.TrimSpace(output)

	_, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", itemID, "--quiet"})
	require.NoError(t, err)

	var count int
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM kaizen_items WHERE id = ?", itemID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
