package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestError(t *testing.T) {
	plain(t)

	t.Run("returns error with title", func(t *testing.T) {
		var errOut bytes.Buffer
		err := New(&bytes.Buffer{}, &errOut).Error("Save failed", "slot 4 does not exist", nil)
		require.Error(t, err)
		require.Equal(t, "Save failed", err.Error())
		assert.Contains(t, errOut.String(), "slot 4 does not exist")
	})

	t.Run("single suggestion is printed as is", func(t *testing.T) {
		var errOut bytes.Buffer
		_ = New(&bytes.Buffer{}, &errOut).Error("No workspace", "", []string{"Run yahtzee init"})
		assert.Contains(t, errOut.String(), "Run yahtzee init\n")
		assert.NotContains(t, errOut.String(), "Either:")
	})

	t.Run("multiple suggestions are numbered", func(t *testing.T) {
		var errOut bytes.Buffer
		_ = New(&bytes.Buffer{}, &errOut).Error("Bad slot", "x", []string{"first", "second"})
		assert.Contains(t, errOut.String(), "Either:\n  1. first\n  2. second\n")
	})
}

func TestSuccessAndWarningPrefixes(t *testing.T) {
	plain(t)

	var out bytes.Buffer
	p := New(&out, &bytes.Buffer{})
	p.Success("saved to slot %d\n", 2)
	p.Success("✓ already prefixed\n")
	p.Warning("all slots full\n")

	assert.Equal(t, "✓ saved to slot 2\n✓ already prefixed\n⚠  all slots full\n", out.String())
}
