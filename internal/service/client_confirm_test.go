package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteConfirmation_StageAndDecline(t *testing.T) {
	d := NewDeleteConfirmation()

	d.Stage("abc")
	assert.True(t, d.Pending())
	assert.Equal(t, "abc", d.StagedID())

	d.Decline()
	assert.False(t, d.Pending())
	assert.Empty(t, d.StagedID())
}

// TestDeleteConfirmation_DeclineLeavesNothingToConfirm verifies that staging
// then declining leaves no id for a later confirm to act on.
func TestDeleteConfirmation_DeclineLeavesNothingToConfirm(t *testing.T) {
	d := NewDeleteConfirmation()

	d.Stage("abc")
	d.Decline()

	_, ok := d.Confirm()
	assert.False(t, ok)
}

func TestDeleteConfirmation_ConfirmReturnsStagedIDOnce(t *testing.T) {
	d := NewDeleteConfirmation()

	d.Stage("abc")

	id, ok := d.Confirm()
	require.True(t, ok)
	assert.Equal(t, "abc", id)
	assert.False(t, d.Pending())

	// A second confirm with nothing staged is a no-op.
	_, ok = d.Confirm()
	assert.False(t, ok)
}
