package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Niki1320/supply-chain/internal/catalog"
)

func TestState_FinishLoad(t *testing.T) {
	state := catalog.NewState()

	first := catalog.NewSnapshot([]catalog.Entry{{Product: testProduct(1)}})

	state.BeginLoad()
	assert.True(t, state.Loading)

	state.FinishLoad(first, nil)
	assert.False(t, state.Loading)
	require.NoError(t, state.Err)
	assert.Same(t, first, state.Snapshot)

	// A failed reload keeps the snapshot the user is looking at.
	state.BeginLoad()
	state.FinishLoad(nil, errors.New("ledger unreachable"))

	assert.False(t, state.Loading)
	assert.Error(t, state.Err)
	assert.Same(t, first, state.Snapshot)
}

func TestState_Notices(t *testing.T) {
	state := catalog.NewState()
	snap := catalog.NewSnapshot([]catalog.Entry{{Product: testProduct(1)}})
	state.FinishLoad(snap, nil)

	state.TransitionFailed("ship failed: ledger rejected the transaction")
	assert.True(t, state.Notice.Err)
	assert.Equal(t, "ship failed: ledger rejected the transaction", state.Notice.Text)
	assert.Same(t, snap, state.Snapshot)

	state.TransitionAccepted("ship submitted: 0xabc")
	assert.False(t, state.Notice.Err)

	state.ClearNotice()
	assert.Empty(t, state.Notice.Text)
}
