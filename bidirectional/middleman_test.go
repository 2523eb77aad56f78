package bidirectional_test

import (
	"testing"

	"github.com/katalvlaran/voxelpath/bidirectional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMiddleman_Scenario exercises a forward search visiting A, B, C, D
// interleaved with a backward search visiting Z, Y, C, X. The meeting point
// is C, emitted the moment backward's C arrives, regardless of how many
// forward messages are still in flight.
func TestMiddleman_Scenario(t *testing.T) {
	mm := bidirectional.NewMiddleman[string]()
	send := mm.NodeSender()

	send <- bidirectional.NodeMsg("A")
	send <- bidirectional.NodeMsg("Z")
	send <- bidirectional.NodeMsg("B")
	send <- bidirectional.NodeMsg("Y")
	send <- bidirectional.NodeMsg("C") // forward's C: first sighting, recorded only
	send <- bidirectional.NodeMsg("C") // backward's C: second sighting, the meeting point
	send <- bidirectional.NodeMsg("D")
	send <- bidirectional.NodeMsg("X")

	node, found := mm.GetSplit()
	require.True(t, found)
	assert.Equal(t, "C", node)
}

func TestMiddleman_ForwardExhaustionIsConclusive(t *testing.T) {
	mm := bidirectional.NewMiddleman[int]()
	send := mm.NodeSender()

	send <- bidirectional.NodeMsg(1)
	send <- bidirectional.NodeMsg(2)
	send <- bidirectional.FinishedMsg[int](true)

	_, found := mm.GetSplit()
	assert.False(t, found)
}

func TestMiddleman_BackwardExhaustionAloneIsNotFatal(t *testing.T) {
	mm := bidirectional.NewMiddleman[int]()
	send := mm.NodeSender()

	send <- bidirectional.NodeMsg(1)
	send <- bidirectional.FinishedMsg[int](false) // backward alone: ignored
	send <- bidirectional.NodeMsg(1)              // forward re-observes 1: meeting point

	node, found := mm.GetSplit()
	require.True(t, found)
	assert.Equal(t, 1, node)
}

func TestMiddleman_EmitsAtMostOneValue(t *testing.T) {
	mm := bidirectional.NewMiddleman[int]()
	send := mm.NodeSender()
	send <- bidirectional.NodeMsg(1)
	send <- bidirectional.NodeMsg(1)

	_, found := mm.GetSplit()
	require.True(t, found)

	// A second GetSplit call must not hang or panic: the channel is closed
	// after the single verdict, so it returns the zero value promptly.
	_, found2 := mm.GetSplit()
	assert.False(t, found2)
}

func TestMiddleman_ChannelClosedBeforeTerminationIsNoMeeting(t *testing.T) {
	mm := bidirectional.NewMiddleman[int]()
	close(mm.NodeSender())

	_, found := mm.GetSplit()
	assert.False(t, found)
}
