package astar_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/voxelpath/astar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProblem_IterateAndRecalc(t *testing.T) {
	def := astar.ProblemDefinition[point, point]{
		Start:     point{0},
		Heuristic: manhattan(5),
		GoalCheck: func(p point) bool { return p.x == 5 },
		Expander:  line(10, nil),
		ToRecord:  identity,
	}
	sp := astar.NewSearchProblem(def)

	inc := sp.IterateUntil(time.Now().Add(time.Hour))
	require.True(t, inc.Done)
	assert.True(t, inc.Result.Complete)
	assert.Equal(t, point{5}, inc.Result.Path[len(inc.Result.Path)-1])

	sp.Recalc(point{5})
	assert.Equal(t, point{5}, sp.Start())
}
