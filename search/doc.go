// Package search defines the small set of generic types shared by the move
// generator (package movement) and the time-sliced A* engine (package
// astar): the Neighbor/Progression contract an expander returns, the
// InProgress/Finished increment a tick-budgeted search yields, and the
// PathResult a search hands to its caller.
//
// Nothing here is specific to the voxel world; these are the "traits" the
// rest of the core is built against, parameterized over whatever node type a
// concrete search uses.
package search
