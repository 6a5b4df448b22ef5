// Package pathfind implements the pathfinding engine behind the visualizer:
// an A* search over a square 4-connected grid with unit edge costs, and the
// reconstruction of the shortest path from the predecessor map it builds.
//
// It exposes two entry points:
//
//   - Search / FindPath: run the search to completion.
//   - Stepper: advance the search one expansion at a time so a UI can
//     animate the explored frontier.
//
// Both share one implementation. Every call owns its own search state and
// only reads the obstacle set it is given. "No path" is a normal outcome
// and is reported as an empty path, never as an error. Errors are returned
// only for invalid queries and wrap ErrInvalidQuery.
package pathfind
