// Package prediction implements the ghost-tree prediction manager: on
// every cursor update it clears the prior ephemeral ghost
// graph, builds a fresh package tree.Tree at the cursor state (scaling
// grandchild dt by a configured factor), optionally replays a cached
// pair-optimized 12-vector over it via tree.Tree.UpdatePositions, and
// mirrors the resulting tree into a ghost graph.Graph as ghost_max/
// ghost_min typed links.
//
// It subscribes to dtctl.Manager's on_change notifications to implement
// the rescaling rule: when the DT manager's current dt changes, any
// cached pair-optimized vector is scaled by new_dt/baseline and the ghost
// tree is rebuilt from the last known cursor state.
package prediction
