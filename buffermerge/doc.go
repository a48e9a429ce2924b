// Package buffermerge commits ghost previews: given a ghost tree.Tree and
// a distance threshold, build an intermediate ε-collapsed buffer graph
// (root → children → grandchildren, in that order) and then materialize it
// into the shared real graph.Graph as one atomic idmanager.Group.
package buffermerge
