// Package dag holds the containment graph of a bag collection: one vertex per
// declared colour and a directed edge from every bag to each bag it directly
// holds. Its job is structural validation, chiefly proving that the
// containment relation is acyclic before a caller relies on that.
//
// Edges that name an undeclared colour are not represented. They can never
// take part in a cycle.
package dag
