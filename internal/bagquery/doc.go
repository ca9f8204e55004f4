// Package bagquery answers the two containment questions asked of a
// bag.Collection:
//
//   - reachability: which bags can eventually hold a given colour
//     (CanReach, Containers, CountContainers, CountContainersParallel);
//   - weighted containment: how many bags a given bag must hold in total
//     (CountContent, CountRequired).
//
// Every query is a read-only walk. Colours that resolve to no declared bag are
// dead ends, never errors. Cyclic rules cannot hang a query: reachability
// tracks visited colours, and the weighted count reports ErrCycle because the
// total would be unbounded.
package bagquery
