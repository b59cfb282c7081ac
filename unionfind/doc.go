// Package unionfind implements a weighted quick-union (disjoint-set) data
// structure over the dense site range [0, n), with union by rank and path
// compression by halving.
//
// What & Why
//
//   - A DisjointSet partitions sites into components and answers two
//     questions quickly: "which component does p belong to?" (Find) and
//     "are p and q in the same component?" (Connected). Union merges two
//     components and maintains a live component count.
//
//   - The structure backs every connectivity question in this module:
//     the optimality checker rebuilds one per verification pass, and one
//     more per forest edge while probing the cut-optimality conditions.
//
// Algorithm
//
//   - Union by rank: the root of the lower-rank tree is attached under the
//     root of the higher-rank tree; on a rank tie one root is picked and
//     its rank incremented. This bounds tree height by O(log n).
//
//   - Path compression by halving: during Find, every visited site's parent
//     pointer is redirected to its grandparent, so repeated traversals keep
//     shortening the path without a second pass.
//
// Complexity
//
//	– Find / Union / Connected: O(α(n)) amortized (inverse Ackermann,
//	  effectively constant); Count: O(1).
//	– Space: O(n) for the parent and rank arrays.
//
// Error semantics
//
//   - New returns ErrNegativeCount when asked for a negative number of sites.
//   - Find, Union and Connected panic with ErrSiteOutOfRange when handed a
//     site outside [0, n). Out-of-range sites are programmer errors, raised
//     at the call site and never caught internally — validate indices before
//     use.
package unionfind
