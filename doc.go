// Package treegen generates labeled trees from Prüfer sequences — decode a
// fixed sequence into the exact tree it encodes, or sample uniformly random
// trees for fixtures and benchmarks.
//
// 🚀 What is treegen?
//
//	A small, thread-safe toolkit built around one classic bijection:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Prüfer decoding: sequence → labeled tree in O(n)
//		• Uniform sampling: every labeled tree on n vertices, equally likely
//		• Structure checks: IsTree, IsForest, IsConnected
//		• Node-link JSON import for fixtures from other toolkits
//
// ✨ Why choose treegen?
//
//   - Deterministic – same sequence or same seed, same tree, always
//   - Rock-solid guarantees – R/W locks, sentinel errors, errors.Is friendly
//   - Pluggable naming – vertex IDs minted by suppliers (decimal, prefix, UUID)
//   - Extensible – bring your own weight distribution or random source
//
// Under the hood, everything is organized under four subpackages:
//
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	prufer/    — sequence validation, uniform sampling, decoding, generation
//	treecheck/ — connectivity, forest and tree predicates (union-find based)
//	jsonio/    — node-link JSON import into core graphs
//
// Quick ASCII example:
//
//	sequence {4,4,4,5} on six vertices decodes to
//
//	    0   1   2
//	     \  |  /
//	      \ | /
//	        4───5───3
//
//	leaves 0, 1, 2 hang off vertex 4; leaf 3 hangs off vertex 5.
//
//	go get github.com/pabender/treegen
package treegen
