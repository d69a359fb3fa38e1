// Package core provides the in-memory, index-arena Graph that every
// rostergraph analysis reads.
//
// The Graph G = (V,E) is undirected and weighted, with a fixed policy:
//
//   - Unique vertex names: AddVertex(name) returns the existing index for a known name.
//   - No self-loops: IncrementEdge(v,v,...) → ErrLoopNotAllowed.
//   - One edge per unordered pair: repeated IncrementEdge(u,v,d) adds d to the
//     stored weight instead of creating a parallel edge.
//   - Arena storage: vertices and edges are slices addressed by int index,
//     plus a name→index map. No vertex holds a pointer to another.
//   - Deterministic enumeration: Vertices(), SortedIndices(), NeighborIndices()
//     and NeighborIDs() all return sorted results.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) (int, error)     // O(1), idempotent
//	VertexIndex(id string) (int, bool)    // O(1)
//	VertexID(i int) (string, error)       // O(1)
//	HasVertex(id string) bool             // O(1)
//
//	// Edge lifecycle
//	IncrementEdge(u, v int, delta int64) (int, error) // O(1)†
//	Connect(a, b string) (int, error)                 // AddVertex×2 + IncrementEdge(…, 1)
//	Edge(u, v int) (Edge, bool)                       // O(1)
//	HasEdge(u, v int) bool                            // O(1)
//
//	// Query
//	NeighborIndices(i int) ([]int, error) // O(d·log d), unique, sorted
//	NeighborIDs(id string) ([]string, error)
//	IncidentEdges(i int) ([]Edge, error)
//	AdjacencyList() [][]int               // O(V+E) snapshot
//	Vertices() []string                   // O(V·log V)
//	SortedIndices() []int                 // O(V·log V)
//	Edges() []Edge                        // O(E), creation order
//
//	// Counts & degrees
//	Degree(i int) (int, error)            // incident edge count; weight ignored
//	VertexCount(), EdgeCount() int        // O(1)
//	Stats() GraphStats, Density() float64 // O(V+E)
//
//	// Copies
//	Clone() *Graph                        // deep copy, same indices
//	CloneEmpty() *Graph                   // vertices only
//
// Concurrency:
//
//	A single sync.RWMutex guards the arena. Mutators take the write lock,
//	queries the read lock, so a built graph can be analysed from many
//	goroutines at once.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – unknown ID or out-of-range index
//	ErrBadWeight      – non-positive weight increment
//	ErrLoopNotAllowed – u == v in IncrementEdge
//
//	† amortized constant time: slice append + two map insertions.
package core
