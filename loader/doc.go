// Package loader reads CSV floor plans into a core.Graph.
//
// A plan file is a header row followed by one row per node:
//
//	Kind,Name,Level,X,Y,Neighbors
//	connector,H1,1,0,0,H2
//	connector,H2,1,10,0,H1;H3
//	connector,H3,1,20,0,H2
//	target,C1,1,5,5,
//
// Kind is "connector" or "target" ("hallway" and "classroom" are
// accepted aliases). Neighbors is a semicolon-separated list of node
// names declared anywhere in the same file; each reference produces an
// undirected edge weighted by the straight-line distance between the
// endpoints, so declaring a neighbor on either side is sufficient.
//
// Every field is parsed strictly: numbers go through strconv, names may
// not repeat, and names carrying the junction marker prefix are
// rejected since those are synthesized during connectivity repair.
//
// Complexity: O(N + E) over rows and neighbor references.
package loader
