package roomgraph

import (
	"math"
	"sort"

	"github.com/planmetric/roomplan-engine/internal/geometry"
)

// DefaultSnapSize is the snap grid size in world units. Endpoints whose
// grid cells coincide are merged into a single node. This is enough for
// typical drawing coordinates that are already consistent.
const DefaultSnapSize = 1e-3

// noEdge marks an unresolved half-edge reference.
const noEdge = -1

// Room is a reconstructed enclosed region: a simple counter-clockwise
// polygon (no closing duplicate vertex), its positive area, and its
// area-weighted centroid.
type Room struct {
	Polygon []geometry.Point
	Center  geometry.Point
	Area    float64
}

// Stats carries diagnostic counters for the most recent build. They are
// observability-only: none of these conditions fails a build.
type Stats struct {
	SegmentsDropped int // segments whose endpoints snapped to the same node
	UnlinkedEdges   int // half-edges whose face link could not be resolved
	OpenWalks       int // walks abandoned before closing a cycle
	DiscardedLoops  int // closed walks rejected by the size/area/orientation filter
}

// node is a unique vertex in the graph. Its id equals its index in the
// node slice and stays stable for the remainder of a build.
type node struct {
	id       int
	pos      geometry.Point
	outgoing []int // half-edge ids leaving this node, sorted by angle
}

// halfEdge is a directed edge from node "from" to node "to". Each
// non-degenerate segment is stored as two opposite half-edges that are
// mutual twins.
type halfEdge struct {
	id    int
	from  int
	to    int
	twin  int
	next  int // successor when walking around a face, noEdge until linked
	used  bool
	angle float64 // direction angle at the "from" node
}

// gridKey is a snapped grid cell used to deduplicate nearby endpoints.
type gridKey struct {
	ix int
	iy int
}

// Graph reconstructs closed rooms from an unordered set of wall
// segments using a half-edge planar graph. A Graph owns all of its
// containers exclusively; it is safe to use from one goroutine at a
// time, and independent instances are fully isolated.
type Graph struct {
	snapSize  float64
	nodes     []node
	edges     []halfEdge
	rooms     []Room
	nodeIndex map[gridKey]int
	stats     Stats
}

// NewGraph creates a graph with the default snap grid size.
func NewGraph() *Graph {
	return NewGraphWithSnapSize(DefaultSnapSize)
}

// NewGraphWithSnapSize creates a graph with a custom snap grid size.
// The size is fixed for the lifetime of the graph.
func NewGraphWithSnapSize(snapSize float64) *Graph {
	if snapSize <= 0 {
		snapSize = DefaultSnapSize
	}
	return &Graph{
		snapSize:  snapSize,
		nodeIndex: make(map[gridKey]int),
	}
}

func (g *Graph) clear() {
	g.nodes = nil
	g.edges = nil
	g.rooms = nil
	g.nodeIndex = make(map[gridKey]int)
	g.stats = Stats{}
}

// Build discards all prior state and reconstructs the graph from the
// given segments. Results are retrieved through Rooms and Stats.
// Malformed local configurations (degenerate segments, dangling walls,
// near-zero-area loops) are excluded rather than reported as errors;
// an empty input yields an empty graph.
func (g *Graph) Build(segments []geometry.Segment) {
	g.clear()

	if len(segments) == 0 {
		return
	}

	g.buildNodesAndEdges(segments)
	g.sortOutgoingByAngle()
	g.buildNextLinks()
	g.walkCycles()
}

// Rooms returns the rooms extracted by the most recent Build. The
// returned slice is a read-only view owned by the graph.
func (g *Graph) Rooms() []Room {
	return g.rooms
}

// Stats returns the diagnostic counters of the most recent Build.
func (g *Graph) Stats() Stats {
	return g.stats
}

// NodeCount returns the number of unique vertices in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of half-edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// findOrCreateNode snaps the point to a discrete grid and reuses an
// existing node if one occupies the same cell. New nodes keep the
// original (unsnapped) coordinates.
func (g *Graph) findOrCreateNode(p geometry.Point) int {
	key := gridKey{
		ix: int(math.Floor(p.X/g.snapSize + 0.5)),
		iy: int(math.Floor(p.Y/g.snapSize + 0.5)),
	}

	if id, ok := g.nodeIndex[key]; ok {
		return id
	}

	id := len(g.nodes)
	g.nodes = append(g.nodes, node{id: id, pos: p})
	g.nodeIndex[key] = id
	return id
}

// buildNodesAndEdges converts each input segment into two directed
// half-edges and registers them on the corresponding nodes. Segments
// whose endpoints resolve to the same node are dropped.
func (g *Graph) buildNodesAndEdges(segments []geometry.Segment) {
	for _, s := range segments {
		a := g.findOrCreateNode(s.A)
		b := g.findOrCreateNode(s.B)

		if a == b {
			g.stats.SegmentsDropped++
			continue
		}

		// Direction angles use the resolved node positions, not the raw
		// segment endpoints, so twins stay exactly opposite.
		pa := g.nodes[a].pos
		pb := g.nodes[b].pos

		e1 := halfEdge{
			id:    len(g.edges),
			from:  a,
			to:    b,
			next:  noEdge,
			angle: math.Atan2(pb.Y-pa.Y, pb.X-pa.X),
		}
		e2 := halfEdge{
			id:    e1.id + 1,
			from:  b,
			to:    a,
			next:  noEdge,
			angle: math.Atan2(pa.Y-pb.Y, pa.X-pb.X),
		}
		e1.twin = e2.id
		e2.twin = e1.id

		g.nodes[a].outgoing = append(g.nodes[a].outgoing, e1.id)
		g.nodes[b].outgoing = append(g.nodes[b].outgoing, e2.id)
		g.edges = append(g.edges, e1, e2)
	}
}

// sortOutgoingByAngle orders each node's outgoing half-edges ascending
// by direction angle, giving a consistent circular ordering around the
// point. The sort is stable: edges with exactly equal angles (collinear
// overlapping segments) keep their creation order.
func (g *Graph) sortOutgoingByAngle() {
	for i := range g.nodes {
		out := g.nodes[i].outgoing
		if len(out) <= 1 {
			continue
		}
		sort.SliceStable(out, func(a, b int) bool {
			return g.edges[out[a]].angle < g.edges[out[b]].angle
		})
	}
}

// buildNextLinks resolves, for every half-edge e: from A to B, the edge
// that continues the same face boundary. Standing at B, take e's twin
// as reference in the sorted pencil and pick the previous edge in the
// circular order (turning "right"). Edges whose twin cannot be located
// stay unresolved and are counted, never fatal.
func (g *Graph) buildNextLinks() {
	for i := range g.edges {
		e := &g.edges[i]
		out := g.nodes[e.to].outgoing

		if len(out) == 0 {
			g.stats.UnlinkedEdges++
			continue
		}

		pos := -1
		for k, id := range out {
			if id == e.twin {
				pos = k
				break
			}
		}
		if pos < 0 {
			g.stats.UnlinkedEdges++
			continue
		}

		n := len(out)
		e.next = out[(pos-1+n)%n]
	}
}

// walkCycles follows next links from every unconsumed half-edge. A walk
// that returns to its starting edge becomes a room candidate; walks
// that hit a consumed edge or an unresolved link are abandoned and
// their partial polygon discarded. Only counter-clockwise cycles with
// meaningful area are kept, so each enclosed region yields exactly one
// room and its clockwise mirror trace is dropped.
func (g *Graph) walkCycles() {
	for i := range g.edges {
		if g.edges[i].used {
			continue
		}

		poly := make([]geometry.Point, 0, 8)
		closed := false
		current := i

		for {
			e := &g.edges[current]
			if e.used {
				break
			}
			e.used = true

			poly = append(poly, g.nodes[e.from].pos)

			if e.next == noEdge {
				break
			}
			if e.next == i {
				// Closed loop, do not push the start node again.
				closed = true
				break
			}
			current = e.next
		}

		if !closed {
			g.stats.OpenWalks++
			continue
		}
		if len(poly) < 3 {
			g.stats.DiscardedLoops++
			continue
		}

		signed := signedArea(poly)
		if math.Abs(signed) < areaEpsilon {
			g.stats.DiscardedLoops++
			continue
		}
		if signed <= 0 {
			g.stats.DiscardedLoops++
			continue
		}

		g.rooms = append(g.rooms, Room{
			Polygon: poly,
			Area:    math.Abs(signed),
			// The centroid formula divides by the signed area, so it runs
			// before the sign is discarded.
			Center: centroid(poly, signed),
		})
	}
}
