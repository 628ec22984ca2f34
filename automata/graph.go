package automata

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/runeclass/charset"
	"github.com/npillmayer/runeclass/partition"
)

// Node is a state of an automaton.
type Node struct {
	ID    uint // serial ID, unique within an automaton
	Final bool // is this an accepting state?
	out   []*Edge
	eps   []*Node
}

// Edge is a transition between two nodes. The label of an edge is always a
// continuous character set.
type Edge struct {
	From  *Node
	To    *Node
	Label charset.CharSet
}

func (n *Node) String() string {
	if n.Final {
		return fmt.Sprintf("(node %d final)", n.ID)
	}
	return fmt.Sprintf("(node %d)", n.ID)
}

// Transitions returns the outgoing labelled edges of n, in the order they
// have been added.
func (n *Node) Transitions() []*Edge {
	e := make([]*Edge, len(n.out))
	copy(e, n.out)
	return e
}

// Epsilons returns the targets of outgoing ε-transitions of n.
func (n *Node) Epsilons() []*Node {
	e := make([]*Node, len(n.eps))
	copy(e, n.eps)
	return e
}

// Next returns all nodes reachable from n by reading code point cp.
// ε-transitions are not followed.
func (n *Node) Next(cp rune) []*Node {
	var next []*Node
	for _, e := range n.out {
		if e.Label.Includes(cp) {
			next = append(next, e.To)
		}
	}
	return next
}

func (e *Edge) String() string {
	if e.Label.IsEmpty() {
		return fmt.Sprintf("%d --ε--> %d", e.From.ID, e.To.ID)
	}
	return fmt.Sprintf("%d --%v--> %d", e.From.ID, e.Label, e.To.ID)
}

// --- Node graphs -----------------------------------------------------------

// graph holds the nodes and edges of an automaton.
type graph struct {
	nodes *treeset.Set    // all the nodes, ordered by ID
	edges *arraylist.List // all the edges, including ε-edges
	ids   uint            // serial IDs for nodes
}

func newGraph() graph {
	return graph{
		nodes: treeset.NewWith(nodeComparator),
		edges: arraylist.New(),
	}
}

// We need this for the set of nodes. It sorts nodes by serial ID.
func nodeComparator(n1, n2 interface{}) int {
	c1 := n1.(*Node)
	c2 := n2.(*Node)
	return utils.IntComparator(int(c1.ID), int(c2.ID))
}

func (g *graph) newNode(final bool) *Node {
	n := &Node{ID: g.ids, Final: final}
	g.ids++
	g.nodes.Add(n)
	return n
}

// connect adds one edge per continuous run of label. An empty label adds
// nothing.
func (g *graph) connect(from *Node, label charset.CharSet, to *Node) {
	for _, piece := range partition.Divide(label) {
		e := &Edge{From: from, To: to, Label: piece}
		from.out = append(from.out, e)
		g.edges.Add(e)
		tracer().Debugf("edge %v", e)
	}
}

func (g *graph) connectEpsilon(from, to *Node) {
	from.eps = append(from.eps, to)
	g.edges.Add(&Edge{From: from, To: to})
	tracer().Debugf("edge %d --ε--> %d", from.ID, to.ID)
}

// Nodes returns all nodes, ordered by ID.
func (g *graph) Nodes() []*Node {
	nodes := make([]*Node, 0, g.nodes.Size())
	for _, x := range g.nodes.Values() {
		nodes = append(nodes, x.(*Node))
	}
	return nodes
}

// Edges returns all edges in the order they have been created. ε-edges have
// an empty label.
func (g *graph) Edges() []*Edge {
	edges := make([]*Edge, 0, g.edges.Size())
	it := g.edges.Iterator()
	for it.Next() {
		edges = append(edges, it.Value().(*Edge))
	}
	return edges
}

// Size returns the number of nodes.
func (g *graph) Size() int {
	return g.nodes.Size()
}

// ToGraphViz exports the node graph to the Graphviz Dot format.
func (g *graph) ToGraphViz(w io.Writer) error {
	if _, err := io.WriteString(w, `digraph {
graph [splines=true, rankdir=LR, fontname=Helvetica, fontsize=10];
node [shape=circle, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`); err != nil {
		return err
	}
	for _, n := range g.Nodes() {
		if _, err := fmt.Fprintf(w, "n%03d [fillcolor=%s %s label=\"%d\"]\n",
			n.ID, nodecolor(n), nodeshape(n), n.ID); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		label := "ε"
		if !e.Label.IsEmpty() {
			label = e.Label.String()
		}
		if _, err := fmt.Fprintf(w, "n%03d -> n%03d [label=\"%s\"]\n", e.From.ID, e.To.ID, label); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func nodecolor(n *Node) string {
	if n.Final {
		return "lightgray"
	}
	return "white"
}

func nodeshape(n *Node) string {
	if n.Final {
		return "shape=doublecircle"
	}
	return ""
}
