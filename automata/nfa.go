package automata

import (
	"sort"

	"github.com/npillmayer/runeclass/charset"
)

// NFA is a non-deterministic finite automaton. A new NFA consists of an
// initial node and a final node. Clients add nodes and transitions in between.
type NFA struct {
	graph
	Initial *Node
	Final   *Node
}

// NewNFA creates an NFA with an initial and a final node.
func NewNFA() *NFA {
	nfa := &NFA{graph: newGraph()}
	nfa.Initial = nfa.newNode(false)
	nfa.Final = nfa.newNode(true)
	return nfa
}

// NewNode creates a new node within the automaton.
func (nfa *NFA) NewNode(final bool) *Node {
	return nfa.newNode(final)
}

// AddTransition connects two nodes with edges for the code points in label.
// Labels are divided into continuous runs, with one edge per run.
func (nfa *NFA) AddTransition(from *Node, label charset.CharSet, to *Node) {
	nfa.connect(from, label, to)
}

// AddEpsilon adds an ε-transition from one node to another.
func (nfa *NFA) AddEpsilon(from, to *Node) {
	nfa.connectEpsilon(from, to)
}

// EpsilonClosure returns all nodes reachable from the given nodes by
// ε-transitions only, including the nodes themselves. The result is ordered
// by node ID.
func (nfa *NFA) EpsilonClosure(nodes ...*Node) []*Node {
	return closure(nodes).sorted()
}

// Accepts runs input through the automaton and reports whether it ends in a
// final node.
func (nfa *NFA) Accepts(input string) bool {
	current := closure([]*Node{nfa.Initial})
	for _, r := range input {
		var next []*Node
		for n := range current {
			next = append(next, n.Next(r)...)
		}
		if len(next) == 0 {
			tracer().Debugf("NFA stuck at %#U", r)
			return false
		}
		current = closure(next)
	}
	for n := range current {
		if n.Final {
			return true
		}
	}
	return false
}

type nodeset map[*Node]struct{}

func closure(start []*Node) nodeset {
	set := nodeset{}
	stack := append([]*Node(nil), start...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := set[n]; seen {
			continue
		}
		set[n] = struct{}{}
		stack = append(stack, n.eps...)
	}
	return set
}

func (set nodeset) sorted() []*Node {
	nodes := make([]*Node, 0, len(set))
	for n := range set {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}
