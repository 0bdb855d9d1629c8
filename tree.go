package shadegen

import (
	"strings"

	"github.com/genart-io/go-shadegen/rand"
)

// node is one vertex of the expression tree: a catalog pattern plus one
// child subtree per slot token in the pattern. An empty pattern marks an
// open slot awaiting resolution.
type node struct {
	pattern  string
	children []*node
}

// openSlots creates one open child per slot token in the pattern and
// returns them in pattern order.
func (n *node) openSlots() []*node {
	count := strings.Count(n.pattern, string(slotToken))
	if count == 0 {
		return nil
	}
	n.children = make([]*node, count)
	for i := range n.children {
		n.children[i] = &node{}
	}
	return n.children
}

// writeTo serializes the subtree, splicing each child expression into its
// slot. Constant tokens pass through untouched; they are replaced after
// the whole stage text is assembled.
func (n *node) writeTo(sb *strings.Builder) {
	child := 0
	for i := 0; i < len(n.pattern); i++ {
		if n.pattern[i] == slotToken {
			n.children[child].writeTo(sb)
			child++
			continue
		}
		sb.WriteByte(n.pattern[i])
	}
}

func (n *node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

// height is the number of levels in the subtree rooted at n.
func (n *node) height() int {
	h := 0
	for _, c := range n.children {
		if ch := c.height(); ch > h {
			h = ch
		}
	}
	return h + 1
}

// unresolved reports whether any slot in the subtree is still open.
func (n *node) unresolved() bool {
	if n.pattern == "" {
		return true
	}
	for _, c := range n.children {
		if c.unresolved() {
			return true
		}
	}
	return false
}

// grower expands open slots into expression trees from the fixed catalogs,
// consuming one rand.Rand.
type grower struct {
	rng       *rand.Rand
	maxDepth  int32
	terminals []string
}

// grow resolves the open roots and every slot they spawn. Pass i promotes
// the slots opened by pass i-1 to active and resolves each one to either a
// primitive call pattern or a terminal. A terminal is chosen when a draw
// on [1, maxDepth^2) is at most i^2: the terminal probability rises
// quadratically with the pass index and the comparison holds with
// certainty at i == maxDepth, so every branch bottoms out by the final
// pass. Within a pass, slots resolve in their order of appearance in the
// serialized text.
func (g *grower) grow(roots []*node) {
	pending := roots
	for i := int32(0); i <= g.maxDepth; i++ {
		active := pending
		pending = nil
		for _, n := range active {
			if g.rng.IntBetween(1, g.maxDepth*g.maxDepth) > i*i {
				n.pattern = rand.Element(g.rng, functionPatterns)
			} else {
				n.pattern = rand.Element(g.rng, g.terminals)
			}
			pending = append(pending, n.openSlots()...)
		}
	}
	// Unreachable while the terminal catalogs hold no slot tokens; kept as
	// a hard stop because a slot surviving the final pass would emit
	// uncompilable shader text.
	if len(pending) != 0 {
		panic("shadegen: unresolved slots after final pass")
	}
}
