//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package tree

import (
	"fmt"
	"strings"
)

// A Tree is the outline document: an arena of bullets addressed by
// identity, a sentinel root, and one active bullet.
//
// Invariants, restored after every public operation:
//   - there is exactly one active node and it is never the root
//   - the root always has at least one child
//   - no two nodes share an identity
//   - every non-root node appears exactly once in its parent's
//     child list
type Tree struct {
	active    int
	nodes     map[int]*Node
	generator IdGenerator
}

// NewTree builds a document holding the root and one fresh empty
// bullet, which becomes active.
func NewTree(generator IdGenerator) *Tree {
	root := &Node{ID: RootID, Parent: NoNode}
	first := &Node{ID: generator.Gen(), Parent: RootID}
	root.insertChildLast(first.ID)
	return &Tree{
		active: first.ID,
		nodes: map[int]*Node{
			RootID:   root,
			first.ID: first,
		},
		generator: generator,
	}
}

func (t *Tree) node(id int) *Node {
	return t.nodes[id]
}

// sibling returns the identity of the node adjacent to id in its
// parent's child order, below or above, or NoNode.
func (t *Tree) sibling(id int, below bool) int {
	n := t.nodes[id]
	if n == nil || n.Parent == NoNode {
		return NoNode
	}
	parent := t.nodes[n.Parent]
	index := parent.childIndex(id)
	if index < 0 {
		return NoNode
	}
	if below {
		index++
	} else {
		index--
	}
	if index < 0 || index >= len(parent.Children) {
		return NoNode
	}
	return parent.Children[index]
}

// CreateSibling inserts a fresh empty bullet adjacent to the active
// one, under the same parent, and makes it active.
func (t *Tree) CreateSibling(below bool) {
	node := &Node{ID: t.generator.Gen()}
	t.insertNode(node, below)
	t.active = node.ID
}

// insertNode splices node next to the active node and registers it.
func (t *Tree) insertNode(node *Node, below bool) {
	parent := t.nodes[t.nodes[t.active].Parent]
	node.Parent = parent.ID
	if !parent.insertChildRelative(t.active, below, node.ID) {
		panic(fmt.Sprintf("active node %d not found in its own parent %d", t.active, parent.ID))
	}
	t.nodes[node.ID] = node
}

// Indent reparents the active bullet under its sibling above, as that
// sibling's first child when asFirst is set, otherwise as its last.
func (t *Tree) Indent(asFirst bool) error {
	siblingID := t.sibling(t.active, false)
	if siblingID == NoNode {
		return ErrAtMinIndent
	}
	active := t.nodes[t.active]
	t.nodes[active.Parent].removeChild(active.ID)
	sibling := t.nodes[siblingID]
	if asFirst {
		sibling.insertChildFirst(active.ID)
	} else {
		sibling.insertChildLast(active.ID)
	}
	active.Parent = siblingID
	return nil
}

// Unindent moves the active bullet out of its parent, into the
// grandparent's child list immediately after the former parent.
func (t *Tree) Unindent() error {
	active := t.nodes[t.active]
	parent := t.nodes[active.Parent]
	if parent.isRoot() {
		return ErrAtTopLevel
	}
	parent.removeChild(active.ID)
	grandparent := t.nodes[parent.Parent]
	if !grandparent.insertChildRelative(parent.ID, true, active.ID) {
		panic(fmt.Sprintf("parent %d not found in grandparent %d while unindenting", parent.ID, grandparent.ID))
	}
	active.Parent = grandparent.ID
	return nil
}

// Activate switches the active bullet by identity. The root is a
// sentinel and can never be activated.
func (t *Tree) Activate(id int) error {
	if _, ok := t.nodes[id]; !ok || id == RootID {
		return fmt.Errorf("%w: %d", ErrUnknownIdentity, id)
	}
	t.active = id
	return nil
}

// Delete removes the active bullet and its whole subtree. The new
// active bullet is the sibling below, else the sibling above, else the
// parent; deleting the only remaining bullet is rejected.
func (t *Tree) Delete() error {
	active := t.nodes[t.active]
	parent := t.nodes[active.Parent]
	below := t.sibling(active.ID, true)
	above := t.sibling(active.ID, false)

	var next int
	switch {
	case parent.isRoot() && len(parent.Children) == 1:
		return ErrLastBullet
	case below != NoNode:
		next = below
	case above != NoNode:
		next = above
	default:
		next = parent.ID
	}

	parent.removeChild(active.ID)
	walker := postOrderWalker(t.nodes, active.ID)
	for {
		id, ok := walker.Next()
		if !ok {
			break
		}
		if _, present := t.nodes[id]; !present {
			panic(fmt.Sprintf("node %d missing from table during delete", id))
		}
		delete(t.nodes, id)
	}
	t.active = next
	return nil
}

// GetSubtree produces a detached copy of the active bullet and its
// descendants, together with the identities of its former parent and,
// if present, its former sibling above, so a delete can be undone
// precisely. The source tree is not changed.
func (t *Tree) GetSubtree() *Subtree {
	nodes := make(map[int]*Node)
	walker := postOrderWalker(t.nodes, t.active)
	for {
		id, ok := walker.Next()
		if !ok {
			break
		}
		nodes[id] = t.nodes[id].clone()
	}
	root := nodes[t.active]
	root.Parent = NoNode
	return &Subtree{
		root:         t.active,
		parent:       t.nodes[t.active].Parent,
		aboveSibling: t.sibling(t.active, false),
		nodes:        nodes,
	}
}

// InsertSubtree remaps the subtree to fresh identities and splices its
// root next to the active bullet, exactly like CreateSibling; the new
// root becomes active. This is the paste path; the same subtree can be
// inserted repeatedly without identity collisions.
func (t *Tree) InsertSubtree(st *Subtree, below bool) {
	unique := st.makeUnique(t.generator)
	t.insertNode(unique.nodes[unique.root], below)
	t.register(unique)
	t.active = unique.root
}

// RestoreSubtree remaps the subtree and splices it back at its
// recorded position: immediately after its former sibling above, or as
// the first child of its former parent when no such sibling was
// recorded. This is the undo-of-delete path.
func (t *Tree) RestoreSubtree(st *Subtree) error {
	parent, ok := t.nodes[st.parent]
	if !ok {
		return fmt.Errorf("%w: former parent %d", ErrUnknownIdentity, st.parent)
	}
	unique := st.makeUnique(t.generator)
	root := unique.nodes[unique.root]
	root.Parent = parent.ID
	if st.aboveSibling != NoNode {
		if !parent.insertChildRelative(st.aboveSibling, true, root.ID) {
			return fmt.Errorf("%w: former sibling %d", ErrUnknownIdentity, st.aboveSibling)
		}
	} else {
		parent.insertChildFirst(root.ID)
	}
	t.nodes[root.ID] = root
	t.register(unique)
	t.active = unique.root
	return nil
}

// register copies every node of a remapped subtree into the identity
// table.
func (t *Tree) register(st *Subtree) {
	walker := levelOrderWalker(st.nodes, st.root)
	for {
		id, ok := walker.Next()
		if !ok {
			break
		}
		t.nodes[id] = st.nodes[id]
	}
}

func (t *Tree) ActiveID() int {
	return t.active
}

func (t *Tree) ActiveContent() string {
	return t.nodes[t.active].Content
}

func (t *Tree) SetActiveContent(text string) {
	t.nodes[t.active].Content = text
}

// Content returns the text of the bullet with the given identity.
func (t *Tree) Content(id int) (string, error) {
	n, ok := t.nodes[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownIdentity, id)
	}
	return n.Content, nil
}

// BulletCount reports the number of bullets, excluding the root.
func (t *Tree) BulletCount() int {
	return len(t.nodes) - 1
}

// Root returns the root identity, for walkers and renderers.
func (t *Tree) Root() int {
	return RootID
}

// Children returns the child identities of a node in document order.
// The returned slice is shared; callers must not modify it.
func (t *Tree) Children(id int) []int {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	return n.Children
}

// PostOrder walks id and its descendants, children before parents.
func (t *Tree) PostOrder(id int) *Walker {
	return postOrderWalker(t.nodes, id)
}

// LevelOrder walks id and its descendants breadth-first.
func (t *Tree) LevelOrder(id int) *Walker {
	return levelOrderWalker(t.nodes, id)
}

// String renders the outline for logs and scripts.
func (t *Tree) String() string {
	var b strings.Builder
	t.format(&b, RootID, 0)
	return b.String()
}

func (t *Tree) format(b *strings.Builder, id int, indent int) {
	n := t.nodes[id]
	b.WriteString(strings.Repeat("\t", indent))
	if id == t.active {
		fmt.Fprintf(b, "%d. ACTIVE %s\n", n.ID, n.Content)
	} else {
		fmt.Fprintf(b, "%d. %s\n", n.ID, n.Content)
	}
	for _, child := range n.Children {
		t.format(b, child, indent+1)
	}
}
