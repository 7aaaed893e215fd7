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

// RootID is the identity of the sentinel root. The root is never
// active, never deleted, and never rendered as content.
const RootID = 0

// NoNode marks an absent node reference (the root's parent, a missing
// sibling).
const NoNode = -1

// An IdGenerator produces fresh, never-repeating integer identities.
// The tree calls it on every node creation and on every subtree remap.
type IdGenerator interface {
	Gen() int
}

// A Node is one bullet. Links to other nodes are identities resolved
// through the owning tree's table, never pointers, so moves keep
// references stable and deletes cannot dangle.
type Node struct {
	ID       int
	Parent   int // NoNode for the root
	Children []int
	Content  string
}

func (n *Node) isRoot() bool {
	return n.ID == RootID
}

func (n *Node) childIndex(id int) int {
	for i, c := range n.Children {
		if c == id {
			return i
		}
	}
	return -1
}

// insertChildRelative places child immediately after (below) or before
// (above) an existing child. Reports whether the relative child was
// found.
func (n *Node) insertChildRelative(relativeID int, below bool, child int) bool {
	index := n.childIndex(relativeID)
	if index < 0 {
		return false
	}
	if below {
		index++
	}
	n.Children = append(n.Children, 0)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child
	return true
}

func (n *Node) insertChildFirst(child int) {
	n.Children = append([]int{child}, n.Children...)
}

func (n *Node) insertChildLast(child int) {
	n.Children = append(n.Children, child)
}

func (n *Node) removeChild(id int) {
	index := n.childIndex(id)
	if index < 0 {
		return
	}
	n.Children = append(n.Children[0:index], n.Children[index+1:]...)
}

func (n *Node) clone() *Node {
	children := make([]int, len(n.Children))
	copy(children, n.Children)
	return &Node{ID: n.ID, Parent: n.Parent, Children: children, Content: n.Content}
}
