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

// A Subtree is a detached copy of a bullet and its descendants. Its
// identities belong to the tree it was copied from, never to the tree
// it will be inserted into: insertion always remaps every node to
// fresh identities first. The recorded former parent and former
// sibling above allow a delete to be undone at the exact position.
type Subtree struct {
	root         int
	parent       int
	aboveSibling int
	nodes        map[int]*Node
}

// RootID returns the identity of the subtree's root in the namespace
// it was copied from.
func (st *Subtree) RootID() int {
	return st.root
}

// Parent returns the identity of the former parent.
func (st *Subtree) Parent() int {
	return st.parent
}

// AboveSibling returns the identity of the former sibling above, or
// NoNode.
func (st *Subtree) AboveSibling() int {
	return st.aboveSibling
}

// Content returns the text of a node in the subtree.
func (st *Subtree) Content(id int) (string, bool) {
	n, ok := st.nodes[id]
	if !ok {
		return "", false
	}
	return n.Content, true
}

// IDs lists every identity in the subtree, outer bullets before inner
// ones (level order).
func (st *Subtree) IDs() []int {
	var ids []int
	walker := levelOrderWalker(st.nodes, st.root)
	for {
		id, ok := walker.Next()
		if !ok {
			return ids
		}
		ids = append(ids, id)
	}
}

// PostOrder walks the subtree, children before parents.
func (st *Subtree) PostOrder() *Walker {
	return postOrderWalker(st.nodes, st.root)
}

// LevelOrder walks the subtree breadth-first.
func (st *Subtree) LevelOrder() *Walker {
	return levelOrderWalker(st.nodes, st.root)
}

// makeUnique deep-copies the subtree, assigning every node a fresh
// identity from the generator. The copy keeps the recorded former
// parent and sibling, which name nodes of the destination tree and are
// deliberately not remapped.
func (st *Subtree) makeUnique(generator IdGenerator) *Subtree {
	fresh := make(map[int]int, len(st.nodes))
	walker := postOrderWalker(st.nodes, st.root)
	for {
		old, ok := walker.Next()
		if !ok {
			break
		}
		fresh[old] = generator.Gen()
	}
	nodes := make(map[int]*Node, len(st.nodes))
	for old, n := range st.nodes {
		copied := n.clone()
		copied.ID = fresh[old]
		if n.Parent != NoNode {
			copied.Parent = fresh[n.Parent]
		}
		for i, child := range copied.Children {
			copied.Children[i] = fresh[child]
		}
		nodes[copied.ID] = copied
	}
	return &Subtree{
		root:         fresh[st.root],
		parent:       st.parent,
		aboveSibling: st.aboveSibling,
		nodes:        nodes,
	}
}
