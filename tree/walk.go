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

// A Walker lazily enumerates a node and its descendants in one of the
// two traversal orders. A walker is single-pass; construct a new one
// to restart.
type Walker struct {
	nodes map[int]*Node
	queue []int
	level bool
}

// postOrderWalker visits every descendant before its parent, so a
// delete can forget children before the node that owns them.
func postOrderWalker(nodes map[int]*Node, start int) *Walker {
	return &Walker{nodes: nodes, queue: []int{start}}
}

// levelOrderWalker visits breadth-first: outer bullets before inner
// ones, siblings in document order.
func levelOrderWalker(nodes map[int]*Node, start int) *Walker {
	return &Walker{nodes: nodes, queue: []int{start}, level: true}
}

// Next returns the next identity, or false when the walk is done.
func (w *Walker) Next() (int, bool) {
	if w.level {
		return w.nextLevel()
	}
	return w.nextPostOrder()
}

func (w *Walker) nextLevel() (int, bool) {
	if len(w.queue) == 0 {
		return 0, false
	}
	id := w.queue[0]
	w.queue = w.queue[1:]
	if n := w.nodes[id]; n != nil {
		w.queue = append(w.queue, n.Children...)
	}
	return id, true
}

// nextPostOrder treats negative entries as "children already
// expanded"; ids are non-negative so the sign bit is free to carry the
// flag. The root id 0 never appears below another node, so offsetting
// by one keeps it distinguishable.
func (w *Walker) nextPostOrder() (int, bool) {
	for len(w.queue) > 0 {
		last := len(w.queue) - 1
		id := w.queue[last]
		w.queue = w.queue[0:last]
		if id < 0 {
			return -id - 1, true
		}
		w.queue = append(w.queue, -id-1)
		if n := w.nodes[id]; n != nil {
			for i := len(n.Children) - 1; i >= 0; i-- {
				w.queue = append(w.queue, n.Children[i])
			}
		}
	}
	return 0, false
}
