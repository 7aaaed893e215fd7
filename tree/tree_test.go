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
	"errors"
	"reflect"
	"testing"
)

type testGen struct {
	current int
}

func newTestGen() *testGen {
	return &testGen{current: 1}
}

func (g *testGen) Gen() int {
	v := g.current
	g.current++
	return v
}

func newTestTree() *Tree {
	return NewTree(newTestGen())
}

func collect(w *Walker) []int {
	var ids []int
	for {
		id, ok := w.Next()
		if !ok {
			return ids
		}
		ids = append(ids, id)
	}
}

// checkInvariants verifies the structural invariants that every public
// operation must restore.
func checkInvariants(t *testing.T, tree *Tree) {
	t.Helper()
	root := tree.node(RootID)
	if root == nil {
		t.Fatalf("tree has no root")
	}
	if len(root.Children) == 0 {
		t.Errorf("root has no children")
	}
	if tree.active == RootID {
		t.Errorf("root is active")
	}
	if _, ok := tree.nodes[tree.active]; !ok {
		t.Errorf("active node %d is not in the identity table", tree.active)
	}
	for id, n := range tree.nodes {
		if n.ID != id {
			t.Errorf("node %d is registered under %d", n.ID, id)
		}
		if id == RootID {
			continue
		}
		parent, ok := tree.nodes[n.Parent]
		if !ok {
			t.Errorf("node %d has unknown parent %d", id, n.Parent)
			continue
		}
		count := 0
		for _, c := range parent.Children {
			if c == id {
				count++
			}
		}
		if count != 1 {
			t.Errorf("node %d appears %d times in parent %d", id, count, n.Parent)
		}
	}
}

func TestNewTreeHasActive(t *testing.T) {
	tree := newTestTree()
	if tree.ActiveID() != 1 {
		t.Errorf("expected active id 1, got %d", tree.ActiveID())
	}
	checkInvariants(t, tree)
}

func TestSiblings(t *testing.T) {
	tree := newTestTree()

	tree.CreateSibling(true)
	if tree.ActiveID() != 2 {
		t.Errorf("expected active id 2, got %d", tree.ActiveID())
	}
	if tree.node(2).Parent != RootID {
		t.Errorf("expected parent 0, got %d", tree.node(2).Parent)
	}
	if above := tree.sibling(2, false); above != 1 {
		t.Errorf("expected sibling above 1, got %d", above)
	}
	if !reflect.DeepEqual(tree.Children(RootID), []int{1, 2}) {
		t.Errorf("unexpected root children %v", tree.Children(RootID))
	}
	checkInvariants(t, tree)
}

func TestCreateSiblingInMiddleOfList(t *testing.T) {
	// 2.
	//   3.
	//   4.
	//   6.
	//   5.
	tree := newTestTree()
	tree.CreateSibling(true) // id = 2
	tree.CreateSibling(true)
	if err := tree.Indent(false); err != nil { // 3 under 2
		t.Fatal(err)
	}
	tree.CreateSibling(true) // id = 4 under 2
	tree.CreateSibling(true) // id = 5 under 2
	if err := tree.Activate(4); err != nil {
		t.Fatal(err)
	}
	tree.CreateSibling(true) // id = 6 under 2 (after 4, before 5)

	if !reflect.DeepEqual(tree.Children(2), []int{3, 4, 6, 5}) {
		t.Errorf("unexpected children of 2: %v", tree.Children(2))
	}
	if below := tree.sibling(6, true); below != 5 {
		t.Errorf("expected sibling below 5, got %d", below)
	}
	checkInvariants(t, tree)
}

func TestCreateSiblingAbove(t *testing.T) {
	tree := newTestTree()

	tree.CreateSibling(false) // id = 2
	tree.CreateSibling(false) // id = 3
	tree.CreateSibling(false) // id = 4
	if err := tree.Activate(1); err != nil {
		t.Fatal(err)
	}
	if err := tree.Indent(false); err != nil { // 1 under 2
		t.Fatal(err)
	}
	tree.CreateSibling(false) // id = 5
	tree.CreateSibling(true)  // id = 6

	// 4.
	// 3.
	// 2.
	//   5.
	//   6.
	//   1.
	if !reflect.DeepEqual(tree.Children(RootID), []int{4, 3, 2}) {
		t.Errorf("unexpected root children %v", tree.Children(RootID))
	}
	if !reflect.DeepEqual(tree.Children(2), []int{5, 6, 1}) {
		t.Errorf("unexpected children of 2: %v", tree.Children(2))
	}
	checkInvariants(t, tree)
}

func TestIndents(t *testing.T) {
	tree := newTestTree()

	if err := tree.Indent(false); !errors.Is(err, ErrStructuralLimit) {
		t.Errorf("expected structural limit, got %v", err)
	}
	tree.CreateSibling(true)
	if err := tree.Indent(false); err != nil {
		t.Fatal(err)
	}

	if tree.node(2).Parent != 1 {
		t.Errorf("expected parent 1, got %d", tree.node(2).Parent)
	}
	if !reflect.DeepEqual(tree.Children(1), []int{2}) {
		t.Errorf("unexpected children of 1: %v", tree.Children(1))
	}
	checkInvariants(t, tree)
}

func TestIndentAsFirst(t *testing.T) {
	tree := newTestTree()
	tree.CreateSibling(true) // id = 2
	if err := tree.Indent(false); err != nil { // 2 under 1
		t.Fatal(err)
	}
	tree.Activate(1)
	tree.CreateSibling(true) // id = 3
	if err := tree.Indent(true); err != nil { // 3 under 1, first
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tree.Children(1), []int{3, 2}) {
		t.Errorf("unexpected children of 1: %v", tree.Children(1))
	}
	checkInvariants(t, tree)
}

func TestUnindents(t *testing.T) {
	tree := newTestTree()
	if err := tree.Unindent(); !errors.Is(err, ErrStructuralLimit) {
		t.Errorf("expected structural limit, got %v", err)
	}
	tree.CreateSibling(true) // id = 2
	if err := tree.Indent(false); err != nil { // 2 under 1
		t.Fatal(err)
	}
	if err := tree.Unindent(); err != nil { // 2 under root
		t.Fatal(err)
	}
	if tree.node(2).Parent != RootID {
		t.Errorf("expected parent 0, got %d", tree.node(2).Parent)
	}

	if err := tree.Indent(false); err != nil {
		t.Fatal(err)
	}
	tree.CreateSibling(true) // id = 3 (under 1)
	tree.CreateSibling(true) // id = 4 (under 1)
	tree.CreateSibling(true) // id = 5 (under 1)
	if err := tree.Unindent(); err != nil { // 5 under root
		t.Fatal(err)
	}
	if err := tree.Indent(false); err != nil { // 5 under 1
		t.Fatal(err)
	}
	if tree.node(5).Parent != 1 {
		t.Errorf("expected parent 1, got %d", tree.node(5).Parent)
	}
	checkInvariants(t, tree)
}

func TestUnindentLandsBelowFormerParent(t *testing.T) {
	// 1.
	//   2.
	//   3. <-- unindented
	//   4.
	tree := newTestTree()
	tree.CreateSibling(true)
	tree.Indent(false)       // 2 under 1
	tree.CreateSibling(true) // id = 3
	tree.CreateSibling(true) // id = 4
	tree.Activate(3)
	if err := tree.Unindent(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tree.Children(RootID), []int{1, 3}) {
		t.Errorf("unexpected root children %v", tree.Children(RootID))
	}
	checkInvariants(t, tree)
}

func TestDeleteSimple(t *testing.T) {
	tree := newTestTree()
	tree.CreateSibling(true) // id = 2
	tree.CreateSibling(true) // id = 3
	if err := tree.Delete(); err != nil {
		t.Fatal(err)
	}
	if _, err := tree.Content(3); err == nil {
		t.Errorf("expected node 3 to be gone")
	}
	if !reflect.DeepEqual(tree.Children(RootID), []int{1, 2}) {
		t.Errorf("unexpected root children %v", tree.Children(RootID))
	}
	checkInvariants(t, tree)
}

func TestDeleteDeletesChildren(t *testing.T) {
	tree := newTestTree()
	tree.CreateSibling(true) // id = 2
	tree.CreateSibling(true) // id = 3
	tree.Indent(false)       // 3 under 2
	tree.CreateSibling(true) // id = 4, under 2
	tree.CreateSibling(true) // id = 5, under 2
	tree.CreateSibling(true) // id = 6
	tree.Indent(false)       // 6 under 5
	tree.CreateSibling(true) // id = 7
	tree.Indent(false)       // 7 under 6

	tree.Activate(2)
	if err := tree.Delete(); err != nil {
		t.Fatal(err)
	}
	for id := 2; id <= 7; id++ {
		if _, err := tree.Content(id); err == nil {
			t.Errorf("expected node %d to be gone", id)
		}
	}
	if !reflect.DeepEqual(tree.Children(RootID), []int{1}) {
		t.Errorf("unexpected root children %v", tree.Children(RootID))
	}
	checkInvariants(t, tree)
}

func TestCannotDeleteLastNode(t *testing.T) {
	tree := newTestTree()
	if err := tree.Delete(); !errors.Is(err, ErrStructuralLimit) {
		t.Errorf("expected structural limit, got %v", err)
	}
	checkInvariants(t, tree)
}

func TestDeleteUpdatesActive(t *testing.T) {
	tree := newTestTree()

	// with a sibling above
	// 1.
	//   2.
	//   3. <-- deleted
	tree.CreateSibling(true) // id = 2
	tree.Indent(false)       // 2 under 1
	tree.CreateSibling(true) // id = 3
	if err := tree.Delete(); err != nil {
		t.Fatal(err)
	}
	if tree.ActiveID() != 2 {
		t.Errorf("expected active 2, got %d", tree.ActiveID())
	}

	// with no sibling: the parent takes over
	if err := tree.Delete(); err != nil {
		t.Fatal(err)
	}
	if tree.ActiveID() != 1 {
		t.Errorf("expected active 1, got %d", tree.ActiveID())
	}

	// the sibling below wins over the sibling above
	// 1.
	// 4. <-- deleted
	// 5.
	tree.CreateSibling(true) // id = 4
	tree.CreateSibling(true) // id = 5
	tree.Activate(4)
	if err := tree.Delete(); err != nil {
		t.Fatal(err)
	}
	if tree.ActiveID() != 5 {
		t.Errorf("expected active 5, got %d", tree.ActiveID())
	}
	checkInvariants(t, tree)
}

func TestActivateRejectsRootAndUnknown(t *testing.T) {
	tree := newTestTree()
	if err := tree.Activate(RootID); !errors.Is(err, ErrUnknownIdentity) {
		t.Errorf("expected unknown identity for root, got %v", err)
	}
	if err := tree.Activate(42); !errors.Is(err, ErrUnknownIdentity) {
		t.Errorf("expected unknown identity, got %v", err)
	}
}

func TestGetSubtree(t *testing.T) {
	tree := newTestTree()

	// 1.
	//   2.
	//     3.
	//   4.
	//   5.
	tree.CreateSibling(true) // id = 2
	tree.Indent(false)       // 2 under 1
	tree.CreateSibling(true) // id = 3 under 1
	tree.CreateSibling(true) // id = 4 under 1
	tree.CreateSibling(true) // id = 5 under 1
	tree.Activate(3)
	tree.Indent(false) // 3 under 2

	tree.Activate(1)
	subtree := tree.GetSubtree()

	if !reflect.DeepEqual(subtree.IDs(), []int{1, 2, 4, 5, 3}) {
		t.Errorf("unexpected subtree ids %v", subtree.IDs())
	}
	// the source tree is untouched
	if tree.BulletCount() != 5 {
		t.Errorf("expected 5 bullets, got %d", tree.BulletCount())
	}
	checkInvariants(t, tree)
}

func newDeepTree() *Tree {
	tree := newTestTree()
	// 1.
	// 2.
	//   3.
	//   4.
	//     5.
	//   6.
	// 7.
	// 8.
	//   9.
	//   10.
	tree.CreateSibling(true) // id = 2
	tree.CreateSibling(true) // id = 3
	tree.Indent(false)
	tree.CreateSibling(true) // id = 4
	tree.CreateSibling(true) // id = 5
	tree.Indent(false)
	tree.CreateSibling(true) // id = 6
	tree.Unindent()
	tree.CreateSibling(true) // id = 7
	tree.Unindent()
	tree.CreateSibling(true) // id = 8
	tree.CreateSibling(true) // id = 9
	tree.Indent(false)
	tree.CreateSibling(true) // id = 10
	return tree
}

func TestPostOrderTraversal(t *testing.T) {
	tree := newDeepTree()
	ids := collect(tree.PostOrder(RootID))
	expected := []int{1, 3, 5, 4, 6, 2, 7, 9, 10, 8, 0}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("expected %v, got %v", expected, ids)
	}
}

func TestLevelTraversal(t *testing.T) {
	tree := newDeepTree()
	ids := collect(tree.LevelOrder(RootID))
	expected := []int{0, 1, 2, 7, 8, 3, 4, 6, 9, 10, 5}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("expected %v, got %v", expected, ids)
	}
}

func TestInsertSubtree(t *testing.T) {
	tree := newDeepTree()

	// 1.
	//   2.
	//   3.
	//   4.
	//   5.
	maker := newTestTree()
	maker.CreateSibling(true)
	maker.Indent(false)
	maker.CreateSibling(true)
	maker.CreateSibling(true)
	maker.CreateSibling(true)

	maker.Activate(1)
	subtree := maker.GetSubtree()

	tree.Activate(7)
	tree.InsertSubtree(subtree, true)
	ids := collect(tree.LevelOrder(RootID))
	expected := []int{
		0,
		1, 2, 7, 15, 8,
		3, 4, 6, 11, 12, 13, 14, 9, 10,
		5,
	}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("expected %v, got %v", expected, ids)
	}
	if tree.ActiveID() != 15 {
		t.Errorf("expected pasted root 15 active, got %d", tree.ActiveID())
	}
	checkInvariants(t, tree)
}

func TestInsertSubtreeSimple(t *testing.T) {
	tree := newTestTree()
	subtree := tree.GetSubtree()
	tree.InsertSubtree(subtree, true)

	ids := collect(tree.LevelOrder(RootID))
	if !reflect.DeepEqual(ids, []int{0, 1, 2}) {
		t.Errorf("unexpected ids %v", ids)
	}
	checkInvariants(t, tree)
}

func TestInsertSubtreeRepeatedlyKeepsIdsDisjoint(t *testing.T) {
	tree := newTestTree()
	tree.SetActiveContent("copy me")
	subtree := tree.GetSubtree()

	seen := map[int]bool{1: true}
	for i := 0; i < 3; i++ {
		tree.InsertSubtree(subtree, true)
		id := tree.ActiveID()
		if seen[id] {
			t.Errorf("pasted root id %d reused", id)
		}
		seen[id] = true
		if content, _ := tree.Content(id); content != "copy me" {
			t.Errorf("unexpected content %q", content)
		}
	}
	if tree.BulletCount() != 4 {
		t.Errorf("expected 4 bullets, got %d", tree.BulletCount())
	}
	checkInvariants(t, tree)
}

func TestRestoreSubtree(t *testing.T) {
	// 1.
	// 2. <-- deleted, then restored
	//   3.
	// 4.
	tree := newTestTree()
	tree.CreateSibling(true) // id = 2
	tree.CreateSibling(true) // id = 3
	tree.Indent(false)       // 3 under 2
	tree.Activate(2)
	tree.CreateSibling(true) // id = 4
	tree.Activate(2)
	tree.SetActiveContent("two")

	record := tree.GetSubtree()
	if err := tree.Delete(); err != nil {
		t.Fatal(err)
	}
	if err := tree.RestoreSubtree(record); err != nil {
		t.Fatal(err)
	}

	// back between 1 and 4, child restored, fresh identities
	children := tree.Children(RootID)
	if len(children) != 3 || children[0] != 1 || children[2] != 4 {
		t.Fatalf("unexpected root children %v", children)
	}
	restored := children[1]
	if restored == 2 {
		t.Errorf("restored bullet reused identity 2")
	}
	if content, _ := tree.Content(restored); content != "two" {
		t.Errorf("unexpected content %q", content)
	}
	if len(tree.Children(restored)) != 1 {
		t.Errorf("restored bullet lost its child")
	}
	if tree.ActiveID() != restored {
		t.Errorf("expected restored bullet active")
	}
	checkInvariants(t, tree)
}

func TestRestoreSubtreeAsFirstChild(t *testing.T) {
	// deleting the first top-level bullet records no sibling above;
	// restoring must put it back in first position
	tree := newTestTree()
	tree.SetActiveContent("first")
	tree.CreateSibling(true) // id = 2
	tree.Activate(1)

	record := tree.GetSubtree()
	if err := tree.Delete(); err != nil {
		t.Fatal(err)
	}
	if err := tree.RestoreSubtree(record); err != nil {
		t.Fatal(err)
	}
	children := tree.Children(RootID)
	if len(children) != 2 {
		t.Fatalf("unexpected root children %v", children)
	}
	if content, _ := tree.Content(children[0]); content != "first" {
		t.Errorf("restored bullet is not first, children %v", children)
	}
	checkInvariants(t, tree)
}

func TestRestoreSubtreeRejectsMissingParent(t *testing.T) {
	tree := newTestTree()
	tree.CreateSibling(true) // id = 2
	tree.Indent(false)       // 2 under 1
	record := tree.GetSubtree()
	tree.Delete() // 2 gone, active 1
	tree.Delete() // cannot: last bullet
	tree.CreateSibling(true)
	tree.Activate(1)
	tree.Delete() // 1 gone, record's parent with it

	if err := tree.RestoreSubtree(record); !errors.Is(err, ErrUnknownIdentity) {
		t.Errorf("expected unknown identity, got %v", err)
	}
}

func TestString(t *testing.T) {
	tree := newTestTree()
	tree.SetActiveContent("hello")
	tree.CreateSibling(true)
	tree.Indent(false)
	tree.SetActiveContent("world")

	expected := "0. \n\t1. hello\n\t\t2. ACTIVE world\n"
	if tree.String() != expected {
		t.Errorf("expected %q, got %q", expected, tree.String())
	}
}
