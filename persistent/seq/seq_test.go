package seq

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestSeqEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.seq")
	defer teardown()
	//
	s := Immutable[int]()
	if !s.IsEmpty() {
		t.Error("expected freshly created sequence to be empty, isn't")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty sequence to have length 0, has %d", s.Len())
	}
}

func TestSeqSingleton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.seq")
	defer teardown()
	//
	s := Immutable[int]().Push(7)
	if !s.IsSingleton() {
		t.Logf(printSeq(s))
		t.Error("expected sequence of one element to be a singleton, isn't")
	}
	if s.root.solo == nil {
		t.Fatalf("expected singleton shape to hold its element directly, doesn't:\n%#v", s.root)
	}
}

func TestSeqPushShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.seq")
	defer teardown()
	//
	s := Immutable[int]()
	for i := 1; i <= 5; i++ {
		s = s.Push(i)
	}
	t.Logf(printSeq(s))
	if s.root.solo != nil {
		t.Fatal("expected sequence of 5 elements to be deep, is a singleton")
	}
	if len(s.root.left) != 4 {
		t.Errorf("expected left digit to hold 4 elements, holds %d", len(s.root.left))
	}
	if s.root.mid != nil {
		t.Error("expected middle subtree to still be empty, isn't")
	}
	s = s.Push(6) // overflows the left digit
	t.Logf(printSeq(s))
	if len(s.root.left) != 1 {
		t.Errorf("expected left digit to restart with 1 element, holds %d", len(s.root.left))
	}
	if s.root.mid == nil {
		t.Fatal("expected carry to have created a middle subtree, hasn't")
	}
	if g := s.root.mid.first(); len(g.group) != 4 {
		t.Errorf("expected carried group to hold 4 elements, holds %d", len(g.group))
	}
	checkInvariants(t, s)
}

func TestSeqStructuralSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.seq")
	defer teardown()
	//
	s := Immutable[int]()
	for i := 0; i < 100; i++ {
		s = s.Add(i)
	}
	w := s.Push(-1)
	if w.root.mid != s.root.mid {
		t.Error("expected push to share the middle subtree, didn't")
	}
	if &w.root.right[0] != &s.root.right[0] {
		t.Error("expected push to share the right digit, didn't")
	}
}

func TestSeqPopPromotesRightDigit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.seq")
	defer teardown()
	//
	// two elements: deep with left=[1], right=[2]; popping must collapse
	// the remainder to a singleton
	s := From(1, 2)
	item, rest := s.Pop()
	if item != 1 {
		t.Errorf("expected to pop 1, popped %v", item)
	}
	if !rest.IsSingleton() {
		t.Logf(printSeq(rest))
		t.Error("expected remainder to be a singleton, isn't")
	}
}

func TestSeqPopRefillsFromMiddle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.seq")
	defer teardown()
	//
	s := Immutable[int]()
	for i := 6; i >= 1; i-- {
		s = s.Push(i) // deep tree with a group in the middle
	}
	if s.root.mid == nil {
		t.Fatal("test setup failed: expected a non-empty middle subtree")
	}
	if len(s.root.left) != 1 {
		t.Fatalf("test setup failed: expected left digit of size 1, has %d", len(s.root.left))
	}
	_, s = s.Pop() // empties the left digit, refills from the middle
	t.Logf(printSeq(s))
	if s.root.mid != nil {
		t.Error("expected middle group to have been promoted to left digit, hasn't")
	}
	if len(s.root.left) != 4 {
		t.Errorf("expected refilled left digit to hold 4 elements, holds %d", len(s.root.left))
	}
	checkInvariants(t, s)
}

func TestRegroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.seq")
	defer teardown()
	//
	for n := 1; n <= 4; n++ {
		for m := 1; m <= 4; m++ {
			a, b := make(digit[int], 0, n), make(digit[int], 0, m)
			next := 0
			for i := 0; i < n; i++ {
				a = append(a, leaf(next))
				next++
			}
			for i := 0; i < m; i++ {
				b = append(b, leaf(next))
				next++
			}
			groups := regroup(a, b)
			var flat []int
			for _, g := range groups {
				if len(g.group) < 2 || len(g.group) > maxGroup {
					t.Errorf("regroup(%d,%d): group of illegal size %d", n, m, len(g.group))
				}
				for _, e := range g.group {
					flat = append(flat, e.value)
				}
			}
			if len(flat) != n+m {
				t.Fatalf("regroup(%d,%d): expected %d elements, got %d", n, m, n+m, len(flat))
			}
			for i, v := range flat {
				if v != i {
					t.Errorf("regroup(%d,%d): element order broken at %d: %v", n, m, i, flat)
					break
				}
			}
		}
	}
}

func TestSeqConcatShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.seq")
	defer teardown()
	//
	a, b := Immutable[int](), Immutable[int]()
	for i := 0; i < 20; i++ {
		a = a.Add(i)
		b = b.Add(100 + i)
	}
	c := a.Concat(b)
	t.Logf(printSeq(c))
	if &c.root.left[0] != &a.root.left[0] {
		t.Error("expected concat to reuse the left digit of the front operand, didn't")
	}
	if &c.root.right[0] != &b.root.right[0] {
		t.Error("expected concat to reuse the right digit of the back operand, didn't")
	}
	checkInvariants(t, c)
}

func TestSeqDeepCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.seq")
	defer teardown()
	//
	s := Immutable[int]()
	for i := 0; i < 5000; i++ {
		s = s.Push(i)
	}
	checkInvariants(t, s)
	for i := 4999; i >= 0; i-- {
		var item int
		item, s = s.Pop()
		if item != i {
			t.Fatalf("expected to pop %d, popped %d", i, item)
		}
	}
	if !s.IsEmpty() {
		t.Error("expected sequence to be empty after popping every element, isn't")
	}
}

// --- Invariant checking ----------------------------------------------------

// checkInvariants walks the complete tree and verifies digit sizes, group
// sizes and the level-consistency of groups, plus the length bookkeeping.
func checkInvariants[T any](t *testing.T, s Seq[T]) {
	t.Helper()
	count := checkTree(t, s.root, 0)
	if count != s.Len() {
		t.Errorf("length bookkeeping off: Len()=%d, tree holds %d", s.Len(), count)
	}
}

func checkTree[T any](t *testing.T, tr *ftree[T], level int) int {
	t.Helper()
	if tr == nil {
		return 0
	}
	if tr.solo != nil {
		if tr.left != nil || tr.mid != nil || tr.right != nil {
			t.Errorf("level %d: singleton with digits or middle", level)
		}
		return checkElem(t, *tr.solo, level)
	}
	if len(tr.left) < 1 || len(tr.left) > maxDigit {
		t.Errorf("level %d: left digit of illegal size %d", level, len(tr.left))
	}
	if len(tr.right) < 1 || len(tr.right) > maxDigit {
		t.Errorf("level %d: right digit of illegal size %d", level, len(tr.right))
	}
	count := 0
	for _, e := range tr.left {
		count += checkElem(t, e, level)
	}
	count += checkTree(t, tr.mid, level+1)
	for _, e := range tr.right {
		count += checkElem(t, e, level)
	}
	return count
}

func checkElem[T any](t *testing.T, e elem[T], level int) int {
	t.Helper()
	if level == 0 {
		if e.group != nil {
			t.Errorf("level 0: expected a leaf, found a group of %d", len(e.group))
		}
		return 1
	}
	if len(e.group) < 2 || len(e.group) > maxGroup {
		t.Errorf("level %d: group of illegal size %d", level, len(e.group))
		return 0
	}
	count := 0
	for _, child := range e.group {
		count += checkElem(t, child, level-1)
	}
	return count
}

// --- Print sequence tree ---------------------------------------------------

func printSeq[T any](s Seq[T]) string {
	header := fmt.Sprintf("\nSeq(length=%d)\n", s.length)
	printer := tp.New()
	printTree(printer, s.root)
	return header + printer.String() + "\n"
}

func printTree[T any](printer tp.Tree, tr *ftree[T]) {
	if tr == nil {
		printer.AddNode("·")
		return
	}
	if tr.solo != nil {
		printer.AddNode(fmt.Sprintf("single %s", tr.solo.String()))
		return
	}
	printer.AddNode("left  " + tr.left.String())
	if tr.mid != nil {
		branch := printer.AddBranch("mid")
		printTree(branch, tr.mid)
	}
	printer.AddNode("right " + tr.right.String())
}
