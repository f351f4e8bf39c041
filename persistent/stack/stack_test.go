package stack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/naasking/immutable/persistent/stack"
)

func TestStackEmpty(t *testing.T) {
	s := stack.Immutable[int]()
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Len())
	require.Equal(t, -1, s.Top().WithDefault(-1))
	require.Panics(t, func() { s.Pop() })
}

func TestStackPushPop(t *testing.T) {
	s := stack.From(1, 2, 3) // 3 on top
	require.Equal(t, 3, s.Len())
	require.Equal(t, 3, s.Top().WithDefault(-1))
	item, rest := s.Pop()
	require.Equal(t, 3, item)
	require.Equal(t, 2, rest.Len())
	require.Equal(t, 3, s.Len(), "expected original stack to be unchanged")
}

func TestStackSharing(t *testing.T) {
	s := stack.From(1, 2, 3)
	a := s.Push(4)
	b := s.Push(5)
	// a and b share s as their tail
	_, a = a.Pop()
	_, b = b.Pop()
	require.True(t, stack.Eq(a, b))
	require.True(t, stack.Eq(a, s))
}

func TestStackReverse(t *testing.T) {
	s := stack.From(1, 2, 3)
	r := s.Reverse()
	require.Equal(t, 1, r.Top().WithDefault(-1))
	require.True(t, stack.Eq(s, r.Reverse()))
}

func TestStackEach(t *testing.T) {
	s := stack.From(1, 2, 3, 4)
	var items []int
	s.Each(func(item int) bool {
		items = append(items, item)
		return true
	})
	require.Equal(t, []int{4, 3, 2, 1}, items)
}
