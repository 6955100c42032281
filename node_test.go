package listor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// links reports the prev/next pair of every slot. A fresh listor with
// capacity n starts as one linear chain 0..n-1 with self-referential
// sentinels at both ends.
func links[T any](l *Listor[T]) [][2]int {
	out := make([][2]int, 0, len(l.nodes))
	for i := range l.nodes {
		out = append(out, [2]int{l.nodes[i].prev, l.nodes[i].next})
	}
	return out
}

func TestFreshChainLinks(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal(
		[][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}},
		links(WithCapacity[int](4)),
	)
	requireT.Equal([][2]int{{0, 0}}, links(WithCapacity[int](1)))
	requireT.Equal([][2]int{}, links(New[int]()))
}

func TestRemoveNodeInterior(t *testing.T) {
	requireT := require.New(t)
	l := WithCapacity[int](4)

	l.removeNode(1)

	requireT.Equal(2, l.nodes[0].next)
	requireT.Equal(0, l.nodes[2].prev)
}

func TestRemoveNodeHead(t *testing.T) {
	requireT := require.New(t)
	l := WithCapacity[int](4)

	l.removeNode(0)

	// The successor becomes the new chain head.
	requireT.Equal(1, l.nodes[1].prev)
}

func TestRemoveNodeTail(t *testing.T) {
	requireT := require.New(t)
	l := WithCapacity[int](4)

	l.removeNode(3)

	// The predecessor becomes the new chain tail.
	requireT.Equal(2, l.nodes[2].next)
}

func TestRemoveNodeIsolated(t *testing.T) {
	requireT := require.New(t)
	l := WithCapacity[int](1)

	l.removeNode(0)

	requireT.Equal([][2]int{{0, 0}}, links(l))
}

func TestInsertBeforeHead(t *testing.T) {
	requireT := require.New(t)
	l := WithCapacity[int](4)

	l.removeNode(0)
	l.insertBefore(0, 1)

	requireT.Equal([][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, links(l))
}

func TestInsertBeforeInterior(t *testing.T) {
	requireT := require.New(t)
	l := WithCapacity[int](4)

	l.removeNode(1)
	l.insertBefore(1, 2)

	requireT.Equal([][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, links(l))
}

func TestInsertAfterTail(t *testing.T) {
	requireT := require.New(t)
	l := WithCapacity[int](4)

	l.removeNode(3)
	l.insertAfter(3, 2)

	requireT.Equal([][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, links(l))
}

func TestInsertAfterInterior(t *testing.T) {
	requireT := require.New(t)
	l := WithCapacity[int](4)

	l.removeNode(2)
	l.insertAfter(2, 1)

	requireT.Equal([][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, links(l))
}

func TestSplicingIgnoresPayload(t *testing.T) {
	requireT := require.New(t)
	l := WithCapacity[string](3)

	l.nodes[1].item = "kept"
	l.removeNode(1)
	l.insertAfter(1, 2)

	requireT.Equal("kept", l.nodes[1].item)
	requireT.Equal([][2]int{{0, 2}, {2, 1}, {0, 1}}, links(l))
}
