package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func listValues(l List[int]) []int {
	elems := make([]int, 0, l.Len())
	for i := l.Front(); i != nil; i = i.Next {
		elems = append(elems, i.Value)
	}
	return elems
}

func TestList(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		l := NewList[int]()

		require.Equal(t, 0, l.Len())
		require.Nil(t, l.Front())
		require.Nil(t, l.Back())
	})

	t.Run("complex", func(t *testing.T) {
		l := NewList[int]()

		l.PushFront(10) // [10]
		l.PushBack(20)  // [10, 20]
		l.PushBack(30)  // [10, 20, 30]
		require.Equal(t, 3, l.Len())

		middle := l.Front().Next // 20
		l.Remove(middle)         // [10, 30]
		require.Equal(t, 2, l.Len())
		require.Equal(t, []int{10, 30}, listValues(l))

		l.MoveToFront(l.Back()) // [30, 10]
		require.Equal(t, []int{30, 10}, listValues(l))
		require.Equal(t, 10, l.Back().Value)

		l.MoveToFront(l.Front()) // unchanged
		require.Equal(t, []int{30, 10}, listValues(l))

		l.Remove(l.Front())
		l.Remove(l.Front())
		require.Equal(t, 0, l.Len())
		require.Nil(t, l.Front())
		require.Nil(t, l.Back())
	})

	t.Run("nil item", func(t *testing.T) {
		l := NewList[int]()
		require.PanicsWithValue(t, nullNodeErr, func() { l.Remove(nil) })
		require.PanicsWithValue(t, nullNodeErr, func() { l.MoveToFront(nil) })
	})
}
