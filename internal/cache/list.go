package cache

// List is a doubly linked list that keeps cache entries in recency order.
type List[V any] interface {
	Len() int
	Front() *ListItem[V]
	Back() *ListItem[V]
	PushFront(v V) *ListItem[V]
	PushBack(v V) *ListItem[V]
	Remove(i *ListItem[V])
	MoveToFront(i *ListItem[V])
}

type ListItem[V any] struct {
	Value V
	Next  *ListItem[V]
	Prev  *ListItem[V]
}

type list[V any] struct {
	length int
	head   *ListItem[V]
	tail   *ListItem[V]
}

var (
	nullNodeErr = "cache: list item must not be nil"
	noNextErr   = "cache: list item has no next node and is not the tail, list corrupted"
	noPrevErr   = "cache: list item has no prev node and is not the head, list corrupted"
)

func (l *list[V]) addFirstItem(newNode *ListItem[V]) {
	l.head = newNode
	l.tail = newNode
	l.length++
}

func (l *list[V]) Len() int {
	return l.length
}

func (l *list[V]) unlink(i *ListItem[V]) {
	if i.Next != nil {
		i.Next.Prev = i.Prev
	} else {
		if l.tail != i {
			panic(noNextErr)
		}
		l.tail = i.Prev
	}

	if i.Prev != nil {
		i.Prev.Next = i.Next
	} else {
		if l.head != i {
			panic(noPrevErr)
		}
		l.head = i.Next
	}
	i.Next = nil
	i.Prev = nil
}

func (l *list[V]) Remove(i *ListItem[V]) {
	if i == nil {
		panic(nullNodeErr)
	}

	l.unlink(i)

	var zero V
	i.Value = zero
	l.length--
}

func (l *list[V]) MoveToFront(i *ListItem[V]) {
	if i == nil {
		panic(nullNodeErr)
	}

	if l.head == i {
		return
	}

	l.unlink(i)
	l.head.Prev = i
	i.Next = l.head
	l.head = i
}

func (l *list[V]) Front() *ListItem[V] {
	return l.head
}

func (l *list[V]) Back() *ListItem[V] {
	return l.tail
}

func (l *list[V]) PushFront(v V) *ListItem[V] {
	newNode := &ListItem[V]{Value: v}

	if l.head == nil {
		l.addFirstItem(newNode)
		return newNode
	}
	l.head.Prev = newNode
	newNode.Next = l.head
	l.head = newNode
	l.length++
	return newNode
}

func (l *list[V]) PushBack(v V) *ListItem[V] {
	newNode := &ListItem[V]{Value: v}

	if l.tail == nil {
		l.addFirstItem(newNode)
		return newNode
	}
	l.tail.Next = newNode
	newNode.Prev = l.tail
	l.tail = newNode
	l.length++
	return newNode
}

func NewList[V any]() List[V] {
	return new(list[V])
}
