// Package cache provides a fixed-size least recently used cache.
package cache

import (
	"sync"
)

type Key string

type Cache[V any] interface {
	Set(key Key, value V) bool
	Get(key Key) (V, bool)
	Len() int
	Clear()
}

type entry[V any] struct {
	key   Key
	value V
}

type lruCache[V any] struct {
	capacity int
	queue    List[entry[V]]
	items    map[Key]*ListItem[entry[V]]
	mutex    sync.Mutex
}

// NewCache returns an LRU cache holding at most capacity entries.
// A capacity below one yields a cache that stores nothing.
func NewCache[V any](capacity int) Cache[V] {
	if capacity < 0 {
		capacity = 0
	}
	return &lruCache[V]{
		capacity: capacity,
		queue:    NewList[entry[V]](),
		items:    make(map[Key]*ListItem[entry[V]], capacity),
	}
}

// Set stores value under key and reports whether the key was already present.
func (lru *lruCache[V]) Set(key Key, value V) bool {
	lru.mutex.Lock()
	defer lru.mutex.Unlock()

	if lru.capacity == 0 {
		return false
	}

	node := lru.items[key]
	if node != nil {
		node.Value.value = value
		lru.queue.MoveToFront(node)
		return true
	}
	if lru.queue.Len() == lru.capacity {
		lastNode := lru.queue.Back()
		delete(lru.items, lastNode.Value.key)
		lru.queue.Remove(lastNode)
	}

	lru.items[key] = lru.queue.PushFront(entry[V]{key: key, value: value})

	return false
}

// Get reorders the queue, so it takes the write lock.
func (lru *lruCache[V]) Get(key Key) (V, bool) {
	lru.mutex.Lock()
	defer lru.mutex.Unlock()

	node := lru.items[key]
	if node == nil {
		var zero V
		return zero, false
	}
	lru.queue.MoveToFront(node)
	return node.Value.value, true
}

func (lru *lruCache[V]) Len() int {
	lru.mutex.Lock()
	defer lru.mutex.Unlock()

	return lru.queue.Len()
}

func (lru *lruCache[V]) Clear() {
	lru.mutex.Lock()
	defer lru.mutex.Unlock()

	lru.items = make(map[Key]*ListItem[entry[V]], lru.capacity)
	lru.queue = NewList[entry[V]]()
}
