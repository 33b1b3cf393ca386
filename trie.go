//  Copyright (c) 2017 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package levtrie

import "sort"

// Pair is a (key, value) entry as returned by ToList and OfList.
type Pair[S any, V any] struct {
	Key   S
	Value V
}

// child is one labelled edge out of a node.
type child[C any, V any] struct {
	key  C
	node *node[C, V]
}

// node is one trie node: an optional value plus a Compare-sorted
// slice of children. Empty nodes (no value, no children) must never
// appear as a child — add/remove maintain this invariant.
type node[C any, V any] struct {
	hasValue bool
	value    V
	children []child[C, V]
}

func (n *node[C, V]) isEmpty() bool {
	return n == nil || (!n.hasValue && len(n.children) == 0)
}

func (n *node[C, V]) clone() *node[C, V] {
	if n == nil {
		return &node[C, V]{}
	}
	cp := *n
	cp.children = append([]child[C, V](nil), n.children...)
	return &cp
}

// Index is a persistent (immutable) trie keyed by alphabet elements.
// Add and Remove return a new Index sharing unmodified structure with
// the receiver; the zero value is not valid, use Empty.
type Index[C any, S any, V any] struct {
	alpha Alphabet[C, S]
	root  *node[C, V]
}

// Empty returns an empty Index over the given alphabet.
func Empty[C any, S any, V any](alpha Alphabet[C, S]) Index[C, S, V] {
	return Index[C, S, V]{alpha: alpha}
}

// Alpha returns the alphabet this Index was built over.
func (idx Index[C, S, V]) Alpha() Alphabet[C, S] { return idx.alpha }

// IsEmpty reports whether the index holds no keys at all.
func (idx Index[C, S, V]) IsEmpty() bool { return idx.root.isEmpty() }

func (idx Index[C, S, V]) chars(key S) []C {
	n := idx.alpha.Len(key)
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = idx.alpha.Get(key, i)
	}
	return out
}

// Add returns a new Index with key mapped to v, replacing any value
// previously stored at key.
func (idx Index[C, S, V]) Add(key S, v V) Index[C, S, V] {
	return Index[C, S, V]{alpha: idx.alpha, root: idx.addRec(idx.root, idx.chars(key), v)}
}

func (idx Index[C, S, V]) addRec(n *node[C, V], chars []C, v V) *node[C, V] {
	nn := n.clone()
	if len(chars) == 0 {
		nn.hasValue = true
		nn.value = v
		return nn
	}
	c := chars[0]
	pos, found := idx.findChild(nn.children, c)
	if found {
		nn.children[pos].node = idx.addRec(nn.children[pos].node, chars[1:], v)
		return nn
	}
	newChild := idx.addRec(nil, chars[1:], v)
	nn.children = insertChildAt(nn.children, pos, child[C, V]{key: c, node: newChild})
	return nn
}

// Remove returns a new Index with key absent. If key was not present,
// the returned Index is equivalent to idx.
func (idx Index[C, S, V]) Remove(key S) Index[C, S, V] {
	newRoot, _ := idx.removeRec(idx.root, idx.chars(key))
	return Index[C, S, V]{alpha: idx.alpha, root: newRoot}
}

func (idx Index[C, S, V]) removeRec(n *node[C, V], chars []C) (*node[C, V], bool) {
	if n == nil {
		return nil, false
	}
	if len(chars) == 0 {
		if !n.hasValue {
			return n, false
		}
		nn := n.clone()
		nn.hasValue = false
		var zero V
		nn.value = zero
		if nn.isEmpty() {
			return nil, true
		}
		return nn, true
	}
	pos, found := idx.findChild(n.children, chars[0])
	if !found {
		return n, false
	}
	newChild, changed := idx.removeRec(n.children[pos].node, chars[1:])
	if !changed {
		return n, false
	}
	nn := n.clone()
	if newChild.isEmpty() {
		nn.children = append(nn.children[:pos], nn.children[pos+1:]...)
	} else {
		nn.children[pos].node = newChild
	}
	if nn.isEmpty() {
		return nil, true
	}
	return nn, true
}

// findChild returns the index of the child keyed by c, and whether it
// was found; if not found, the index is the sorted insertion point.
func (idx Index[C, S, V]) findChild(children []child[C, V], c C) (int, bool) {
	pos := sort.Search(len(children), func(i int) bool {
		return idx.alpha.Compare(children[i].key, c) >= 0
	})
	if pos < len(children) && idx.alpha.Compare(children[pos].key, c) == 0 {
		return pos, true
	}
	return pos, false
}

func insertChildAt[C any, V any](children []child[C, V], pos int, c child[C, V]) []child[C, V] {
	children = append(children, child[C, V]{})
	copy(children[pos+1:], children[pos:])
	children[pos] = c
	return children
}

// OfList builds an Index from pairs, left-folding Add over them.
func OfList[C any, S any, V any](alpha Alphabet[C, S], pairs []Pair[S, V]) Index[C, S, V] {
	idx := Empty[C, S, V](alpha)
	for _, p := range pairs {
		idx = idx.Add(p.Key, p.Value)
	}
	return idx
}

// ToList returns every (key, value) pair in pre-order traversal order.
func (idx Index[C, S, V]) ToList() []Pair[S, V] {
	var out []Pair[S, V]
	it := idx.ToSeq()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

// Fold threads acc through f for every (key, value) pair in pre-order,
// stopping and propagating the first error f returns.
func Fold[C any, S any, V any, A any](idx Index[C, S, V], f func(A, S, V) (A, error), acc A) (A, error) {
	it := idx.ToSeq()
	for {
		p, ok := it.Next()
		if !ok {
			return acc, nil
		}
		var err error
		acc, err = f(acc, p.Key, p.Value)
		if err != nil {
			return acc, err
		}
	}
}

// Iter calls f for every (key, value) pair in pre-order, stopping and
// propagating the first error f returns.
func Iter[C any, S any, V any](idx Index[C, S, V], f func(S, V) error) error {
	_, err := Fold[C, S, V, struct{}](idx, func(_ struct{}, k S, v V) (struct{}, error) {
		return struct{}{}, f(k, v)
	}, struct{}{})
	return err
}
