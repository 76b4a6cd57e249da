package topo

import "github.com/dagbelief/dagbelief/graphidx"

// DenseClosureThreshold selects the closure-set backing: graphs with at most
// this many nodes use a compacted bitset (O(V/64) per op, steady cost
// regardless of how large any one closure grows); larger graphs use a
// hash-set (cost proportional to the closure's actual size). The choice
// depends on node count only, not on edge density.
const DenseClosureThreshold = 4096

// closureSet is the minimal mutable-set contract used while building
// ancestor/descendant closures during Analyze.
type closureSet interface {
	add(v graphidx.NodeID)
	has(v graphidx.NodeID) bool
	unionFrom(other closureSet)
	len() int
	slice() []graphidx.NodeID
}

// hashClosure backs closureSet with a plain map; used above DenseClosureThreshold.
type hashClosure map[graphidx.NodeID]struct{}

func newHashClosure() closureSet { return make(hashClosure) }

func (h hashClosure) add(v graphidx.NodeID) { h[v] = struct{}{} }
func (h hashClosure) has(v graphidx.NodeID) bool {
	_, ok := h[v]
	return ok
}
func (h hashClosure) unionFrom(other closureSet) {
	o, ok := other.(hashClosure)
	if !ok {
		for _, v := range other.slice() {
			h[v] = struct{}{}
		}
		return
	}
	for v := range o {
		h[v] = struct{}{}
	}
}
func (h hashClosure) len() int { return len(h) }
func (h hashClosure) slice() []graphidx.NodeID {
	out := make([]graphidx.NodeID, 0, len(h))
	for v := range h {
		out = append(out, v)
	}
	return out
}

// bitsetClosure backs closureSet with a compacted []uint64 bitset, indexed
// through a shared NodeID->int ordinal table built once per Analyze call.
type bitsetClosure struct {
	bits    []uint64
	toIndex map[graphidx.NodeID]int
	toNode  []graphidx.NodeID
}

func newBitsetClosure(toIndex map[graphidx.NodeID]int, toNode []graphidx.NodeID) closureSet {
	return &bitsetClosure{
		bits:    make([]uint64, (len(toNode)+63)/64),
		toIndex: toIndex,
		toNode:  toNode,
	}
}

func (b *bitsetClosure) add(v graphidx.NodeID) {
	i := b.toIndex[v]
	b.bits[i/64] |= 1 << uint(i%64)
}

func (b *bitsetClosure) has(v graphidx.NodeID) bool {
	i, ok := b.toIndex[v]
	if !ok {
		return false
	}
	return b.bits[i/64]&(1<<uint(i%64)) != 0
}

func (b *bitsetClosure) unionFrom(other closureSet) {
	o, ok := other.(*bitsetClosure)
	if !ok {
		for _, v := range other.slice() {
			b.add(v)
		}
		return
	}
	for i := range b.bits {
		b.bits[i] |= o.bits[i]
	}
}

func (b *bitsetClosure) len() int {
	n := 0
	for _, word := range b.bits {
		for word != 0 {
			word &= word - 1
			n++
		}
	}
	return n
}

func (b *bitsetClosure) slice() []graphidx.NodeID {
	out := make([]graphidx.NodeID, 0, b.len())
	for wi, word := range b.bits {
		for word != 0 {
			bit := word & -word
			idx := wi*64 + trailingZeros64(bit)
			out = append(out, b.toNode[idx])
			word &= word - 1
		}
	}
	return out
}

func trailingZeros64(x uint64) int {
	n := 0
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}

func newClosureSet(toIndex map[graphidx.NodeID]int, toNode []graphidx.NodeID) closureSet {
	if len(toNode) <= DenseClosureThreshold {
		return newBitsetClosure(toIndex, toNode)
	}
	return newHashClosure()
}
