package diamond

import (
	"strconv"
	"strings"

	"github.com/dagbelief/dagbelief/internal/xhash"
)

// Key is the content-addressing key for a diamond: a structural fingerprint
// of the canonical triple (sorted(edgelist), sorted(highest_nodes), join)
// (spec.md §4.4). Two textually identical sub-diamonds reached via different
// parents produce the same Key and therefore share one Store entry.
type Key xhash.Fingerprint

// KeyOf computes the canonical Key of a Descriptor. EdgeList is sorted
// independently of Descriptor.EdgeList's edgelist-order field (which exists
// for belief's deterministic iteration, not for keying) so two structurally
// identical diamonds key identically regardless of discovery order.
func KeyOf(d *Descriptor) Key {
	var b strings.Builder
	b.WriteString("join=")
	b.WriteString(strconv.FormatInt(int64(d.Join), 10))

	b.WriteString("|highest=")
	for i, h := range d.HighestNodes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(h), 10))
	}

	edges := append([]struct{ From, To int64 }(nil))
	for _, e := range d.EdgeList {
		edges = append(edges, struct{ From, To int64 }{int64(e.From), int64(e.To)})
	}
	sortEdgePairs(edges)

	b.WriteString("|edges=")
	for i, e := range edges {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatInt(e.From, 10))
		b.WriteByte('-')
		b.WriteString(strconv.FormatInt(e.To, 10))
	}

	return Key(xhash.Sum128([]byte(b.String())))
}

func sortEdgePairs(edges []struct{ From, To int64 }) {
	// Small insertion sort: diamonds are local substructures, rarely large
	// enough to warrant sort.Slice's overhead, and this keeps KeyOf alloc-free
	// beyond the single edges slice.
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0 && less(edges[j], edges[j-1]); j-- {
			edges[j], edges[j-1] = edges[j-1], edges[j]
		}
	}
}

func less(a, b struct{ From, To int64 }) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
}
