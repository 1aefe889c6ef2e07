package packet

// VersionSum returns the sum of the version numbers of p and all its
// descendants by walking the tree. Parse reports the same figure without a
// second pass; this is the reference it must agree with.
func VersionSum(p Packet) uint64 {
	sum := uint64(p.Version)
	for _, child := range p.Children {
		sum += VersionSum(child)
	}
	return sum
}

// Walk visits p and its descendants in preorder. depth is 0 for p. Returning
// false from fn skips the children of the packet just visited.
func Walk(p Packet, fn func(depth int, p Packet) bool) {
	walk(p, 0, fn)
}

func walk(p Packet, depth int, fn func(int, Packet) bool) {
	if !fn(depth, p) {
		return
	}
	for _, child := range p.Children {
		walk(child, depth+1, fn)
	}
}

// Count returns the number of packets in the tree rooted at p.
func Count(p Packet) int {
	n := 0
	Walk(p, func(int, Packet) bool {
		n++
		return true
	})
	return n
}
