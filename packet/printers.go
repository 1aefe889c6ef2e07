package packet

import (
	"fmt"
	"strings"
)

// debug utilities

// Format renders the tree rooted at p one packet per line, children indented
// under their parent.
func Format(p Packet) string {
	var b strings.Builder
	Walk(p, func(depth int, p Packet) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(packetLine(p))
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

func (p Packet) String() string {
	return strings.TrimSuffix(Format(p), "\n")
}

func packetLine(p Packet) string {
	if p.IsLiteral() {
		return fmt.Sprintf("v%d literal %d", p.Version, p.Value)
	}
	mode := "bits"
	if p.LengthType == LengthCount {
		mode = "count"
	}
	return fmt.Sprintf("v%d %s (%s, %d children)", p.Version, p.TypeID, mode, len(p.Children))
}
