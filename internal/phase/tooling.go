package phase

import "slices"

// ToolingBlock is a static reference block of tool categories. Tooling
// blocks are shown alongside every phase and do not depend on the selection.
type ToolingBlock struct {
	Heading string
	Tools   []string
}

var tooling = []ToolingBlock{
	{
		Heading: "Detection & Analysis",
		Tools:   []string{"SIEM (Splunk, ELK Stack)", "Wireshark", "OSQuery"},
	},
	{
		Heading: "Containment & Response",
		Tools:   []string{"EDR Solutions", "Firewall & IDS/IPS", "Backup Systems"},
	},
}

// Tooling returns the reference tooling blocks in display order.
func Tooling() []ToolingBlock {
	blocks := make([]ToolingBlock, len(tooling))
	for i, b := range tooling {
		blocks[i] = ToolingBlock{Heading: b.Heading, Tools: slices.Clone(b.Tools)}
	}
	return blocks
}
