package models

// BlockKind distinguishes label/value blocks from plain messages
type BlockKind string

const (
	BlockStat    BlockKind = "stat"
	BlockMessage BlockKind = "message"
)

// DisplayBlock is one line of the statistics panel
type DisplayBlock struct {
	Kind     BlockKind `json:"kind"`
	Label    string    `json:"label,omitempty"`
	Value    string    `json:"value,omitempty"`
	Message  string    `json:"message,omitempty"`
	Emphasis bool      `json:"emphasis,omitempty"`
}

// StatBlock builds a label/value block
func StatBlock(label, value string) DisplayBlock {
	return DisplayBlock{Kind: BlockStat, Label: label, Value: value}
}

// MessageBlock builds a single message block
func MessageBlock(msg string) DisplayBlock {
	return DisplayBlock{Kind: BlockMessage, Message: msg}
}

// Text renders the block as a single line, e.g. "Trips: 1,234"
func (b DisplayBlock) Text() string {
	if b.Kind == BlockMessage {
		return b.Message
	}
	return b.Label + ": " + b.Value
}
