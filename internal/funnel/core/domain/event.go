package domain

type Direction string

const (
	DirectionOutbound Direction = "outbound"
	DirectionInbound  Direction = "inbound"
)

// Event is one message of a conversation as read from the store.
// Empty UserID and Tag mean "absent".
type Event struct {
	UserID    string    `json:"userId"`
	Timestamp string    `json:"timestamp"` // ISO-8601
	Direction Direction `json:"direction"`
	Tag       string    `json:"tag"`
}

func (e Event) IsOutbound() bool { return e.Direction == DirectionOutbound }
func (e Event) IsInbound() bool  { return e.Direction == DirectionInbound }

// Known reports whether d is one of the two supported directions.
func (d Direction) Known() bool {
	return d == DirectionOutbound || d == DirectionInbound
}
