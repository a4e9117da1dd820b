package breakout

// Event is the outcome of one call to Model.OnFrame. At most one event
// happens per frame.
type Event int

const (
	EventIdle     Event = iota // Ball not live, nothing moved
	EventMove                  // Free flight, no contact
	EventBallLost              // Ball fell past the bottom and was reset onto the paddle
	EventCorner                // Top wall and a side wall at once, both axes reflected
	EventTop                   // Top wall, vertical reflection
	EventSide                  // Side wall, horizontal reflection
	EventPaddle                // Paddle, vertical reflection
	EventBrick                 // Brick destroyed, vertical reflection plus boost
)

// String returns the event name used in logs.
func (e Event) String() string {
	switch e {
	case EventIdle:
		return "idle"
	case EventMove:
		return "move"
	case EventBallLost:
		return "ball-lost"
	case EventCorner:
		return "corner"
	case EventTop:
		return "top"
	case EventSide:
		return "side"
	case EventPaddle:
		return "paddle"
	case EventBrick:
		return "brick"
	default:
		return "unknown"
	}
}
