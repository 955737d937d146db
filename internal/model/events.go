package model

// EventType identifies the type of event
type EventType string

const (
	EventRolled       EventType = "rolled"
	EventDiceRejected EventType = "dice_rejected"
	EventArrived      EventType = "arrived"
	EventSkipped      EventType = "skipped"
	EventTurnPassed   EventType = "turn_passed"
	EventGameFinished EventType = "game_finished"
)

// Event records something that happened during a turn
type Event struct {
	Type     EventType
	Turn     int
	Player   string
	Dice     int // Rolled and rejected events
	Position int // Position after the event
	Rank     int // Arrived events
	Skips    int // Remaining skips for skipped events
}
