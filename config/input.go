package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionSprint
	ActionDash
	ActionBack
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionSprint:    "sprint",
	ActionDash:      "dash",
	ActionBack:      "back",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ControlSchemeID selects a per-player keyboard layout
type ControlSchemeID int

const (
	ControlSchemeWASD ControlSchemeID = iota
	ControlSchemeArrows
	ControlSchemeCount
)

func (s ControlSchemeID) String() string {
	switch s {
	case ControlSchemeWASD:
		return "WASD"
	case ControlSchemeArrows:
		return "Arrows"
	}
	return "None"
}
