package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // cursor up
	ActionDown            // cursor down
	ActionLeft            // cursor left
	ActionRight           // cursor right
	ActionSlot1           // select slot 1
	ActionSlot2           // select slot 2
	ActionSlot3           // select slot 3
	ActionNextSlot        // cycle to the next non-empty slot
	ActionConfirm         // place the selected shape
	ActionBack            // back to the menu
	ActionRestart         // start over
	ActionQuit            // exit
	ActionPause           // pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:     "None",
	ActionUp:       "Up",
	ActionDown:     "Down",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionSlot1:    "Slot1",
	ActionSlot2:    "Slot2",
	ActionSlot3:    "Slot3",
	ActionNextSlot: "NextSlot",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionRestart:  "Restart",
	ActionQuit:     "Quit",
	ActionPause:    "Pause",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// SlotActions lists the direct slot selectors in order.
var SlotActions = []Action{ActionSlot1, ActionSlot2, ActionSlot3}

// InputFrame holds the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
