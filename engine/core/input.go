package core

// Input tracks per-key state from the event stream for polling-style checks.
type Input struct {
	keys map[Key]bool
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	if e, ok := ev.(EventKey); ok {
		in.keys[e.Key] = e.Down
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }
