package catalog

// Notice is a transient user-facing status line, typically the outcome of
// the most recent transition attempt.
type Notice struct {
	Text string
	Err  bool
}

// State is the single view model the UI renders from. It owns the current
// snapshot plus load status and the last notice. It is mutated only from the
// UI's update loop, so it carries no locking.
type State struct {
	Snapshot *Snapshot
	Loading  bool
	Err      error
	Notice   Notice
}

func NewState() *State {
	return &State{}
}

func (s *State) BeginLoad() {
	s.Loading = true
	s.Err = nil
}

// FinishLoad installs the result of a catalog load. On failure the previous
// snapshot stays in place untouched; only the error is recorded.
func (s *State) FinishLoad(snap *Snapshot, err error) {
	s.Loading = false

	if err != nil {
		s.Err = err
		return
	}

	s.Snapshot = snap
	s.Err = nil
}

// TransitionAccepted records a success notice. The snapshot is left alone;
// the caller decides when to reload it.
func (s *State) TransitionAccepted(text string) {
	s.Notice = Notice{Text: text}
}

// TransitionFailed records a failure notice. The snapshot the user was
// looking at is never modified by a failed attempt.
func (s *State) TransitionFailed(text string) {
	s.Notice = Notice{Text: text, Err: true}
}

func (s *State) ClearNotice() {
	s.Notice = Notice{}
}
