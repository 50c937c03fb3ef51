package ball

// HistorySize is how many recent choices are kept for prediction.
const HistorySize = 6

// History is a bounded buffer of one role's recent choices. When full the
// oldest choice is evicted.
type History struct {
	values []int
}

// Push appends a choice, evicting the oldest one past HistorySize.
func (h *History) Push(run int) {
	if len(h.values) == HistorySize {
		copy(h.values, h.values[1:])
		h.values = h.values[:HistorySize-1]
	}
	h.values = append(h.values, run)
}

// Values returns a copy of the buffer, oldest first.
func (h *History) Values() []int {
	out := make([]int, len(h.values))
	copy(out, h.values)
	return out
}

// Len is the number of buffered choices.
func (h *History) Len() int {
	return len(h.values)
}

// Tracker keeps the user's recent batting and bowling choices separately.
type Tracker struct {
	Batting History
	Bowling History
}

// Record appends the user's choice to the buffer of the role they played.
func (t *Tracker) Record(userBatting bool, run int) {
	if userBatting {
		t.Batting.Push(run)
		return
	}
	t.Bowling.Push(run)
}

// Recent returns the buffer the AI should read: the user's batting when the
// user bats, their bowling otherwise.
func (t *Tracker) Recent(userBatting bool) []int {
	if userBatting {
		return t.Batting.Values()
	}
	return t.Bowling.Values()
}
