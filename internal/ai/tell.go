package ai

// DetectTell returns the most frequent value in recent when it occurs at
// least TellThreshold times. On equal counts the lower value wins.
func DetectTell(recent []int) (value, count int, ok bool) {
	var counts [7]int
	for _, run := range recent {
		if run >= 0 && run < len(counts) {
			counts[run]++
		}
	}
	value = -1
	for run, n := range counts {
		if n >= TellThreshold && n > count {
			value, count = run, n
		}
	}
	if value < 0 {
		return 0, 0, false
	}
	return value, count, true
}
