package ai

import "math"

var (
	bowlingBase = Weights{0: 5, 1: 5, 2: 10, 3: 20, 4: 30, 6: 30}

	battingFirstInnings = Weights{0: 3, 1: 5, 2: 15, 3: 15, 4: 30, 6: 32}
	battingChaseWon     = Weights{0: 5, 1: 15, 2: 50, 3: 20, 4: 10}
	battingChaseEasy    = Weights{0: 3, 1: 5, 2: 30, 3: 20, 4: 25, 6: 17}
	battingChaseSteady  = Weights{0: 3, 1: 5, 2: 20, 3: 15, 4: 30, 6: 27}
	battingChaseHard    = Weights{0: 1, 1: 2, 2: 10, 3: 5, 4: 35, 6: 47}
	battingChaseDesp    = Weights{0: 1, 1: 1, 2: 5, 3: 5, 4: 40, 6: 48}

	// evasionTargets receive the weight removed from a batting tell.
	evasionTargets = []int{6, 4, 3, 2}
)

// RequiredRate is runs needed per over of the balls left. It is +Inf when no
// balls remain.
func RequiredRate(s Situation) float64 {
	if s.BallsLeft <= 0 {
		return math.Inf(1)
	}
	return float64(s.Target-s.Score) / (float64(s.BallsLeft) / 6)
}

// BattingTable picks the base batting table for the situation.
func BattingTable(s Situation) Weights {
	if s.Innings != 2 {
		return battingFirstInnings
	}
	if s.Target-s.Score <= 0 {
		return battingChaseWon
	}
	switch rrr := RequiredRate(s); {
	case rrr <= 6:
		return battingChaseEasy
	case rrr <= 8:
		return battingChaseSteady
	case rrr <= 10:
		return battingChaseHard
	default:
		return battingChaseDesp
	}
}

// BowlingWeights builds the bowling table, concentrating on a detected tell
// in the user's batting so that a match, and so a wicket, becomes likely.
func BowlingWeights(recentBatting []int) Weights {
	w := bowlingBase
	if tell, count, ok := DetectTell(recentBatting); ok {
		w[tell] += float64(40 + 10*count)
		for _, run := range Runs {
			if run != tell {
				w[run] = math.Max(5, w[run]*0.8)
			}
		}
	}
	w[1] = math.Min(10, w[1])
	w[2] = math.Min(15, w[2])
	return w
}

// BattingWeights builds the batting table for the situation and steers away
// from a tell in the user's bowling.
func BattingWeights(s Situation, recentBowling []int) Weights {
	w := BattingTable(s)
	tell, _, ok := DetectTell(recentBowling)
	if !ok || w[tell] <= 0 {
		return w
	}
	removed := w[tell] * 0.95
	w[tell] -= removed

	var targets []int
	for _, run := range evasionTargets {
		if run != tell {
			targets = append(targets, run)
		}
	}
	share := removed / float64(len(targets))
	for _, run := range targets {
		w[run] += share
	}
	return w
}

// ChooseWeighted draws a run value from w using the uniform draw u in [0, 1).
// Only positive weights take part. A table without positive weight falls back
// to a uniform pick over 0..6.
func ChooseWeighted(w Weights, u float64) int {
	total := 0.0
	for _, weight := range w {
		if weight > 0 {
			total += weight
		}
	}
	if total <= 0 {
		return int(u * float64(len(w)))
	}

	r := u * total
	last := -1
	for run, weight := range w {
		if weight <= 0 {
			continue
		}
		last = run
		r -= weight
		if r <= 0 {
			return run
		}
	}
	// Floating point overrun; the last positive weight owns the top of the range.
	return last
}
