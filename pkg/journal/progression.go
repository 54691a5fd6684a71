package journal

// PostExperience is the experience awarded per created post. Three posts
// complete a level under nominal accumulation.
const PostExperience = 33.34

// levelThreshold is the experience value at which a level completes.
const levelThreshold = 100

// ApplyPostReward advances the level/experience counter for one created
// post. Reaching the threshold increments the level and resets experience to
// exactly zero; the remainder above the threshold is discarded, not carried
// over. Only post creation advances the counter, and the level never
// decreases.
func ApplyPostReward(s Stats) Stats {
	s.Experience += PostExperience
	if s.Experience >= levelThreshold {
		s.Level++
		s.Experience = 0
	}
	return s
}
