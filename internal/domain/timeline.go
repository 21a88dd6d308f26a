package domain

import "fmt"

// Timeline records which process the user believes runs at each discrete
// time unit. One byte per unit, either a workload letter or a space for an
// idle/unanswered slot.
type Timeline string

const TimelineBlank = ' '

// BlankTimeline returns an all-blank timeline of the given horizon.
func BlankTimeline(horizon int) Timeline {
	runes := make([]rune, horizon)
	for i := range runes {
		runes[i] = TimelineBlank
	}
	return Timeline(runes)
}

func (t Timeline) Validate(horizon int, allowed []rune) error {
	runes := []rune(string(t))
	if len(runes) != horizon {
		return fmt.Errorf("%w: got %d, want %d", ErrTimelineLength, len(runes), horizon)
	}

	allowedSet := make(map[rune]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	for i, r := range runes {
		if r == TimelineBlank {
			continue
		}
		if _, ok := allowedSet[r]; !ok {
			return fmt.Errorf("%w: %q at unit %d", ErrTimelineCharacter, r, i)
		}
	}

	return nil
}

// Blank reports whether the timeline has no letters filled in at all.
func (t Timeline) Blank() bool {
	for _, r := range t {
		if r != TimelineBlank {
			return false
		}
	}
	return true
}
