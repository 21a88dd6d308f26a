package domain

import "errors"

var (
	ErrUnknownPolicy         = errors.New("unknown policy")
	ErrTimelineLength        = errors.New("timeline length does not match horizon")
	ErrTimelineCharacter     = errors.New("timeline contains a letter outside the workload")
	ErrRatingOutOfRange      = errors.New("rating out of range")
	ErrSurveyAlreadyRecorded = errors.New("survey already recorded")
)
