// Package srs reads vocabulary records from an SRS database snapshot and
// groups them by learning state.
package srs

// KnownStatus is the learner-assigned classification of a vocabulary item.
// The set is open-ended: the host app may introduce new values, so callers
// must tolerate statuses outside the four listed here.
type KnownStatus string

const (
	StatusUnknown  KnownStatus = "UNKNOWN"
	StatusIgnored  KnownStatus = "IGNORED"
	StatusLearning KnownStatus = "LEARNING"
	StatusKnown    KnownStatus = "KNOWN"
)

// ParseKnownStatus reports whether s is one of the recognised statuses.
// The raw value is returned either way so callers can log it.
func ParseKnownStatus(s string) (KnownStatus, bool) {
	switch KnownStatus(s) {
	case StatusUnknown, StatusIgnored, StatusLearning, StatusKnown:
		return KnownStatus(s), true
	}
	return KnownStatus(s), false
}

// Word is one vocabulary record, a read-only snapshot taken at export time.
type Word struct {
	DictForm  string      // dictionary form
	Secondary string      // secondary form (reading, translation, ...)
	Pos       string      // part of speech
	Language  string      // language code
	Mod       int64       // unix time of last record change
	StatusMod int64       // unix time of last status change
	Del       bool        // soft-deleted in the host app
	Status    KnownStatus // learner-assigned status
	HasCard   bool        // an SRS card exists for this word
	Tracked   bool        // marked as tracked, independent of status
}
