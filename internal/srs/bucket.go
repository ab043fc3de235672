package srs

import "log/slog"

// Buckets groups words by learning state for export. Tracked cuts across
// the four status groups: a tracked word appears there in addition to its
// status group.
type Buckets struct {
	Unknown  []Word
	Ignored  []Word
	Learning []Word
	Known    []Word
	Tracked  []Word
}

// Classify buckets words in a single pass. Deleted words are dropped
// entirely. A word with an unrecognised status is logged and left out of
// the status groups, but still joins Tracked when its flag is set.
func Classify(words []Word, logger *slog.Logger) Buckets {
	if logger == nil {
		logger = slog.Default()
	}

	var b Buckets
	for _, w := range words {
		if w.Del {
			continue
		}

		switch w.Status {
		case StatusUnknown:
			b.Unknown = append(b.Unknown, w)
		case StatusIgnored:
			b.Ignored = append(b.Ignored, w)
		case StatusLearning:
			b.Learning = append(b.Learning, w)
		case StatusKnown:
			b.Known = append(b.Known, w)
		default:
			logger.Warn("skipping word with unrecognised status",
				"dictForm", w.DictForm,
				"status", string(w.Status))
		}

		if w.Tracked {
			b.Tracked = append(b.Tracked, w)
		}
	}

	return b
}
