package check

// Outcome is the classification of a single comparison.
type Outcome int

const (
	Error      Outcome = -1
	Failed     Outcome = 0
	Success    Outcome = 1
	CombinedOK Outcome = 100
	Warning    Outcome = 999
)

// String returns the label used in result lines.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "SUCCESS"
	case Warning:
		return "WARNING"
	case Failed:
		return "FAILED"
	case Error:
		return "ERROR"
	case CombinedOK:
		return "COMBINED-OK"
	default:
		return "UNKNOWN"
	}
}

// Notable reports whether the outcome calls for the step's severity to be
// shown next to it.
func (o Outcome) Notable() bool {
	return o == Failed || o == Error
}

// Combine folds the outcomes of several comparisons into one. A
// CombinedOK entry wins, then any Success; everything else is Failed.
func Combine(outcomes []Outcome) Outcome {
	var sawSuccess bool
	for _, o := range outcomes {
		if o == CombinedOK {
			return CombinedOK
		}
		if o == Success {
			sawSuccess = true
		}
	}
	if sawSuccess {
		return Success
	}
	return Failed
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
