package tutor

// Outcome is the result of one recall test.
type Outcome int

const (
	OutcomeMatch Outcome = iota
	OutcomeTooLong
	OutcomeTooShort
	OutcomeMismatch
)

// Message returns the line printed for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeMatch:
		return "You got it!"
	case OutcomeTooLong:
		return "Too long!"
	case OutcomeTooShort:
		return "Too short!"
	default:
		return "Errors in your password!"
	}
}

// String returns a short name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeMatch:
		return "match"
	case OutcomeTooLong:
		return "too_long"
	case OutcomeTooShort:
		return "too_short"
	default:
		return "mismatch"
	}
}

// Compare classifies attempt against correct. Lengths are byte lengths.
func Compare(correct, attempt string) Outcome {
	switch {
	case correct == attempt:
		return OutcomeMatch
	case len(correct) < len(attempt):
		return OutcomeTooLong
	case len(correct) > len(attempt):
		return OutcomeTooShort
	default:
		return OutcomeMismatch
	}
}
