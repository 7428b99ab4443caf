package password

// charRange is an inclusive range of ASCII characters.
type charRange struct {
	first, last byte
}

// Printable ASCII punctuation: everything between '!' and '~' that is
// neither a digit nor a letter.
var (
	symbolRanges = []charRange{{'!', '/'}, {':', '@'}, {'[', '`'}, {'{', '~'}}
	numberRanges = []charRange{{'0', '9'}}
	upperRanges  = []charRange{{'A', 'Z'}}
	lowerRanges  = []charRange{{'a', 'z'}}
)

// Pool is the ordered set of characters a password is sampled from.
type Pool []byte

// BuildPool expands the enabled classes of spec into a Pool. Classes are
// appended in the fixed order symbols, numbers, upper, lower. Length does not
// influence the result.
func BuildPool(spec Spec) Pool {
	pool := make(Pool, 0, 94)

	if spec.Symbols {
		pool = appendRanges(pool, symbolRanges)
	}
	if spec.Numbers {
		pool = appendRanges(pool, numberRanges)
	}
	if spec.Upper {
		pool = appendRanges(pool, upperRanges)
	}
	if spec.Lower {
		pool = appendRanges(pool, lowerRanges)
	}

	return pool
}

func appendRanges(pool Pool, ranges []charRange) Pool {
	for _, r := range ranges {
		for c := r.first; c <= r.last; c++ {
			pool = append(pool, c)
		}
	}
	return pool
}

// Contains reports whether c is a member of the pool.
func (p Pool) Contains(c byte) bool {
	for _, b := range p {
		if b == c {
			return true
		}
	}
	return false
}

// String returns the pool as a string in pool order.
func (p Pool) String() string {
	return string(p)
}
