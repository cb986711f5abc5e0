package alphabet

// A LetterSet is an ordered collection of distinct lowercase ASCII letters.
// Insertion order is preserved for display purposes only; membership tests
// go through a 26-bit mask, one bit per letter.
type LetterSet struct {
	letters []byte
	mask    uint32
}

// bitFor returns the mask bit for a lowercase letter, or 0 if the byte is
// not in a-z.
func bitFor(c byte) uint32 {
	if c < 'a' || c > 'z' {
		return 0
	}
	return 1 << (c - 'a')
}

// Add appends a letter to the set if it is a lowercase letter not already
// present. Anything else is ignored.
func (ls *LetterSet) Add(c byte) {
	bit := bitFor(c)
	if bit == 0 || ls.mask&bit != 0 {
		return
	}
	ls.letters = append(ls.letters, c)
	ls.mask |= bit
}

// Has returns true if the letter is a member of the set.
func (ls LetterSet) Has(c byte) bool {
	return ls.mask&bitFor(c) != 0
}

// Len returns the number of distinct letters in the set.
func (ls LetterSet) Len() int {
	return len(ls.letters)
}

// Mask returns the set's 26-bit membership mask.
func (ls LetterSet) Mask() uint32 {
	return ls.mask
}

// Letters returns the set's letters in insertion order.
func (ls LetterSet) Letters() []byte {
	out := make([]byte, len(ls.letters))
	copy(out, ls.letters)
	return out
}

func (ls LetterSet) String() string {
	return string(ls.letters)
}

// Union returns the set of ls's letters followed by any letters of other not
// already present.
func (ls LetterSet) Union(other LetterSet) LetterSet {
	var u LetterSet
	for _, c := range ls.letters {
		u.Add(c)
	}
	for _, c := range other.letters {
		u.Add(c)
	}
	return u
}

// WordMask computes the membership mask of a word's letters, case-folding
// ASCII uppercase. ok is false if the word contains any character outside
// a-z after folding; such a word cannot belong to any alphabet.
func WordMask(word string) (mask uint32, ok bool) {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		bit := bitFor(c)
		if bit == 0 {
			return 0, false
		}
		mask |= bit
	}
	return mask, true
}
