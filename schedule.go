package rc5

import "strconv"

// MaxRounds is the largest round count the key schedule accepts.
const MaxRounds = 256

// RoundCountError is returned when the round count is negative or larger
// than MaxRounds.
type RoundCountError int

func (r RoundCountError) Error() string {
	return "rc5: invalid number of rounds " + strconv.Itoa(int(r))
}

// keyWords packs the secret key into c = max(ceil(b/u), 1) words, scanning
// the bytes from last to first so each word fills up little-endian-wise. An
// empty key packs to a single zero word.
func keyWords[W Word[W]](key []byte) []W {
	var zero W
	u := zero.Bytes()

	l := make([]W, max((len(key)+u-1)/u, 1))
	for i := len(key) - 1; i >= 0; i-- {
		j := i / u
		l[j] = l[j].RotateLeft(8).Add(zero.FromByte(key[i]))
	}
	return l
}

// expandKey derives the round-key table from the secret key: t = 2*(rounds+1)
// words seeded with the arithmetic progression P, P+Q, P+2Q, ... and then
// mixed with the key words over 3*max(t, c) passes. The intermediate key
// words are wiped before returning.
func expandKey[W Word[W]](key *SecretKey, rounds int) []W {
	var zero W

	l := keyWords[W](key.k)
	defer wipeWords(l)

	t := 2 * (rounds + 1)
	s := make([]W, t)
	s[0] = zero.P()
	for i := 1; i < t; i++ {
		s[i] = s[i-1].Add(zero.Q())
	}

	// The table half rotates by a fixed 3 bits, which is always smaller than
	// the word size. The key half rotates by A+B, which is not, so it goes
	// through the modulo-reducing rotation. The two must stay distinct.
	var a, b W
	i, j := 0, 0
	for range 3 * max(t, len(l)) {
		a = s[i].Add(a).Add(b).RotateLeft(3)
		s[i] = a
		b = l[j].Add(a).Add(b).RotateLeftBy(a.Add(b))
		l[j] = b
		i = (i + 1) % t
		j = (j + 1) % len(l)
	}

	return s
}

func wipeWords[W Word[W]](w []W) { clear(w) }
