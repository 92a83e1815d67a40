package rc5 //nolint:testpackage // testing unexported internals

import (
	"bytes"
	"testing"
)

func testWordSizes[W Word[W]](t *testing.T, wantBits uint, wantBytes, wantRounds int) {
	t.Helper()

	var zero W
	if got := zero.Bits(); got != wantBits {
		t.Errorf("Bits() = %d, want %d", got, wantBits)
	}
	if got := zero.Bytes(); got != wantBytes {
		t.Errorf("Bytes() = %d, want %d", got, wantBytes)
	}
	if got := zero.NominalRounds(); got != wantRounds {
		t.Errorf("NominalRounds() = %d, want %d", got, wantRounds)
	}
}

func TestWordSizes(t *testing.T) {
	testWordSizes[Word16](t, 16, 2, 12)
	testWordSizes[Word32](t, 32, 4, 16)
	testWordSizes[Word64](t, 64, 8, 20)
}

func TestRotateLeftByModulo(t *testing.T) {
	// Rotating by 12 plus any multiple of the word size is rotating by 12.
	n := Word64(0x0123456789abcdef)
	if got, want := n.RotateLeftBy(12+64*1_000_000), Word64(0x3456789abcdef012); got != want {
		t.Errorf("RotateLeftBy(12 + 64M) = %#016x, want %#016x", uint64(got), uint64(want))
	}
}

func TestRotateRightByModulo(t *testing.T) {
	n := Word64(0x0123456789abcdef)
	if got, want := n.RotateRightBy(12+64*100_000), Word64(0xdef0123456789abc); got != want {
		t.Errorf("RotateRightBy(12 + 6.4M) = %#016x, want %#016x", uint64(got), uint64(want))
	}
}

func TestRotateInverses(t *testing.T) {
	for n := Word16(0); n < 100; n++ {
		x := Word16(0xb7e1)
		if got := x.RotateLeftBy(n).RotateRightBy(n); got != x {
			t.Errorf("RotateRightBy(RotateLeftBy(%#x, %d), %d) = %#x", uint16(x), n, n, uint16(got))
		}
	}
}

func TestLoadLE(t *testing.T) {
	if got, want := Word16(0).LoadLE([]byte{24, 48}), Word16(12312); got != want {
		t.Errorf("LoadLE = %d, want %d", got, want)
	}
	if got, want := Word32(0).LoadLE([]byte{179, 181, 86, 7}), Word32(123123123); got != want {
		t.Errorf("LoadLE = %d, want %d", got, want)
	}
	if got, want := Word64(0).LoadLE([]byte{179, 243, 99, 1, 212, 107, 181, 1}), Word64(123123123123123123); got != want {
		t.Errorf("LoadLE = %d, want %d", got, want)
	}
}

func TestAppendLE(t *testing.T) {
	if got, want := Word16(12312).AppendLE(nil), []byte{24, 48}; !bytes.Equal(got, want) {
		t.Errorf("AppendLE = %v, want %v", got, want)
	}
	if got, want := Word32(123123123).AppendLE(nil), []byte{179, 181, 86, 7}; !bytes.Equal(got, want) {
		t.Errorf("AppendLE = %v, want %v", got, want)
	}
	if got, want := Word64(123123123123123123).AppendLE(nil), []byte{179, 243, 99, 1, 212, 107, 181, 1}; !bytes.Equal(got, want) {
		t.Errorf("AppendLE = %v, want %v", got, want)
	}
}
