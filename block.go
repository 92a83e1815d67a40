package rc5

// encryptBlock applies the forward transform to the two-word block (a, b).
func encryptBlock[W Word[W]](s []W, rounds int, a, b W) (W, W) {
	a = a.Add(s[0])
	b = b.Add(s[1])
	for i := 1; i <= rounds; i++ {
		a = a.Xor(b).RotateLeftBy(b).Add(s[2*i])
		b = b.Xor(a).RotateLeftBy(a).Add(s[2*i+1])
	}
	return a, b
}

// decryptBlock inverts encryptBlock, unwinding the rounds in reverse order.
func decryptBlock[W Word[W]](s []W, rounds int, a, b W) (W, W) {
	for i := rounds; i >= 1; i-- {
		b = b.Sub(s[2*i+1]).RotateRightBy(a).Xor(a)
		a = a.Sub(s[2*i]).RotateRightBy(b).Xor(b)
	}
	b = b.Sub(s[1])
	a = a.Sub(s[0])
	return a, b
}
