//go:build linux

package posixsignal

import "golang.org/x/sys/unix"

// addSignal sets sig's bit in set. unix.Sigset_t on linux is a fixed-size
// bitmap (Val [16]uint64); signal numbers are 1-indexed.
func addSignal(set *unix.Sigset_t, sig int) {
	bit := uint(sig - 1)
	set.Val[bit/64] |= 1 << (bit % 64)
}
