package lottery

import "github.com/ethereum/go-ethereum/common"

// Match scores a challenge against the first byte of the answer hash. Each
// nibble is one hex character of the hash string and is compared on its own.
func Match(c Challenge, answer common.Hash) Outcome {
	high := byte(c)>>4 == answer[0]>>4
	low := byte(c)&0x0f == answer[0]&0x0f

	switch {
	case high && low:
		return Win
	case high || low:
		return Draw
	default:
		return Fail
	}
}
