package lottery

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	DefaultBetBlockInterval = 3
	DefaultBlockLimit       = 256
)

// DefaultWagerAmount is 0.005 ether in wei.
var DefaultWagerAmount = uint256.NewInt(5_000_000_000_000_000)

// Challenge is the two hex characters a bettor guesses, packed in one byte.
type Challenge byte

func ParseChallenge(s string) (Challenge, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 2 {
		return 0, ErrInvalidChallenge
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return 0, ErrInvalidChallenge
	}
	return Challenge(b[0]), nil
}

func (c Challenge) String() string {
	return fmt.Sprintf("0x%02x", byte(c))
}

type Outcome uint8

const (
	Fail   Outcome = 0
	Win    Outcome = 1
	Draw   Outcome = 2
	Refund Outcome = 3 // expiry path only, never produced by Match
)

func (o Outcome) String() string {
	switch o {
	case Fail:
		return "fail"
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Refund:
		return "refund"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

type Bet struct {
	Bettor      common.Address
	Amount      *uint256.Int
	Challenge   Challenge
	TargetBlock uint64
	Resolved    bool
}

func (b Bet) clone() Bet {
	b.Amount = new(uint256.Int).Set(b.Amount)
	return b
}

// Resolution describes what happened to one bet during a distribution pass.
type Resolution struct {
	Index       uint64
	Bettor      common.Address
	Challenge   Challenge
	TargetBlock uint64
	Outcome     Outcome
	Answer      common.Hash // zero for refunds
	Payout      *uint256.Int
	PotAfter    *uint256.Int
}

// Receipt is returned to the submitter of a wager.
type Receipt struct {
	Index       uint64
	TargetBlock uint64
	Resolutions []Resolution
}

type BetStatus uint8

const (
	Pending BetStatus = iota
	Resolvable
	Expired
)

func (s BetStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Resolvable:
		return "resolvable"
	case Expired:
		return "expired"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

type Rules struct {
	WagerAmount      *uint256.Int
	BetBlockInterval uint64
	BlockLimit       uint64
	// MaxResolvePerPass caps the resolutions of one pass. Zero means no cap.
	MaxResolvePerPass int
}

func DefaultRules() Rules {
	return Rules{
		WagerAmount:      new(uint256.Int).Set(DefaultWagerAmount),
		BetBlockInterval: DefaultBetBlockInterval,
		BlockLimit:       DefaultBlockLimit,
	}
}

// Status classifies a bet by block numbers alone. A Resolvable bet may still
// turn out Expired if the block source cannot produce its hash.
func (r Rules) Status(b Bet, current uint64) BetStatus {
	if b.TargetBlock > current {
		return Pending
	}
	if current-b.TargetBlock > r.BlockLimit {
		return Expired
	}
	return Resolvable
}

type BlockSource interface {
	CurrentBlockNumber(ctx context.Context) (uint64, error)
	// HashOf returns the hash of block number as seen from block head, the
	// number the caller classified the bet against. It returns ErrUnavailable
	// when the hash is outside the retrievability window of head.
	HashOf(ctx context.Context, number, head uint64) (common.Hash, error)
}

// Vault opens value-transfer sessions. Nothing moves until Commit.
type Vault interface {
	Begin() Transfer
}

type Transfer interface {
	Receive(from common.Address, amount *uint256.Int) error
	Pay(to common.Address, amount *uint256.Int) error
	Commit()
	Discard()
}

// FormatEther renders a wei amount in ether.
func FormatEther(wei *uint256.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei.ToBig(), -18).String()
}
