package lottery

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Ledger is the append-only bet queue. head is the index of the next bet a
// distribution pass looks at; every bet below it is resolved.
type Ledger struct {
	wager    *uint256.Int
	interval uint64
	bets     []Bet
	head     uint64
}

func NewLedger(wager *uint256.Int, interval uint64) *Ledger {
	return &Ledger{
		wager:    new(uint256.Int).Set(wager),
		interval: interval,
	}
}

// Record appends an unresolved bet whose answer is the hash of the block
// interval blocks after currentBlock.
func (l *Ledger) Record(bettor common.Address, amount *uint256.Int, challenge Challenge, currentBlock uint64) (uint64, error) {
	if amount == nil || !amount.Eq(l.wager) {
		return 0, ErrInvalidAmount
	}

	l.bets = append(l.bets, Bet{
		Bettor:      bettor,
		Amount:      new(uint256.Int).Set(amount),
		Challenge:   challenge,
		TargetBlock: currentBlock + l.interval,
	})
	return uint64(len(l.bets) - 1), nil
}

func (l *Ledger) Get(index uint64) (Bet, error) {
	if index >= uint64(len(l.bets)) {
		return Bet{}, errors.Wrapf(ErrNotFound, "index %d, ledger length %d", index, len(l.bets))
	}
	return l.bets[index].clone(), nil
}

func (l *Ledger) Head() uint64 {
	return l.head
}

func (l *Ledger) Len() uint64 {
	return uint64(len(l.bets))
}

func (l *Ledger) at(index uint64) *Bet {
	return &l.bets[index]
}

func (l *Ledger) markResolved(index uint64) {
	l.bets[index].Resolved = true
}

func (l *Ledger) advanceTo(head uint64) {
	if head > l.head {
		l.head = head
	}
}

// dropLast removes a bet recorded by an operation that did not commit.
func (l *Ledger) dropLast(index uint64) {
	if index == uint64(len(l.bets))-1 {
		l.bets = l.bets[:index]
	}
}

func (l *Ledger) restore(bets []Bet, head uint64) {
	l.bets = bets
	l.head = head
}
