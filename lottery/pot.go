package lottery

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Pot is the shared accumulator fed by failed bets and emptied by a win.
type Pot struct {
	balance *uint256.Int
}

func NewPot(balance *uint256.Int) *Pot {
	p := &Pot{balance: new(uint256.Int)}
	if balance != nil {
		p.balance.Set(balance)
	}
	return p
}

func (p *Pot) Current() *uint256.Int {
	return new(uint256.Int).Set(p.balance)
}

func (p *Pot) Credit(amount *uint256.Int) {
	p.balance.Add(p.balance, amount)
}

func (p *Pot) Debit(amount *uint256.Int) error {
	if p.balance.Lt(amount) {
		return errors.Wrapf(ErrInsufficientPot, "debit %s from %s", amount.ToBig(), p.balance.ToBig())
	}
	p.balance.Sub(p.balance, amount)
	return nil
}

func (p *Pot) Clone() *Pot {
	return NewPot(p.balance)
}
