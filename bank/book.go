package bank

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"block-lottery/lottery"
)

var (
	ErrRecipientRejected = errors.New("recipient rejects payments")
	ErrInsufficientHouse = errors.New("house balance too low for payout")
)

// Book is an in-memory value-transfer sink. The house account holds every
// wager received; payouts move value from the house to bettor credit.
type Book struct {
	mu       sync.RWMutex
	house    *uint256.Int
	credit   map[common.Address]*uint256.Int
	rejects  map[common.Address]bool
	received *uint256.Int
	paid     *uint256.Int
}

func NewBook() *Book {
	return &Book{
		house:    new(uint256.Int),
		credit:   make(map[common.Address]*uint256.Int),
		rejects:  make(map[common.Address]bool),
		received: new(uint256.Int),
		paid:     new(uint256.Int),
	}
}

// Reject makes every payout to addr fail, as a recipient that cannot accept
// value would.
func (b *Book) Reject(addr common.Address, reject bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if reject {
		b.rejects[addr] = true
	} else {
		delete(b.rejects, addr)
	}
}

func (b *Book) Balance(addr common.Address) *uint256.Int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if c, ok := b.credit[addr]; ok {
		return new(uint256.Int).Set(c)
	}
	return new(uint256.Int)
}

func (b *Book) House() *uint256.Int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return new(uint256.Int).Set(b.house)
}

// Totals returns everything ever received and everything ever paid out.
func (b *Book) Totals() (received, paid *uint256.Int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return new(uint256.Int).Set(b.received), new(uint256.Int).Set(b.paid)
}

func (b *Book) Begin() lottery.Transfer {
	return &session{
		book:    b,
		overlay: make(map[common.Address]*uint256.Int),
		in:      new(uint256.Int),
		out:     new(uint256.Int),
	}
}

// session stages movements against the book and applies them on Commit.
type session struct {
	book    *Book
	overlay map[common.Address]*uint256.Int
	in      *uint256.Int
	out     *uint256.Int
	done    bool
}

func (s *session) houseAfter() *uint256.Int {
	s.book.mu.RLock()
	h := new(uint256.Int).Add(s.book.house, s.in)
	s.book.mu.RUnlock()
	return h.Sub(h, s.out)
}

func (s *session) Receive(_ common.Address, amount *uint256.Int) error {
	if s.done {
		return errors.New("transfer session already closed")
	}
	s.in.Add(s.in, amount)
	return nil
}

func (s *session) Pay(to common.Address, amount *uint256.Int) error {
	if s.done {
		return errors.New("transfer session already closed")
	}

	s.book.mu.RLock()
	rejected := s.book.rejects[to]
	s.book.mu.RUnlock()
	if rejected {
		return errors.Wrapf(ErrRecipientRejected, "recipient %s", to.Hex())
	}
	if s.houseAfter().Lt(amount) {
		return ErrInsufficientHouse
	}

	staged, ok := s.overlay[to]
	if !ok {
		staged = new(uint256.Int)
		s.overlay[to] = staged
	}
	staged.Add(staged, amount)
	s.out.Add(s.out, amount)
	return nil
}

func (s *session) Commit() {
	if s.done {
		return
	}
	s.done = true

	b := s.book
	b.mu.Lock()
	defer b.mu.Unlock()

	b.house.Add(b.house, s.in)
	b.house.Sub(b.house, s.out)
	b.received.Add(b.received, s.in)
	b.paid.Add(b.paid, s.out)
	for addr, amount := range s.overlay {
		c, ok := b.credit[addr]
		if !ok {
			c = new(uint256.Int)
			b.credit[addr] = c
		}
		c.Add(c, amount)
	}
}

func (s *session) Discard() {
	s.done = true
	s.overlay = nil
}
