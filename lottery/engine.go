package lottery

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"block-lottery/lottery/store"
)

// Engine owns the ledger and the pot and runs the distribution passes. Every
// operation holds mu from start to finish.
type Engine struct {
	mu     sync.Mutex
	rules  Rules
	ledger *Ledger
	pot    *Pot
	source BlockSource
	vault  Vault
	store  store.Store
}

func NewEngine(rules Rules, source BlockSource, vault Vault, st store.Store) *Engine {
	return &Engine{
		rules:  rules,
		ledger: NewLedger(rules.WagerAmount, rules.BetBlockInterval),
		pot:    NewPot(nil),
		source: source,
		vault:  vault,
		store:  st,
	}
}

func (e *Engine) Rules() Rules {
	return e.rules
}

// Restore replaces the in-memory ledger and pot with the stored state and
// deposits the value that state holds (the pot plus every unresolved wager)
// into the vault, which is expected to be fresh.
func (e *Engine) Restore(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.load(ctx); err != nil {
		return err
	}

	held := e.heldValue()
	if !held.IsZero() {
		tr := e.vault.Begin()
		if err := tr.Receive(common.Address{}, held); err != nil {
			tr.Discard()
			return errors.Wrapf(ErrTransferFailure, "re-deposit %s held by the restored ledger: %v", FormatEther(held), err)
		}
		tr.Commit()
	}

	head, n := e.ledger.Head(), e.ledger.Len()
	log.Printf("lottery state restored: %d bets, head %d, pot %s, held %s",
		n, head, FormatEther(e.pot.Current()), FormatEther(held))
	return nil
}

// Held returns the value the lottery owes: the pot plus every unresolved
// wager.
func (e *Engine) Held() *uint256.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.heldValue()
}

func (e *Engine) heldValue() *uint256.Int {
	held := e.pot.Current()
	for i := e.ledger.Head(); i < e.ledger.Len(); i++ {
		if b := e.ledger.at(i); !b.Resolved {
			held.Add(held, b.Amount)
		}
	}
	return held
}

func (e *Engine) load(ctx context.Context) error {
	snap, err := e.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load lottery state")
	}

	bets := make([]Bet, 0, len(snap.Records))
	for i, rec := range snap.Records {
		b, err := betFromRecord(rec)
		if err != nil {
			return errors.Wrapf(err, "bet record %d", i)
		}
		bets = append(bets, b)
	}
	pot, err := parseAmount(snap.Pot)
	if err != nil {
		return errors.Wrap(err, "pot")
	}
	if snap.Cursor > uint64(len(bets)) {
		return errors.Errorf("stored cursor %d beyond ledger length %d", snap.Cursor, len(bets))
	}

	e.ledger.restore(bets, snap.Cursor)
	e.pot = NewPot(pot)
	return nil
}

// resync reloads the stored state after another writer moved it.
func (e *Engine) resync(ctx context.Context, cause error) {
	if !errors.Is(cause, store.ErrStaleState) {
		return
	}
	if err := e.load(ctx); err != nil {
		log.WithError(err).Error("failed to reload lottery state after a concurrent write")
		return
	}
	log.Warn("lottery state changed in the store, reloaded")
}

// Bet accepts a wager, records it and runs one distribution pass. On any
// failure the ledger, the pot and the store are left as they were.
func (e *Engine) Bet(ctx context.Context, bettor common.Address, challenge Challenge, attached *uint256.Int) (*Receipt, error) {
	if attached == nil || !attached.Eq(e.rules.WagerAmount) {
		return nil, ErrInvalidAmount
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.source.CurrentBlockNumber(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read current block")
	}

	tr := e.vault.Begin()
	if err := tr.Receive(bettor, attached); err != nil {
		tr.Discard()
		return nil, errors.Wrapf(ErrTransferFailure, "receive wager from %s: %v", bettor.Hex(), err)
	}

	baseLen := e.ledger.Len()
	index, err := e.ledger.Record(bettor, attached, challenge, current)
	if err != nil {
		tr.Discard()
		return nil, err
	}

	s, err := e.distribute(ctx, tr, current)
	if err == nil {
		err = e.commit(ctx, tr, s, baseLen)
	}
	if err != nil {
		tr.Discard()
		e.ledger.dropLast(index)
		e.resync(ctx, err)
		return nil, err
	}

	b := e.ledger.at(index)
	log.WithFields(log.Fields{
		"index":     index,
		"bettor":    bettor.Hex(),
		"challenge": challenge.String(),
		"target":    b.TargetBlock,
	}).Info("bet placed")

	return &Receipt{
		Index:       index,
		TargetBlock: b.TargetBlock,
		Resolutions: s.resolutions,
	}, nil
}

// Resolve runs one distribution pass without a new wager.
func (e *Engine) Resolve(ctx context.Context) ([]Resolution, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.source.CurrentBlockNumber(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read current block")
	}

	tr := e.vault.Begin()
	s, err := e.distribute(ctx, tr, current)
	if err == nil {
		err = e.commit(ctx, tr, s, e.ledger.Len())
	}
	if err != nil {
		tr.Discard()
		e.resync(ctx, err)
		return nil, err
	}
	return s.resolutions, nil
}

func (e *Engine) Pot() *uint256.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pot.Current()
}

func (e *Engine) BetInfo(index uint64) (Bet, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Get(index)
}

// Head returns the cursor and the ledger length.
func (e *Engine) Head() (uint64, uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Head(), e.ledger.Len()
}

// settlement is the staged result of a pass. Nothing in it is visible until
// commit.
type settlement struct {
	head        uint64
	pot         *Pot
	resolutions []Resolution
}

func (e *Engine) distribute(ctx context.Context, tr Transfer, current uint64) (*settlement, error) {
	s := &settlement{
		head: e.ledger.Head(),
		pot:  e.pot.Clone(),
	}

	for s.head < e.ledger.Len() {
		if e.rules.MaxResolvePerPass > 0 && len(s.resolutions) >= e.rules.MaxResolvePerPass {
			break
		}

		b := e.ledger.at(s.head)
		if b.Resolved {
			s.head++
			continue
		}

		status := e.rules.Status(*b, current)
		if status == Pending {
			break
		}

		var answer common.Hash
		if status == Resolvable {
			hash, err := e.source.HashOf(ctx, b.TargetBlock, current)
			switch {
			case errors.Is(err, ErrUnavailable):
				status = Expired
			case err != nil:
				return nil, errors.Wrapf(err, "failed to fetch hash of block %d", b.TargetBlock)
			default:
				answer = hash
			}
		}

		res, err := e.settle(tr, s.pot, s.head, b, status, answer)
		if err != nil {
			return nil, err
		}
		s.resolutions = append(s.resolutions, res)
		s.head++
	}

	return s, nil
}

// settle applies the payout rule of one bet to the staged pot and transfer.
func (e *Engine) settle(tr Transfer, pot *Pot, index uint64, b *Bet, status BetStatus, answer common.Hash) (Resolution, error) {
	res := Resolution{
		Index:       index,
		Bettor:      b.Bettor,
		Challenge:   b.Challenge,
		TargetBlock: b.TargetBlock,
		Payout:      new(uint256.Int),
	}

	if status == Expired {
		res.Outcome = Refund
		res.Payout.Set(b.Amount)
	} else {
		res.Answer = answer
		res.Outcome = Match(b.Challenge, answer)

		switch res.Outcome {
		case Win:
			prize := pot.Current()
			if err := pot.Debit(prize); err != nil {
				log.WithField("index", index).Errorf("pot invariant violated: %v", err)
				return res, err
			}
			res.Payout.Add(b.Amount, prize)
		case Draw:
			res.Payout.Set(b.Amount)
		case Fail:
			pot.Credit(b.Amount)
		}
	}

	if !res.Payout.IsZero() {
		if err := tr.Pay(b.Bettor, res.Payout); err != nil {
			return res, errors.Wrapf(ErrTransferFailure, "pay %s to %s for bet %d: %v",
				FormatEther(res.Payout), b.Bettor.Hex(), index, err)
		}
	}
	res.PotAfter = pot.Current()
	return res, nil
}

// commit persists the pass, releases the staged transfers and finally
// applies the pass to memory.
func (e *Engine) commit(ctx context.Context, tr Transfer, s *settlement, baseLen uint64) error {
	resolvedAt := make(map[uint64]bool, len(s.resolutions))
	for _, res := range s.resolutions {
		resolvedAt[res.Index] = true
	}

	cp := &store.Checkpoint{
		BaseLen:    baseLen,
		BaseCursor: e.ledger.Head(),
		BasePot:    e.pot.Current().ToBig().String(),
		Cursor:     s.head,
		Pot:        s.pot.Current().ToBig().String(),
	}
	for i := baseLen; i < e.ledger.Len(); i++ {
		b := *e.ledger.at(i)
		b.Resolved = b.Resolved || resolvedAt[i]
		cp.Appended = append(cp.Appended, recordFromBet(i, b))
	}
	for _, res := range s.resolutions {
		if res.Index < baseLen {
			b := *e.ledger.at(res.Index)
			b.Resolved = true
			cp.Resolved = append(cp.Resolved, recordFromBet(res.Index, b))
		}
	}

	if len(cp.Appended) == 0 && len(cp.Resolved) == 0 && s.head == e.ledger.Head() {
		tr.Commit()
		return nil
	}
	if err := e.store.Commit(ctx, cp); err != nil {
		return errors.Wrap(err, "failed to persist checkpoint")
	}
	tr.Commit()

	for _, res := range s.resolutions {
		e.ledger.markResolved(res.Index)
		log.WithFields(log.Fields{
			"index":   res.Index,
			"bettor":  res.Bettor.Hex(),
			"outcome": res.Outcome.String(),
			"payout":  FormatEther(res.Payout),
			"pot":     FormatEther(res.PotAfter),
		}).Info("bet resolved")
	}
	e.ledger.advanceTo(s.head)
	e.pot = s.pot
	return nil
}

func recordFromBet(index uint64, b Bet) store.Record {
	return store.Record{
		Index:       index,
		Bettor:      b.Bettor.Hex(),
		Amount:      b.Amount.ToBig().String(),
		Challenge:   b.Challenge.String(),
		TargetBlock: b.TargetBlock,
		Resolved:    b.Resolved,
	}
}

func betFromRecord(rec store.Record) (Bet, error) {
	if !common.IsHexAddress(rec.Bettor) {
		return Bet{}, errors.Errorf("invalid bettor address %q", rec.Bettor)
	}
	amount, err := parseAmount(rec.Amount)
	if err != nil {
		return Bet{}, err
	}
	challenge, err := ParseChallenge(rec.Challenge)
	if err != nil {
		return Bet{}, err
	}
	return Bet{
		Bettor:      common.HexToAddress(rec.Bettor),
		Amount:      amount,
		Challenge:   challenge,
		TargetBlock: rec.TargetBlock,
		Resolved:    rec.Resolved,
	}, nil
}

func parseAmount(s string) (*uint256.Int, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return nil, errors.Errorf("invalid amount %q", s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, errors.Errorf("amount %q overflows 256 bits", s)
	}
	return v, nil
}
