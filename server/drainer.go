package server

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"block-lottery/lottery"
)

// Drainer resolves the backlog between wagers: whenever the chain head moves
// it runs standalone distribution passes until the due bets are drained.
type Drainer struct {
	engine   *lottery.Engine
	source   lottery.BlockSource
	interval time.Duration
	last     uint64
}

func NewDrainer(engine *lottery.Engine, source lottery.BlockSource, interval time.Duration) *Drainer {
	return &Drainer{
		engine:   engine,
		source:   source,
		interval: interval,
	}
}

// Start polls until ctx is done.
func (d *Drainer) Start(ctx context.Context) {
	log.Printf("Drainer start, polling every %s", d.interval)
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Drainer stop")
			return
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

// Tick drains the queue if the head advanced since the last successful drain
// and returns the number of bets it resolved. Passes repeat while they hit
// the per-pass cap.
func (d *Drainer) Tick(ctx context.Context) int {
	current, err := d.source.CurrentBlockNumber(ctx)
	if err != nil {
		log.Printf("failed to get current block: %v", err)
		return 0
	}
	if current == d.last {
		return 0
	}

	limit := d.engine.Rules().MaxResolvePerPass
	total := 0
	for {
		res, err := d.engine.Resolve(ctx)
		if err != nil {
			log.Printf("failed to resolve bets: %v", err)
			return total
		}
		total += len(res)
		if limit == 0 || len(res) < limit || ctx.Err() != nil {
			break
		}
	}

	d.last = current
	if total > 0 {
		log.Printf("%d bets resolved at block %d", total, current)
	}
	return total
}
