package server

import (
	"context"
	"crypto/rand"
	"net"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"block-lottery/bank"
	"block-lottery/chain"
	"block-lottery/config"
	"block-lottery/lottery"
	"block-lottery/lottery/store"
	pb "block-lottery/proto"
)

// LotteryService wires the store, the block source, the bank and the engine
// behind a gRPC server.
type LotteryService struct {
	conf    *config.LotteryConfig
	engine  *lottery.Engine
	book    *bank.Book
	store   store.Store
	server  *grpc.Server
	drainer *Drainer
	closers []func()
}

func NewLotteryService(ctx context.Context, conf *config.LotteryConfig, rules lottery.Rules) (*LotteryService, error) {
	log.Println("Lottery service init...")

	s := &LotteryService{conf: conf, book: bank.NewBook()}

	st, err := openStore(conf)
	if err != nil {
		return nil, err
	}
	s.store = st
	s.closers = append(s.closers, func() { _ = st.Close() })

	impl := &lotteryServer{book: s.book}
	var source lottery.BlockSource
	if conf.EthRPCURL == "" {
		var genesis common.Hash
		if _, err := rand.Read(genesis[:]); err != nil {
			s.Close()
			return nil, errors.Wrap(err, "failed to seed dev chain")
		}
		sim := chain.NewSimulated(rules.BlockLimit, genesis)
		impl.devChain = sim
		source = sim
		log.Println("Using simulated dev chain, one block per transaction")
	} else {
		eth, err := chain.DialEthereum(ctx, conf.EthRPCURL, rules.BlockLimit)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, eth.Close)
		source = eth
		log.Println("Block source init:", conf.EthRPCURL)
	}

	if conf.DiagnosticsEnabled {
		if !common.IsHexAddress(conf.OwnerAddress) {
			s.Close()
			return nil, errors.Errorf("DIAGNOSTICS_ENABLED requires a valid OWNER_ADDRESS, got %q", conf.OwnerAddress)
		}
		impl.pinned = chain.NewPinned(source)
		impl.owner = common.HexToAddress(conf.OwnerAddress)
		source = impl.pinned
		log.Warn("diagnostics enabled: the owner can pin block answers")
	}
	impl.source = source

	s.engine = lottery.NewEngine(rules, source, s.book, st)
	if err := s.engine.Restore(ctx); err != nil {
		s.Close()
		return nil, err
	}
	impl.engine = s.engine
	if impl.devChain != nil {
		fastForward(impl.devChain, s.engine)
	}

	if conf.ResolveIntervalMs > 0 {
		s.drainer = NewDrainer(s.engine, source, time.Duration(conf.ResolveIntervalMs)*time.Millisecond)
	}

	s.server = grpc.NewServer(withServerUnaryInterceptor())
	pb.RegisterLotteryServer(s.server, impl)

	return s, nil
}

// fastForward mines a fresh dev chain up to the block the newest restored bet
// was placed at, so restored target blocks are not in the chain's far future.
func fastForward(sim *chain.Simulated, engine *lottery.Engine) {
	_, n := engine.Head()
	if n == 0 {
		return
	}
	last, err := engine.BetInfo(n - 1)
	if err != nil {
		return
	}
	interval := engine.Rules().BetBlockInterval
	if last.TargetBlock < interval {
		return
	}
	placed := last.TargetBlock - interval
	cur, _ := sim.CurrentBlockNumber(context.Background())
	if cur < placed {
		sim.Mine(int(placed - cur))
		log.Printf("dev chain fast-forwarded to block %d", placed)
	}
}

func openStore(conf *config.LotteryConfig) (store.Store, error) {
	switch conf.StoreBackend {
	case "", "memory":
		log.Println("Using in-memory store")
		return store.NewMemoryStore(), nil
	case "redis":
		return store.NewRedisStore(store.RedisOptions{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
			Prefix:   conf.RedisPrefix,
		})
	case "leveldb":
		return store.NewLevelDBStore(conf.LevelDBPath)
	}
	return nil, errors.Errorf("unknown STORE_BACKEND %q", conf.StoreBackend)
}

func (s *LotteryService) Engine() *lottery.Engine {
	return s.engine
}

func (s *LotteryService) Book() *bank.Book {
	return s.book
}

// Serve blocks serving lis. The drainer, if configured, runs until Serve
// returns.
func (s *LotteryService) Serve(lis net.Listener) error {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	if s.drainer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.drainer.Start(ctx)
		}()
	}

	log.Printf("Lottery service listening on %s", lis.Addr())
	err := s.server.Serve(lis)
	cancel()
	wg.Wait()
	return err
}

func (s *LotteryService) Run() error {
	lis, err := net.Listen("tcp", s.conf.ListenAddr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.conf.ListenAddr)
	}
	return s.Serve(lis)
}

// Stop drains in-flight calls and releases the store and the node client.
func (s *LotteryService) Stop() {
	if s.server != nil {
		s.server.GracefulStop()
	}
	s.Close()
}

func (s *LotteryService) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
