package server

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"block-lottery/bank"
	"block-lottery/chain"
	"block-lottery/config"
	"block-lottery/lottery"
	"block-lottery/lottery/store"
	pb "block-lottery/proto"
)

const (
	owner   = "0x00000000000000000000000000000000000000f0"
	user1   = "0x00000000000000000000000000000000000000a1"
	user2   = "0x00000000000000000000000000000000000000b2"
	wager   = "5000000000000000"
	fixture = "0xab17b7e54b0ee749f38a478df0f485fc8a99c6aaa8d2aae379a09827aeb5301e"
)

func testConfig() *config.LotteryConfig {
	return &config.LotteryConfig{
		StoreBackend:       "memory",
		DiagnosticsEnabled: true,
		OwnerAddress:       owner,
	}
}

func startService(t *testing.T, conf *config.LotteryConfig) (*LotteryService, *LotteryClient) {
	t.Helper()
	ctx := context.Background()

	svc, err := NewLotteryService(ctx, conf, lottery.DefaultRules())
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = svc.Serve(lis)
	}()

	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}
	client, err := Dial(ctx, "bufnet", grpc.WithContextDialer(dialer))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
		svc.Stop()
		<-done
	})
	return svc, client
}

func TestSeventhWagerPaysTheWinnerOverRPC(t *testing.T) {
	_, client := startService(t, testConfig())
	ctx := context.Background()

	_, err := client.PinAnswer(ctx, owner, fixture)
	require.NoError(t, err)

	for _, b := range []struct{ bettor, challenge string }{
		{user2, "0xef"},
		{user2, "0xef"},
		{user2, "0xa0"},
		{user1, "0xab"},
		{user2, "0xef"},
		{user2, "0xef"},
	} {
		_, err := client.Bet(ctx, &pb.BetRequest{Bettor: b.bettor, Challenge: b.challenge, Amount: wager})
		require.NoError(t, err)
	}

	pot, err := client.GetPot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000", pot.Pot)

	resp, err := client.Bet(ctx, &pb.BetRequest{Bettor: user2, Challenge: "0xef", Amount: wager})
	require.NoError(t, err)
	require.Len(t, resp.Resolutions, 1)
	assert.Equal(t, "win", resp.Resolutions[0].Outcome)
	assert.Equal(t, common.HexToAddress(user1).Hex(), resp.Resolutions[0].Bettor)
	assert.Equal(t, fixture, resp.Resolutions[0].Answer)

	balance, err := client.GetBalance(ctx, user1)
	require.NoError(t, err)
	assert.Equal(t, "15000000000000000", balance.Balance)

	pot, err = client.GetPot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0", pot.Pot)

	info, err := client.GetBet(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(user1).Hex(), info.Bettor)
	assert.Equal(t, "0xab", info.Challenge)
	assert.True(t, info.Resolved)

	head, err := client.GetHead(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), head.Len)
	assert.Equal(t, uint64(4), head.Head)
	assert.Equal(t, uint64(8), head.CurrentBlock)
	assert.Equal(t, wager, head.WagerAmount)
}

func TestBetErrorsOverRPC(t *testing.T) {
	_, client := startService(t, testConfig())
	ctx := context.Background()

	_, err := client.Bet(ctx, &pb.BetRequest{Bettor: user1, Challenge: "0xab", Amount: "1"})
	assert.ErrorIs(t, err, lottery.ErrInvalidAmount)

	_, err = client.Bet(ctx, &pb.BetRequest{Bettor: user1, Challenge: "0xab", Amount: "-5"})
	assert.ErrorIs(t, err, lottery.ErrInvalidAmount)

	_, err = client.Bet(ctx, &pb.BetRequest{Bettor: user1, Challenge: "0xabc", Amount: wager})
	assert.ErrorIs(t, err, lottery.ErrInvalidChallenge)

	_, err = client.Bet(ctx, &pb.BetRequest{Bettor: "nobody", Challenge: "0xab", Amount: wager})
	assert.Error(t, err)

	_, err = client.GetBet(ctx, 0)
	assert.ErrorIs(t, err, lottery.ErrNotFound)

	head, err := client.GetHead(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), head.Len)
}

func TestStatusCarriesErrorInfo(t *testing.T) {
	err := toStatus(errors.Wrap(store.ErrStaleState, "bet 4"))
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
	require.Len(t, st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	require.True(t, ok)
	assert.Equal(t, "STALE_STATE", info.Reason)
	assert.Equal(t, "lottery", info.Domain)
	assert.ErrorIs(t, FromStatus(err), store.ErrStaleState)

	err = toStatus(errors.New("node down"))
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Equal(t, err, FromStatus(err))
}

func TestPinAnswerPermissions(t *testing.T) {
	t.Run("not owner", func(t *testing.T) {
		_, client := startService(t, testConfig())
		_, err := client.PinAnswer(context.Background(), user1, fixture)
		assert.ErrorIs(t, err, ErrDiagnosticsDenied)
	})

	t.Run("diagnostics disabled", func(t *testing.T) {
		conf := testConfig()
		conf.DiagnosticsEnabled = false
		_, client := startService(t, conf)
		_, err := client.PinAnswer(context.Background(), owner, fixture)
		assert.ErrorIs(t, err, ErrDiagnosticsDenied)
	})

	t.Run("malformed answer", func(t *testing.T) {
		_, client := startService(t, testConfig())
		_, err := client.PinAnswer(context.Background(), owner, "0xab")
		assert.Error(t, err)
	})

	t.Run("unpin", func(t *testing.T) {
		_, client := startService(t, testConfig())
		resp, err := client.PinAnswer(context.Background(), owner, "")
		require.NoError(t, err)
		assert.False(t, resp.Pinned)
	})
}

func TestDiagnosticsNeedOwner(t *testing.T) {
	conf := testConfig()
	conf.OwnerAddress = ""
	_, err := NewLotteryService(context.Background(), conf, lottery.DefaultRules())
	assert.Error(t, err)
}

func TestUnknownStoreBackend(t *testing.T) {
	conf := testConfig()
	conf.StoreBackend = "postgres"
	_, err := NewLotteryService(context.Background(), conf, lottery.DefaultRules())
	assert.Error(t, err)
}

func TestLevelDBRestartThenWinOverRPC(t *testing.T) {
	conf := testConfig()
	conf.StoreBackend = "leveldb"
	conf.LevelDBPath = filepath.Join(t.TempDir(), "lottery")
	ctx := context.Background()

	svc, client := startService(t, conf)
	_, err := client.PinAnswer(ctx, owner, fixture)
	require.NoError(t, err)
	for _, b := range []struct{ bettor, challenge string }{
		{user2, "0xef"},
		{user2, "0xef"},
		{user2, "0xef"},
		{user1, "0xab"},
		{user2, "0xef"},
		{user2, "0xef"},
	} {
		_, err := client.Bet(ctx, &pb.BetRequest{Bettor: b.bettor, Challenge: b.challenge, Amount: wager})
		require.NoError(t, err)
	}
	pot, err := client.GetPot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "15000000000000000", pot.Pot)
	svc.Stop()

	svc, client = startService(t, conf)
	assert.Equal(t, "30000000000000000", svc.Book().House().ToBig().String())

	info, err := client.GetBet(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(user1).Hex(), info.Bettor)
	assert.False(t, info.Resolved)

	head, err := client.GetHead(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), head.CurrentBlock, "dev chain fast-forwarded to the last bet")
	assert.Equal(t, uint64(3), head.Head)

	_, err = client.PinAnswer(ctx, owner, fixture)
	require.NoError(t, err)
	resp, err := client.Bet(ctx, &pb.BetRequest{Bettor: user2, Challenge: "0xef", Amount: wager})
	require.NoError(t, err)
	require.Len(t, resp.Resolutions, 2)
	assert.Equal(t, "win", resp.Resolutions[0].Outcome)
	assert.Equal(t, "fail", resp.Resolutions[1].Outcome)

	balance, err := client.GetBalance(ctx, user1)
	require.NoError(t, err)
	assert.Equal(t, "20000000000000000", balance.Balance)
}

func TestDrainerResolvesWhenHeadAdvances(t *testing.T) {
	ctx := context.Background()
	sim := chain.NewSimulated(lottery.DefaultBlockLimit, common.Hash{})
	pinned := chain.NewPinned(sim)
	pinned.Pin(common.HexToHash(fixture))
	book := bank.NewBook()
	engine := lottery.NewEngine(lottery.DefaultRules(), pinned, book, store.NewMemoryStore())

	c, err := lottery.ParseChallenge("0xab")
	require.NoError(t, err)
	sim.Mine(1)
	_, err = engine.Bet(ctx, common.HexToAddress(user1), c, lottery.DefaultWagerAmount)
	require.NoError(t, err)

	d := NewDrainer(engine, pinned, time.Millisecond)
	assert.Equal(t, 0, d.Tick(ctx), "answer block not mined")

	sim.Mine(3)
	assert.Equal(t, 1, d.Tick(ctx))
	assert.Equal(t, 0, d.Tick(ctx), "head did not move")

	head, n := engine.Head()
	assert.Equal(t, n, head)
	assert.Equal(t, wager, book.Balance(common.HexToAddress(user1)).ToBig().String())
}

func TestDrainerRepeatsCappedPasses(t *testing.T) {
	ctx := context.Background()
	sim := chain.NewSimulated(lottery.DefaultBlockLimit, common.Hash{})
	pinned := chain.NewPinned(sim)
	pinned.Pin(common.HexToHash(fixture))
	rules := lottery.DefaultRules()
	rules.MaxResolvePerPass = 2
	engine := lottery.NewEngine(rules, pinned, bank.NewBook(), store.NewMemoryStore())

	c, err := lottery.ParseChallenge("0xef")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := engine.Bet(ctx, common.HexToAddress(user2), c, lottery.DefaultWagerAmount)
		require.NoError(t, err)
	}
	sim.Mine(int(rules.BetBlockInterval))

	d := NewDrainer(engine, pinned, time.Millisecond)
	assert.Equal(t, 5, d.Tick(ctx))
	head, n := engine.Head()
	assert.Equal(t, uint64(5), n)
	assert.Equal(t, n, head)
}

func TestDrainerStopsWithContext(t *testing.T) {
	sim := chain.NewSimulated(lottery.DefaultBlockLimit, common.Hash{})
	engine := lottery.NewEngine(lottery.DefaultRules(), sim, bank.NewBook(), store.NewMemoryStore())
	d := NewDrainer(engine, sim, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Start(ctx)
	}()
	sim.Mine(2)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("drainer did not stop")
	}
}
