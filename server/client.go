package server

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "block-lottery/proto"
)

// LotteryClient calls the lottery service. Errors come back through
// FromStatus, so errors.Is works against the lottery sentinels.
type LotteryClient struct {
	api  pb.LotteryClient
	conn *grpc.ClientConn
}

// DialOptions returns the options every client connection needs.
func DialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		withClientUnaryInterceptor(),
	}
}

func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*LotteryClient, error) {
	conn, err := grpc.DialContext(ctx, addr, append(DialOptions(), opts...)...)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to dial %s", addr)
	}
	return &LotteryClient{api: pb.NewLotteryClient(conn), conn: conn}, nil
}

func NewLotteryClient(cc grpc.ClientConnInterface) *LotteryClient {
	return &LotteryClient{api: pb.NewLotteryClient(cc)}
}

func (c *LotteryClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *LotteryClient) Bet(ctx context.Context, in *pb.BetRequest) (*pb.BetResponse, error) {
	resp, err := c.api.Bet(ctx, in)
	return resp, FromStatus(err)
}

func (c *LotteryClient) Resolve(ctx context.Context) (*pb.ResolveResponse, error) {
	resp, err := c.api.Resolve(ctx, &pb.ResolveRequest{})
	return resp, FromStatus(err)
}

func (c *LotteryClient) GetPot(ctx context.Context) (*pb.GetPotResponse, error) {
	resp, err := c.api.GetPot(ctx, &pb.GetPotRequest{})
	return resp, FromStatus(err)
}

func (c *LotteryClient) GetBet(ctx context.Context, index uint64) (*pb.GetBetResponse, error) {
	resp, err := c.api.GetBet(ctx, &pb.GetBetRequest{Index: index})
	return resp, FromStatus(err)
}

func (c *LotteryClient) GetHead(ctx context.Context) (*pb.GetHeadResponse, error) {
	resp, err := c.api.GetHead(ctx, &pb.GetHeadRequest{})
	return resp, FromStatus(err)
}

func (c *LotteryClient) GetBalance(ctx context.Context, address string) (*pb.GetBalanceResponse, error) {
	resp, err := c.api.GetBalance(ctx, &pb.GetBalanceRequest{Address: address})
	return resp, FromStatus(err)
}

func (c *LotteryClient) PinAnswer(ctx context.Context, caller, answer string) (*pb.PinAnswerResponse, error) {
	resp, err := c.api.PinAnswer(ctx, &pb.PinAnswerRequest{Caller: caller, Answer: answer})
	return resp, FromStatus(err)
}
