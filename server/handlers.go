package server

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"block-lottery/bank"
	"block-lottery/chain"
	"block-lottery/lottery"
	pb "block-lottery/proto"
)

// lotteryServer adapts the engine to the RPC surface.
type lotteryServer struct {
	pb.UnimplementedLotteryServer

	engine *lottery.Engine
	source lottery.BlockSource
	book   *bank.Book

	// pinned is nil unless diagnostics are enabled.
	pinned *chain.Pinned
	owner  common.Address

	// devChain mines one block before each mutating call when set.
	devChain *chain.Simulated
}

func (s *lotteryServer) mine() {
	if s.devChain != nil {
		s.devChain.Mine(1)
	}
}

func (s *lotteryServer) Bet(ctx context.Context, in *pb.BetRequest) (*pb.BetResponse, error) {
	bettor, err := parseAddress(in.Bettor)
	if err != nil {
		return nil, err
	}
	challenge, err := lottery.ParseChallenge(in.Challenge)
	if err != nil {
		return nil, toStatus(errors.Wrapf(err, "challenge %q", in.Challenge))
	}
	amount, err := parseWei(in.Amount)
	if err != nil {
		return nil, toStatus(err)
	}

	s.mine()
	receipt, err := s.engine.Bet(ctx, bettor, challenge, amount)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BetResponse{
		Index:       receipt.Index,
		TargetBlock: receipt.TargetBlock,
		Resolutions: resolutionsToMsg(receipt.Resolutions),
	}, nil
}

func (s *lotteryServer) Resolve(ctx context.Context, _ *pb.ResolveRequest) (*pb.ResolveResponse, error) {
	s.mine()
	res, err := s.engine.Resolve(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ResolveResponse{Resolutions: resolutionsToMsg(res)}, nil
}

func (s *lotteryServer) GetPot(_ context.Context, _ *pb.GetPotRequest) (*pb.GetPotResponse, error) {
	return &pb.GetPotResponse{Pot: s.engine.Pot().ToBig().String()}, nil
}

func (s *lotteryServer) GetBet(_ context.Context, in *pb.GetBetRequest) (*pb.GetBetResponse, error) {
	b, err := s.engine.BetInfo(in.Index)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetBetResponse{
		Index:       in.Index,
		Bettor:      b.Bettor.Hex(),
		Amount:      b.Amount.ToBig().String(),
		Challenge:   b.Challenge.String(),
		TargetBlock: b.TargetBlock,
		Resolved:    b.Resolved,
	}, nil
}

func (s *lotteryServer) GetHead(ctx context.Context, _ *pb.GetHeadRequest) (*pb.GetHeadResponse, error) {
	current, err := s.source.CurrentBlockNumber(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	head, n := s.engine.Head()
	rules := s.engine.Rules()
	return &pb.GetHeadResponse{
		Head:             head,
		Len:              n,
		CurrentBlock:     current,
		WagerAmount:      rules.WagerAmount.ToBig().String(),
		BetBlockInterval: rules.BetBlockInterval,
		BlockLimit:       rules.BlockLimit,
	}, nil
}

func (s *lotteryServer) GetBalance(_ context.Context, in *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	addr, err := parseAddress(in.Address)
	if err != nil {
		return nil, err
	}
	return &pb.GetBalanceResponse{Balance: s.book.Balance(addr).ToBig().String()}, nil
}

func (s *lotteryServer) PinAnswer(_ context.Context, in *pb.PinAnswerRequest) (*pb.PinAnswerResponse, error) {
	if s.pinned == nil {
		return nil, toStatus(errors.Wrap(ErrDiagnosticsDenied, "diagnostics are disabled"))
	}
	caller, err := parseAddress(in.Caller)
	if err != nil {
		return nil, err
	}
	if s.owner == (common.Address{}) || caller != s.owner {
		log.WithField("caller", caller.Hex()).Warn("pin answer refused")
		return nil, toStatus(errors.Wrapf(ErrDiagnosticsDenied, "%s is not the owner", caller.Hex()))
	}

	s.mine()
	if in.Answer == "" {
		s.pinned.Unpin()
		log.WithField("caller", caller.Hex()).Info("answer unpinned")
		return &pb.PinAnswerResponse{Pinned: false}, nil
	}

	raw, err := hexutil.Decode(in.Answer)
	if err != nil || len(raw) != common.HashLength {
		return nil, status.Errorf(codes.InvalidArgument, "answer must be a 32-byte 0x hex hash")
	}
	answer := common.BytesToHash(raw)
	s.pinned.Pin(answer)
	log.WithFields(log.Fields{
		"caller": caller.Hex(),
		"answer": answer.Hex(),
	}).Info("answer pinned")
	return &pb.PinAnswerResponse{Pinned: true}, nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, status.Errorf(codes.InvalidArgument, "invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

func parseWei(s string) (*uint256.Int, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return nil, errors.Wrapf(lottery.ErrInvalidAmount, "amount %q", s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, errors.Wrapf(lottery.ErrInvalidAmount, "amount %q", s)
	}
	return v, nil
}

func resolutionsToMsg(in []lottery.Resolution) []*pb.Resolution {
	if len(in) == 0 {
		return nil
	}
	out := make([]*pb.Resolution, 0, len(in))
	for _, r := range in {
		msg := &pb.Resolution{
			Index:       r.Index,
			Bettor:      r.Bettor.Hex(),
			Challenge:   r.Challenge.String(),
			TargetBlock: r.TargetBlock,
			Outcome:     r.Outcome.String(),
			Payout:      r.Payout.ToBig().String(),
			PotAfter:    r.PotAfter.ToBig().String(),
		}
		if r.Outcome != lottery.Refund {
			msg.Answer = r.Answer.Hex()
		}
		out = append(out, msg)
	}
	return out
}
