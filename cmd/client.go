package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
	"github.com/spf13/cobra"

	"block-lottery/config"
	pb "block-lottery/proto"
	"block-lottery/server"
)

var serverAddr string

func clientCmds() []*cobra.Command {
	cmds := []*cobra.Command{betCmd(), resolveCmd(), potCmd(), infoCmd(), headCmd(), balanceCmd(), pinCmd()}
	for _, c := range cmds {
		c.Flags().StringVar(&serverAddr, "server", "localhost:5300", "lottery service address")
	}
	return cmds
}

func withClient(run func(ctx context.Context, c *server.LotteryClient, args []string) (proto.Message, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		c, err := server.Dial(ctx, serverAddr)
		if err != nil {
			return err
		}
		defer c.Close()

		out, err := run(ctx, c, args)
		if err != nil {
			return err
		}
		m := jsonpb.Marshaler{Indent: "  ", OrigName: true, EmitDefaults: true}
		if err := m.Marshal(os.Stdout, out); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout)
		return nil
	}
}

func betCmd() *cobra.Command {
	var bettor, amount string
	cmd := &cobra.Command{
		Use:   "bet <challenge>",
		Short: "Place a wager on a two-hex-character challenge",
		Args:  cobra.ExactArgs(1),
		RunE: withClient(func(ctx context.Context, c *server.LotteryClient, args []string) (proto.Message, error) {
			wei, err := config.ParseEther(amount)
			if err != nil {
				return nil, err
			}
			return c.Bet(ctx, &pb.BetRequest{
				Bettor:    bettor,
				Challenge: args[0],
				Amount:    wei.ToBig().String(),
			})
		}),
	}
	cmd.Flags().StringVar(&bettor, "from", "", "bettor address")
	cmd.Flags().StringVar(&amount, "amount", "0.005", "attached value in ether")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Run a distribution pass without wagering",
		Args:  cobra.NoArgs,
		RunE: withClient(func(ctx context.Context, c *server.LotteryClient, _ []string) (proto.Message, error) {
			return c.Resolve(ctx)
		}),
	}
}

func potCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pot",
		Short: "Show the pot in wei",
		Args:  cobra.NoArgs,
		RunE: withClient(func(ctx context.Context, c *server.LotteryClient, _ []string) (proto.Message, error) {
			return c.GetPot(ctx)
		}),
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <index>",
		Short: "Show one recorded bet",
		Args:  cobra.ExactArgs(1),
		RunE: withClient(func(ctx context.Context, c *server.LotteryClient, args []string) (proto.Message, error) {
			index, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid index %q", args[0])
			}
			return c.GetBet(ctx, index)
		}),
	}
}

func headCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head",
		Short: "Show the ledger head, length, current block and rules",
		Args:  cobra.NoArgs,
		RunE: withClient(func(ctx context.Context, c *server.LotteryClient, _ []string) (proto.Message, error) {
			return c.GetHead(ctx)
		}),
	}
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Show the payouts credited to an address",
		Args:  cobra.ExactArgs(1),
		RunE: withClient(func(ctx context.Context, c *server.LotteryClient, args []string) (proto.Message, error) {
			return c.GetBalance(ctx, args[0])
		}),
	}
}

func pinCmd() *cobra.Command {
	var caller string
	cmd := &cobra.Command{
		Use:   "pin [answer]",
		Short: "Pin the answer hash for every lookup; no argument clears it",
		Args:  cobra.MaximumNArgs(1),
		RunE: withClient(func(ctx context.Context, c *server.LotteryClient, args []string) (proto.Message, error) {
			answer := ""
			if len(args) == 1 {
				answer = args[0]
			}
			return c.PinAnswer(ctx, caller, answer)
		}),
	}
	cmd.Flags().StringVar(&caller, "from", "", "owner address")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
