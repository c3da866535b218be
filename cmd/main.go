package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"block-lottery/config"
	"block-lottery/server"
)

func main() {
	root := &cobra.Command{
		Use:           "lottery",
		Short:         "Block-hash pot lottery",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd())
	root.AddCommand(clientCmds()...)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the lottery gRPC service",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.GetConfig()
			if err := config.SetupLogging(&cfg); err != nil {
				log.Fatalf("fail to set up logging: %v", err)
			}

			rules, err := config.LoadRules(cfg.RulesFile)
			if err != nil {
				log.Fatalf("fail to load rules: %v", err)
			}

			service, err := server.NewLotteryService(context.Background(), &cfg, rules)
			if err != nil {
				log.Fatalf("fail to init service: %v", err)
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sig
				log.Println("Shutting down...")
				service.Stop()
			}()

			if err := service.Run(); err != nil {
				log.Fatalf("service stopped: %v", err)
			}
		},
	}
}
