package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/influence/config"
	"github.com/ratel-online/influence/database"
	"github.com/ratel-online/influence/influence/role"
	"github.com/ratel-online/influence/network"
	"github.com/ratel-online/influence/state"
	"golang.org/x/sync/errgroup"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	conf, err := config.Load(".env")
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	if len(conf.RoleNames) > 0 {
		if err = role.Rename(conf.RoleNames); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	}
	state.SetPollInterval(conf.TurnPoll)
	database.StartReaper(conf.RoomIdle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	servers := []network.Network{network.NewTcpServer(conf.TCPAddr)}
	if conf.WSAddr != "" {
		servers = append(servers, network.NewWebsocketServer(conf.WSAddr))
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, server := range servers {
		server := server
		g.Go(func() error {
			return server.Serve(ctx)
		})
	}
	if err = g.Wait(); err != nil && err != context.Canceled {
		log.Error(err)
	}
}
