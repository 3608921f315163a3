package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/network"
	"github.com/ratel-online/uno-server/service"
	"github.com/ratel-online/uno-server/state"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

func env(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func options() service.Options {
	opts := service.DefaultOptions()
	opts.Strategy = env("UNO_BOT_STRATEGY", opts.Strategy)
	opts.AiDelay = time.Duration(cast.ToInt64(env("UNO_BOT_DELAY_MS", cast.ToString(consts.BotDelay.Milliseconds())))) * time.Millisecond
	opts.IdleTTL = time.Duration(cast.ToInt64(env("UNO_SESSION_TTL_MIN", cast.ToString(int64(consts.SessionTTL/time.Minute))))) * time.Minute
	opts.AutoResolvePenalties = cast.ToBool(env("UNO_AUTO_PENALTIES", "true"))
	opts.Seed = cast.ToInt64(env("UNO_SEED", "0"))

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(env("UNO_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}
	opts.Logger = logger
	return opts
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	games, err := service.NewService(options())
	if err != nil {
		log.Error(err)
		return
	}
	state.Setup(games)
	games.StartJanitor(context.Background(), time.Minute)

	if addr := env("UNO_WS_ADDR", ":9998"); addr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(addr).Serve())
		})
	}
	server := network.NewTcpServer(env("UNO_TCP_ADDR", ":9999"))
	log.Error(server.Serve())
}
