package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/microcollab/microcollab-api/api"
	"github.com/microcollab/microcollab-api/demo"
	"github.com/microcollab/microcollab-api/event"
	"github.com/microcollab/microcollab-api/seed"
	"github.com/microcollab/microcollab-api/store"
	"github.com/microcollab/microcollab-api/utils"
)

var (
	server *api.Server
	ormDB  *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("microcollab")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	var simulator *demo.Simulator

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if simulator != nil {
			log.Info("Stopping demo simulator")
			simulator.Stop()
		}

		if server != nil {
			log.Info("Shutdown marketplace api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// i18n bundle for notification copy
	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	var err error
	ormDB, err = gorm.Open("sqlite3", viper.GetString("store.path"))
	if err != nil {
		log.Panic(err)
	}

	kv, err := store.NewSqliteKV(ormDB)
	if err != nil {
		log.Panic(err)
	}

	bus := event.NewBus()
	mcStore := store.NewMicroCollabStore(kv, bus, viper.GetBool("store.latency"))

	var resetData func()
	if viper.GetBool("mock.enabled") {
		seed.Populate(kv)
		resetData = func() { seed.Reset(kv) }
	}

	// demo surface simulator, disjoint from the store above
	scope, closer := tally.NewRootScope(tally.ScopeOptions{Prefix: "demo"}, time.Second)
	defer closer.Close()
	simulator = demo.NewSimulator(viper.GetDuration("demo.interval"), scope)
	simulator.Start()

	// Init http server
	server = api.NewServer(mcStore, simulator, resetData)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
