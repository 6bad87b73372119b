package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fabre752/multidiary/config"
	"github.com/fabre752/multidiary/database"
	"github.com/fabre752/multidiary/logger"
	"github.com/fabre752/multidiary/web"
	"github.com/fabre752/multidiary/web/job"
	"github.com/fabre752/multidiary/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	var server *web.Server

	server = web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func migrateDb() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Start migrating database...")
	job.NewRecountStatsJob().Run()
	fmt.Println("Migration done!")
}

func showSetting(show bool) {
	if show {
		err := database.InitDB(config.GetDBPath())
		if err != nil {
			fmt.Println(err)
			return
		}
		userService := service.UserService{}
		userModel, err := userService.GetFirstUser()
		if err != nil {
			fmt.Println("get current user info failed, error info:", err)
			return
		}
		fmt.Println("current settings as follows:")
		fmt.Println("login:", userModel.Login)
		fmt.Println("listen:", config.GetListen())
		fmt.Println("port:", config.GetPort())
		fmt.Println("db path:", config.GetDBPath())
	}
}

func updateSetting(login string, password string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	if login != "" || password != "" {
		userService := service.UserService{}
		err := userService.UpdateFirstUser(login, password)
		if err != nil {
			fmt.Println("set login and password failed:", err)
		} else {
			fmt.Println("set login and password success")
		}
	}
}

func main() {
	_ = godotenv.Load()
	if err := config.LoadFile("multidiary.toml"); err != nil {
		log.Fatal("load config file:", err)
	}

	var rootCmd = &cobra.Command{
		Use: "multidiary",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and recount stats",
		Run: func(cmd *cobra.Command, args []string) {
			migrateDb()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Set settings",
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Run: func(cmd *cobra.Command, args []string) {
			showSetting(true)
		},
	}

	var updateCmd = &cobra.Command{
		Use:   "update",
		Short: "Update admin credentials",
		Run: func(cmd *cobra.Command, args []string) {
			login, _ := cmd.Flags().GetString("login")
			password, _ := cmd.Flags().GetString("password")
			updateSetting(login, password)
		},
	}

	updateCmd.Flags().String("login", "", "set admin login")
	updateCmd.Flags().String("password", "", "set admin password")

	settingCmd.AddCommand(showCmd, updateCmd)
	rootCmd.AddCommand(runCmd, migrateCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
