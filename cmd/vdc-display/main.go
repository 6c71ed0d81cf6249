package main

import (
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/vdc-display/internal/cli"
	"github.com/julianstephens/vdc-display/internal/cli/system"
	"github.com/julianstephens/vdc-display/internal/config"
	"github.com/julianstephens/vdc-display/internal/constants"
	"github.com/julianstephens/vdc-display/internal/errors"
	"github.com/julianstephens/vdc-display/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Port    int    `help:"Port to serve the display page on." default:"${default_port}" short:"p"`
	LogDir  string `help:"Directory for the rotating log file. Empty disables file logging." default:"${default_log_dir}" env:"VDC_LOG_DIR"`
	Debug   bool   `help:"Enable debug logging." env:"VDC_DEBUG"`

	Serve    system.ServeCmd    `cmd:"" help:"Serve the full-screen display page." default:"1"`
	Tui      system.TuiCmd      `cmd:"" help:"Show the display full screen in this terminal."`
	Snapshot system.SnapshotCmd `cmd:"" help:"Read the database once and print the figures."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Keyring  struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage the database connection string in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description(constants.AppTitle+": shift labor and stage progress for floor TVs"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":         constants.Version,
			"default_port":    strconv.Itoa(constants.DefaultPort),
			"default_log_dir": constants.DefaultLogDir,
		},
	)

	// the terminal kiosk owns the screen, so it only logs to file
	if err := logger.Init(logger.Config{
		Debug:   CLI.Debug,
		Dir:     CLI.LogDir,
		Console: ctx.Command() != "tui",
	}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	cfg, err := config.Load(os.LookupEnv, CLI.Port)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx, err := cli.NewContext(cfg)
	if err != nil {
		errors.Fatal(err)
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
