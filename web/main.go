package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/df07/go-padvinder/web/server"
)

var CLI struct {
	Port      int    `help:"Port to serve on." default:"8080" env:"PADVINDER_PORT"`
	ScenesDir string `help:"Directory with YAML scene files." default:"scenes" env:"PADVINDER_SCENES"`
	Debug     bool   `help:"Whether to enable debug logging."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("padvinder-web"),
		kong.Description("HTTP render service for the padvinder path tracer"),
		kong.UsageOnError())

	level := zerolog.InfoLevel
	if CLI.Debug {
		level = zerolog.DebugLevel
	}

	// Log to the terminal and keep the recent messages for /api/console
	console := server.NewConsole(200)
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(zerolog.MultiLevelWriter(consoleWriter, console)).
		Level(level).
		With().Timestamp().Logger()

	webServer := server.NewServer(CLI.Port, CLI.ScenesDir, logger, console)

	logger.Info().Msgf("Visit http://localhost:%d/api/scene?name=default to render", CLI.Port)

	if err := webServer.Start(); err != nil {
		logger.Error().Err(err).Msg("Error starting server")
		os.Exit(1)
	}
}
