package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/df07/go-padvinder/pkg/export"
	"github.com/df07/go-padvinder/pkg/loaders"
	"github.com/df07/go-padvinder/pkg/renderer"
	"github.com/df07/go-padvinder/pkg/scene"
)

// RenderCmd renders a built-in scene or a YAML scene file
type RenderCmd struct {
	Scene string `help:"Built-in scene to render." default:"default" short:"s"`
	File  string `help:"YAML scene file to render instead of a built-in scene." short:"f"`
	Out   string `help:"Output image, the format follows the extension." default:"render.png" short:"o"`

	ResX       int     `help:"Number of image rows (0 keeps the scene setting)." name:"res-x"`
	ResY       int     `help:"Number of image columns (0 keeps the scene setting)." name:"res-y"`
	SPP        int     `help:"Samples per pixel (0 keeps the scene setting)." name:"spp"`
	PathLength int     `help:"Maximum path segments (0 keeps the scene setting)." name:"path-length"`
	Workers    int     `help:"Parallel workers, 0 uses every CPU (-1 keeps the scene setting)." default:"-1"`
	Seed       int64   `help:"Seed of the random streams (-1 keeps the scene setting)." default:"-1"`
	Gamma      float64 `help:"Display gamma of the output image." default:"2.2"`

	Raw       string `help:"Also write the linear float buffer as CBOR to this path."`
	Thumbnail int    `help:"Also write a thumbnail that fits this many pixels."`

	S3Bucket   string `help:"Upload the PNG to this S3 bucket." name:"s3-bucket" env:"PADVINDER_S3_BUCKET"`
	S3Key      string `help:"Object key of the upload (defaults to the output file name)." name:"s3-key"`
	S3Region   string `help:"S3 region." name:"s3-region" default:"us-east-1" env:"PADVINDER_S3_REGION"`
	S3Endpoint string `help:"Endpoint of an S3-compatible store." name:"s3-endpoint" env:"PADVINDER_S3_ENDPOINT"`
}

// ScenesCmd lists the scenes that can be rendered
type ScenesCmd struct {
	Dir string `help:"Directory with YAML scene files." default:"scenes"`
}

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Render RenderCmd `cmd:"" help:"Render a scene to an image."`
	Scenes ScenesCmd `cmd:"" help:"List the available scenes."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("padvinder"),
		kong.Description("a minimal Monte-Carlo path tracer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}

	// Ctrl-C stops the render between tiles
	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch ctx.Command() {
	case "render":
		if err := runRender(signalCtx, CLI.Render, log.Logger); err != nil {
			stop()
			writeError(err)
		}
	case "scenes":
		if err := listScenes(os.Stdout, CLI.Scenes.Dir); err != nil {
			stop()
			writeError(err)
		}
	}
}

// createScene builds the scene from a file when one is given, otherwise by built-in name
func createScene(name, file string) (scene.Setup, error) {
	if file != "" {
		return loaders.LoadScene(file)
	}
	return scene.Builtin(name)
}

// applyOverrides replaces scene settings with the ones given on the command line
func (c RenderCmd) applyOverrides(config renderer.Config) renderer.Config {
	if c.ResX > 0 {
		config.ResX = c.ResX
	}
	if c.ResY > 0 {
		config.ResY = c.ResY
	}
	if c.SPP > 0 {
		config.SamplesPerPixel = c.SPP
	}
	if c.PathLength > 0 {
		config.PathLength = c.PathLength
	}
	if c.Workers >= 0 {
		config.NumWorkers = c.Workers
	}
	if c.Seed >= 0 {
		config.Seed = uint64(c.Seed)
	}
	return config
}

func runRender(ctx context.Context, cmd RenderCmd, logger zerolog.Logger) error {
	if err := renderer.ValidateGamma(cmd.Gamma); err != nil {
		return err
	}

	setup, err := createScene(cmd.Scene, cmd.File)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}

	r, err := renderer.New(cmd.applyOverrides(setup.Config), logger)
	if err != nil {
		return err
	}

	img, _, err := r.RenderContext(ctx, setup.Scene, setup.Camera)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := export.Save(cmd.Out, img, cmd.Gamma); err != nil {
		return err
	}
	logger.Info().Str("path", cmd.Out).Msg("Render saved")

	if cmd.Raw != "" {
		if err := export.SaveRaw(cmd.Raw, img); err != nil {
			return err
		}
		logger.Info().Str("path", cmd.Raw).Msg("Raw buffer saved")
	}

	if cmd.Thumbnail > 0 {
		path := thumbnailPath(cmd.Out)
		if err := export.SaveThumbnail(path, img, cmd.Thumbnail, cmd.Gamma); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("Thumbnail saved")
	}

	if cmd.S3Bucket != "" {
		uploader, err := export.NewS3Uploader(export.S3Config{
			Bucket:    cmd.S3Bucket,
			Region:    cmd.S3Region,
			Endpoint:  cmd.S3Endpoint,
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		}, logger)
		if err != nil {
			return err
		}
		key := cmd.S3Key
		if key == "" {
			key = strings.TrimSuffix(filepath.Base(cmd.Out), filepath.Ext(cmd.Out)) + ".png"
		}
		if err := uploader.UploadPNG(ctx, key, img, cmd.Gamma); err != nil {
			return err
		}
	}

	return nil
}

// thumbnailPath turns render.png into render_thumb.png
func thumbnailPath(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "_thumb" + ext
}

func listScenes(w io.Writer, dir string) error {
	scenes, err := scene.ListScenes(dir)
	if err != nil {
		return err
	}
	for _, info := range scenes {
		id := info.ID
		if info.Type == scene.TypeYAML {
			id = info.FilePath
		}
		fmt.Fprintf(w, "%-24s %s\n", id, info.Description)
	}
	return nil
}
