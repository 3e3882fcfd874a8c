package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/df07/go-ppm-raytracer/pkg/config"
	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/output"
	"github.com/df07/go-ppm-raytracer/pkg/ppm"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
	"github.com/df07/go-ppm-raytracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// envFile returns the .env path, overridable with RENDER_ENV_FILE
func envFile() string {
	if path, ok := os.LookupEnv("RENDER_ENV_FILE"); ok {
		return path
	}
	return ".env"
}

func run(args []string, logger core.Logger) error {
	cfg, err := config.Load(envFile())
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	cfg.RegisterFlags(flags)
	list := flags.Bool("list", false, "List available scenes and exit")
	flags.Usage = func() {
		out := flags.Output()
		fmt.Fprintln(out, "PPM Raytracer")
		fmt.Fprintln(out, "Usage: raytracer [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		flags.PrintDefaults()
		fmt.Fprintln(out)
		printScenes(out)
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *list {
		printScenes(os.Stdout)
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	img, err := renderImage(cfg, logger)
	if err != nil {
		return err
	}

	filename := cfg.OutputPath(time.Now())
	if err := output.WriteFile(filename, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)

	if cfg.ThumbnailWidth > 0 {
		thumb := ppm.Thumbnail(img, uint(cfg.ThumbnailWidth), uint(img.Height()))
		thumbName := output.ThumbnailPath(filename)
		if err := output.WriteFile(thumbName, thumb); err != nil {
			return err
		}
		logger.Printf("Thumbnail (%dx%d) saved as %s\n", thumb.Width(), thumb.Height(), thumbName)
	}

	if cfg.S3Bucket != "" {
		uploader, err := output.NewS3Uploader(output.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		}, logger)
		if err != nil {
			return err
		}
		if err := uploader.Upload(context.Background(), cfg.UploadKey(filename), img); err != nil {
			return err
		}
	}

	return nil
}

// renderImage produces the image for the configured scene
func renderImage(cfg config.Config, logger core.Logger) (*ppm.Image, error) {
	info, err := scene.GetSceneInfo(cfg.Scene)
	if err != nil {
		return nil, err
	}

	if info.Type == scene.TypePattern {
		logger.Printf("Generating %s pattern...\n", info.DisplayName)
		return ppm.SampleImage(cfg.Width, renderer.ImageHeight(cfg.Width, cfg.AspectRatio)), nil
	}

	selectedScene, err := scene.Lookup(cfg.Scene)
	if err != nil {
		return nil, err
	}
	logger.Printf("Using %s scene (%d shapes)...\n", info.DisplayName, selectedScene.GetPrimitiveCount())

	cameraConfig := selectedScene.CameraConfig
	cameraConfig.Width = cfg.Width
	cameraConfig.AspectRatio = cfg.AspectRatio

	raytracer := renderer.NewRaytracer(selectedScene, renderer.NewCamera(cameraConfig), logger)
	raytracer.SetQuantizePolicy(cfg.QuantizePolicy())

	img, stats := raytracer.Render()
	logger.Printf("Average luminance: %.3f\n", stats.AverageLuminance)
	return img, nil
}

func printScenes(out io.Writer) {
	fmt.Fprintln(out, "Available scenes:")
	for _, s := range scene.ListScenes() {
		fmt.Fprintf(out, "  %-10s %s\n", s.ID, s.Description)
	}
}
