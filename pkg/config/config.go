package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-ppm-raytracer/pkg/ppm"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
)

// Config holds everything needed to produce and deliver one render
type Config struct {
	Width          int
	AspectRatio    float64
	Scene          string
	Output         string // Empty means output/<scene>/render_<timestamp>.ppm
	Quantize       string // "clamp" or "wrap"
	ThumbnailWidth int    // 0 disables the thumbnail

	S3Bucket    string // Empty disables upload
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Key       string // Empty means the output file name
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		Scene:       "default",
		Quantize:    ppm.Clamp.String(),
		S3Region:    "us-east-1",
	}
}

// Load applies the env file (if it exists) and then the process environment on top of the defaults.
// Variables already set in the environment take precedence over the env file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	stringVars := map[string]*string{
		"RENDER_SCENE":    &c.Scene,
		"RENDER_OUTPUT":   &c.Output,
		"RENDER_QUANTIZE": &c.Quantize,
		"S3_BUCKET":       &c.S3Bucket,
		"S3_REGION":       &c.S3Region,
		"S3_ENDPOINT":     &c.S3Endpoint,
		"S3_ACCESS_KEY":   &c.S3AccessKey,
		"S3_SECRET_KEY":   &c.S3SecretKey,
		"S3_KEY":          &c.S3Key,
	}
	for name, dst := range stringVars {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	intVars := map[string]*int{
		"RENDER_WIDTH":           &c.Width,
		"RENDER_THUMBNAIL_WIDTH": &c.ThumbnailWidth,
	}
	for name, dst := range intVars {
		if v, ok := os.LookupEnv(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", name, err)
			}
			*dst = n
		}
	}

	if v, ok := os.LookupEnv("RENDER_ASPECT_RATIO"); ok {
		ratio, err := ParseAspectRatio(v)
		if err != nil {
			return fmt.Errorf("invalid RENDER_ASPECT_RATIO: %w", err)
		}
		c.AspectRatio = ratio
	}
	return nil
}

// ParseAspectRatio accepts either a decimal ("1.5") or a ratio ("16:9")
func ParseAspectRatio(s string) (float64, error) {
	var w, h float64
	if n, err := fmt.Sscanf(s, "%g:%g", &w, &h); err == nil && n == 2 {
		if h == 0 {
			return 0, fmt.Errorf("aspect ratio %q has zero height", s)
		}
		return w / h, nil
	}
	return strconv.ParseFloat(s, 64)
}

// aspectRatioFlag adapts the aspect ratio field to flag.Value
type aspectRatioFlag struct{ ratio *float64 }

func (f aspectRatioFlag) String() string {
	if f.ratio == nil {
		return ""
	}
	return strconv.FormatFloat(*f.ratio, 'g', -1, 64)
}

func (f aspectRatioFlag) Set(s string) error {
	ratio, err := ParseAspectRatio(s)
	if err != nil {
		return err
	}
	*f.ratio = ratio
	return nil
}

// RegisterFlags binds command-line flags to c, using its current values as defaults
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.Width, "width", c.Width, "Image width in pixels")
	flags.Var(aspectRatioFlag{&c.AspectRatio}, "aspect", "Aspect ratio as width/height, e.g. 1.5 or 16:9")
	flags.StringVar(&c.Scene, "scene", c.Scene, "Scene to render (see -list)")
	flags.StringVar(&c.Output, "output", c.Output, "Output .ppm path (default output/<scene>/render_<timestamp>.ppm)")
	flags.StringVar(&c.Quantize, "quantize", c.Quantize, "Out-of-range color policy: clamp or wrap")
	flags.IntVar(&c.ThumbnailWidth, "thumbnail", c.ThumbnailWidth, "Also write a thumbnail this many pixels wide (0 = off)")
	flags.StringVar(&c.S3Bucket, "s3-bucket", c.S3Bucket, "Upload the render to this S3 bucket")
	flags.StringVar(&c.S3Key, "s3-key", c.S3Key, "Object key for the S3 upload (default output file name)")
}

// Validate checks the configuration for values the renderer cannot use
func (c Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", c.Width)
	}
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("aspect ratio must be positive and finite, got %v", c.AspectRatio)
	}
	height := math.Floor(float64(c.Width) / c.AspectRatio)
	if math.IsInf(height, 0) || float64(c.Width)*max(1, height) > renderer.MaxPixels {
		return fmt.Errorf("width %d at aspect ratio %v exceeds %d pixels", c.Width, c.AspectRatio, renderer.MaxPixels)
	}
	if _, err := ppm.ParseQuantizePolicy(c.Quantize); err != nil {
		return err
	}
	if c.ThumbnailWidth < 0 {
		return fmt.Errorf("thumbnail width must not be negative, got %d", c.ThumbnailWidth)
	}
	if c.Scene == "" {
		return errors.New("scene must not be empty")
	}
	return nil
}

// QuantizePolicy returns the parsed quantize policy
func (c Config) QuantizePolicy() ppm.QuantizePolicy {
	policy, _ := ppm.ParseQuantizePolicy(c.Quantize)
	return policy
}

// OutputPath returns the configured output path, or a timestamped default under output/<scene>
func (c Config) OutputPath(now time.Time) string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join("output", c.Scene, fmt.Sprintf("render_%s.ppm", now.Format("20060102_150405")))
}

// UploadKey returns the S3 object key for an output path
func (c Config) UploadKey(outputPath string) string {
	if c.S3Key != "" {
		return c.S3Key
	}
	return filepath.Base(outputPath)
}
