package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/dkarpushkin/go-pathtracer/pkg/dispatcher"
	"github.com/dkarpushkin/go-pathtracer/pkg/integrator"
	"github.com/dkarpushkin/go-pathtracer/pkg/scene"
	"github.com/dkarpushkin/go-pathtracer/pkg/sceneio"
	"github.com/dkarpushkin/go-pathtracer/pkg/vec3"
)

// Config holds all the configuration for the raytracer.
type Config struct {
	SceneFile      string
	Width          int
	Height         int
	MaxPasses      int
	SamplesPerPass int
	MaxDepth       int
	NumWorkers     int
	Help           bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	fmt.Println("Starting path tracer...")
	startTime := time.Now()

	sceneObj, err := createScene(config)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	outputDir := createOutputDir(config.SceneFile)
	timestamp := time.Now().Format("20060102_150405")

	if err := renderProgressive(config, sceneObj, outputDir, timestamp); err != nil {
		fmt.Printf("Error during render: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneFile, "scene", "", "Path to a JSON scene file (empty = built-in default scene)")
	flag.IntVar(&config.Width, "width", 640, "Image width in pixels")
	flag.IntVar(&config.Height, "height", 480, "Image height in pixels")
	flag.IntVar(&config.MaxPasses, "max-passes", 8, "Number of progressive passes to accumulate")
	flag.IntVar(&config.SamplesPerPass, "samples-per-pass", 8, "Samples per pixel added in each pass")
	flag.IntVar(&config.MaxDepth, "max-depth", 16, "Maximum path tracing recursion depth")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

// showHelp displays help information.
func showHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pathtracer --width=800 --height=600 --max-passes=16")
	fmt.Println("  pathtracer --scene=scenes/cornell.json --samples-per-pass=16")
	fmt.Println()
	fmt.Println("Output is saved to output/<scene>/render_<timestamp>.png")
}

// createScene loads a JSON scene file if one was given, or builds the
// built-in default scene otherwise.
func createScene(config Config) (*scene.Scene, error) {
	random := rand.New(rand.NewSource(1))

	if config.SceneFile == "" {
		fmt.Println("Using default scene...")
		return scene.NewDefaultScene(config.Width, config.Height, random), nil
	}

	fmt.Printf("Loading scene: %s...\n", config.SceneFile)
	data, err := os.ReadFile(config.SceneFile)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	sceneObj, err := sceneio.Load(data, random)
	if err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}
	if sceneObj.Width == 0 {
		sceneObj.Width = config.Width
	}
	if sceneObj.Height == 0 {
		sceneObj.Height = config.Height
	}
	return sceneObj, nil
}

// createOutputDir creates and returns the output directory for the scene.
func createOutputDir(sceneFile string) string {
	name := "default"
	if sceneFile != "" {
		base := filepath.Base(sceneFile)
		name = base[:len(base)-len(filepath.Ext(base))]
	}

	outputDir := filepath.Join("output", name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	return outputDir
}

// renderProgressive runs MaxPasses progressive accumulation passes, saving
// the averaged image to disk after each one.
func renderProgressive(config Config, sceneObj *scene.Scene, outputDir, timestamp string) error {
	pt := integrator.NewPathTracer(sceneObj, config.MaxDepth)
	d := dispatcher.New(pt, workerCount(config.NumWorkers))
	defer d.Close()

	buffer := make([]vec3.Vec3, sceneObj.Width*sceneObj.Height)
	ctx := context.Background()

	for pass := 1; pass <= config.MaxPasses; pass++ {
		if err := d.RenderStep(ctx, sceneObj.Camera, sceneObj.Width, sceneObj.Height, config.SamplesPerPass, buffer); err != nil {
			return err
		}

		// Each RenderStep call already averages its own SamplesPerPass
		// rays per pixel (see dispatcher.workerLoop), so buffer accumulates
		// one per-pass average per iteration, not a running sample sum;
		// dividing by `pass` recovers the mean, not pass*SamplesPerPass.
		filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
		if err := saveImageToFile(buffer, sceneObj.Width, sceneObj.Height, pass, filename); err != nil {
			return fmt.Errorf("saving pass %d: %w", pass, err)
		}

		samplesSoFar := pass * config.SamplesPerPass
		fmt.Printf("Pass %d/%d complete (%d samples/pixel)\n", pass, config.MaxPasses, samplesSoFar)
	}

	return nil
}

func workerCount(configured int) int {
	if configured > 0 {
		return configured
	}
	return runtime.NumCPU()
}

// saveImageToFile gamma-corrects and tone-maps the accumulated buffer
// (dividing by passCount, the number of per-pass averages summed into
// buffer so far) and writes it as a PNG.
func saveImageToFile(buffer []vec3.Vec3, width, height, passCount int, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scale := 1.0 / float64(passCount)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := buffer[y*width+x].Multiply(scale).Clamp(0, 1).GammaCorrect(2.0)
			img.Set(x, y, color.RGBA{
				R: uint8(c.X*255 + 0.5),
				G: uint8(c.Y*255 + 0.5),
				B: uint8(c.Z*255 + 0.5),
				A: 255,
			})
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
