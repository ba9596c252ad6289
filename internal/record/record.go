package record

import (
	"bytes"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"image/jpeg"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/icza/mjpeg"

	"forest-ca/internal/render"
	"forest-ca/internal/sims/wildfire"
	"forest-ca/pkg/forest"
)

// Config controls a headless recording run.
type Config struct {
	World wildfire.Config

	Ticks int
	Scale int
	FPS   int

	ChartPath string
	VideoPath string
	CSVPath   string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		World:     wildfire.DefaultConfig(),
		Ticks:     200,
		Scale:     6,
		FPS:       10,
		ChartPath: "population.png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.World.Size, "size", c.World.Size, "field side length")
	fs.IntVar(&c.World.Grass, "grass", c.World.Grass, "initial grass cells")
	fs.IntVar(&c.World.Trees, "trees", c.World.Trees, "initial tree cells")
	fs.IntVar(&c.World.Flames, "flames", c.World.Flames, "initial flame cells")
	fs.Int64Var(&c.World.Seed, "seed", c.World.Seed, "seed for field generation and propagation")
	fs.BoolVar(&c.World.ReseedPropagation, "reseed", c.World.ReseedPropagation, "restart the propagation stream every tick")
	fs.StringVar(&c.World.Remote, "remote", c.World.Remote, "base URL of a forest-server to step remotely")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "number of ticks to simulate")
	fs.IntVar(&c.Scale, "scale", c.Scale, "video pixels per cell")
	fs.IntVar(&c.FPS, "fps", c.FPS, "video frame rate")
	fs.StringVar(&c.ChartPath, "chart", c.ChartPath, "population chart PNG path, empty to skip")
	fs.StringVar(&c.VideoPath, "video", c.VideoPath, "MJPEG AVI path, empty to skip")
	fs.StringVar(&c.CSVPath, "csv", c.CSVPath, "census CSV path, empty to skip")
}

func (c *Config) validate() error {
	if c.Ticks < 1 {
		return fmt.Errorf("record: ticks must be positive, got %d", c.Ticks)
	}
	if c.World.Size < 1 {
		return fmt.Errorf("record: size must be positive, got %d", c.World.Size)
	}
	if err := (forest.Seeding{Size: c.World.Size, Grass: c.World.Grass, Trees: c.World.Trees, Flames: c.World.Flames}).Check(); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.FPS < 1 {
		c.FPS = 1
	}
	return nil
}

// Result holds the per-tick census, starting with the initial field.
type Result struct {
	Series []forest.Counts
	Final  forest.Field
}

// Run simulates cfg.Ticks ticks and writes the requested outputs.
func Run(cfg *Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	world := wildfire.NewWithConfig(cfg.World)
	world.Reset(0)
	if err := world.Err(); err != nil {
		return nil, fmt.Errorf("record: reset: %w", err)
	}

	var video *videoWriter
	if cfg.VideoPath != "" {
		var err error
		video, err = newVideoWriter(cfg.VideoPath, world.Size().W, cfg.Scale, cfg.FPS)
		if err != nil {
			return nil, err
		}
		defer video.Close()
	}

	res := &Result{Series: make([]forest.Counts, 0, cfg.Ticks+1)}
	for tick := 0; ; tick++ {
		res.Series = append(res.Series, world.Census())
		if video != nil {
			if err := video.AddFrame(world); err != nil {
				return nil, err
			}
		}
		if tick == cfg.Ticks {
			break
		}
		world.Step()
		if err := world.Err(); err != nil {
			return nil, fmt.Errorf("record: tick %d: %w", tick+1, err)
		}
	}
	res.Final = world.Field()

	if video != nil {
		if err := video.Close(); err != nil {
			return nil, err
		}
		log.Printf("record: wrote %d frames to %s", len(res.Series), cfg.VideoPath)
	}
	if cfg.ChartPath != "" {
		if err := writeFile(cfg.ChartPath, func(w io.Writer) error { return WriteChart(w, res.Series) }); err != nil {
			return nil, err
		}
		log.Printf("record: wrote chart to %s", cfg.ChartPath)
	}
	if cfg.CSVPath != "" {
		if err := writeFile(cfg.CSVPath, func(w io.Writer) error { return WriteCSV(w, res.Series) }); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// WriteCSV writes one census row per tick.
func WriteCSV(w io.Writer, series []forest.Counts) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tick", "empty", "grass", "trees", "flames"}); err != nil {
		return err
	}
	for tick, c := range series {
		row := []string{
			strconv.Itoa(tick),
			strconv.Itoa(c.Empty),
			strconv.Itoa(c.Grass),
			strconv.Itoa(c.Trees),
			strconv.Itoa(c.Flames),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("record: close %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("record: write %s: %w", path, err)
	}
	return nil
}

type videoWriter struct {
	avi    mjpeg.AviWriter
	side   int
	scale  int
	buf    bytes.Buffer
	closed bool
}

func newVideoWriter(path string, side, scale, fps int) (*videoWriter, error) {
	px := int32(side * scale)
	avi, err := mjpeg.New(path, px, px, int32(fps))
	if err != nil {
		return nil, fmt.Errorf("record: create video: %w", err)
	}
	return &videoWriter{avi: avi, side: side, scale: scale}, nil
}

func (v *videoWriter) AddFrame(world *wildfire.World) error {
	img := render.PaletteImage(world.Cells(), v.side, v.side, v.scale, world.Palette())
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("record: encode frame: %w", err)
	}
	if err := v.avi.AddFrame(v.buf.Bytes()); err != nil {
		return fmt.Errorf("record: add frame: %w", err)
	}
	return nil
}

func (v *videoWriter) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	if err := v.avi.Close(); err != nil {
		return errors.Join(errors.New("record: close video"), err)
	}
	return nil
}
