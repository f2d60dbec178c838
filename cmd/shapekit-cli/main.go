package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	shapekit "github.com/goliatone/go-shapekit"
	"github.com/goliatone/go-shapekit/internal/prompt"
	"github.com/goliatone/go-shapekit/pkg/render"
)

func main() {
	var (
		output        = flag.String("output", "", "output file (stdout if empty)")
		interactive   = flag.Bool("interactive", false, "prompt for options instead of using flags")
		mode          = flag.String("mode", "random", "random, id, or all")
		id            = flag.String("id", "", "shape identifier for -mode id")
		color         = flag.String("color", "", "fill color")
		size          = flag.Int("size", 0, "width/height in pixels")
		gradient      = flag.Bool("gradient", false, "fill with a gradient")
		gradientStart = flag.String("gradient-start", "", "gradient start color")
		gradientStop  = flag.String("gradient-stop", "", "gradient stop color")
	)
	flag.Parse()

	ctx := context.Background()

	selected := *mode
	opts := render.Options{
		ID:                 *id,
		Color:              *color,
		Size:               *size,
		Gradient:           *gradient,
		GradientStartColor: *gradientStart,
		GradientStopColor:  *gradientStop,
	}

	if *interactive {
		var err error
		selected, opts, err = ask(ctx, prompt.NewSurveyDriver())
		if err != nil {
			log.Fatalf("prompt failed: %v", err)
		}
	}

	fragments, err := renderMode(selected, opts)
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}

	markup := strings.Join(fragments, "\n")
	if *output != "" {
		if err := os.WriteFile(*output, []byte(markup+"\n"), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("✓ Wrote %d shape(s) to %s\n", len(fragments), *output)
		return
	}
	fmt.Println(markup)
}

func renderMode(mode string, opts render.Options) ([]string, error) {
	switch mode {
	case "random":
		svg, err := shapekit.RenderRandom(opts)
		if err != nil {
			return nil, err
		}
		return []string{svg}, nil
	case "id":
		svg, err := shapekit.RenderByID(opts)
		if err != nil {
			return nil, err
		}
		return []string{svg}, nil
	case "all":
		return shapekit.RenderAll(opts)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func ask(ctx context.Context, driver prompt.Driver) (string, render.Options, error) {
	modes := []string{"random", "id", "all"}
	idx, err := driver.Select(ctx, prompt.SelectConfig{
		Message: "Which shapes?",
		Options: []string{"one at random", "one by identifier", "every shape"},
	})
	if err != nil {
		return "", render.Options{}, err
	}
	mode := modes[idx]

	var opts render.Options
	if mode == "id" {
		total := shapekit.CatalogSize()
		value, err := driver.Input(ctx, prompt.InputConfig{
			Message:   fmt.Sprintf("Shape identifier (1-%d)", total),
			Validator: identifierValidator(total),
		})
		if err != nil {
			return "", render.Options{}, err
		}
		opts.ID = strings.TrimSpace(value)
	}

	colorVal, err := driver.Input(ctx, prompt.InputConfig{
		Message: "Fill color",
		Help:    "leave empty for the default, or for random pairings in 'every shape' mode",
	})
	if err != nil {
		return "", render.Options{}, err
	}
	opts.Color = strings.TrimSpace(colorVal)

	sizeVal, err := driver.Input(ctx, prompt.InputConfig{
		Message:   "Size in pixels",
		Default:   strconv.Itoa(render.DefaultSize),
		Validator: sizeValidator,
	})
	if err != nil {
		return "", render.Options{}, err
	}
	opts.Size, _ = strconv.Atoi(strings.TrimSpace(sizeVal))

	useGradient, err := driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: "Fill with a gradient?",
	})
	if err != nil {
		return "", render.Options{}, err
	}
	opts.Gradient = useGradient

	if useGradient {
		start, err := driver.Input(ctx, prompt.InputConfig{
			Message: "Gradient start color",
			Default: render.DefaultGradientStart,
		})
		if err != nil {
			return "", render.Options{}, err
		}
		stop, err := driver.Input(ctx, prompt.InputConfig{
			Message: "Gradient stop color",
			Default: render.DefaultGradientStop,
		})
		if err != nil {
			return "", render.Options{}, err
		}
		opts.GradientStartColor = strings.TrimSpace(start)
		opts.GradientStopColor = strings.TrimSpace(stop)
	}

	return mode, opts, nil
}

func identifierValidator(max int) func(ans interface{}) error {
	return func(ans interface{}) error {
		raw, _ := ans.(string)
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 || n > max {
			return fmt.Errorf("enter a number between 1 and %d", max)
		}
		return nil
	}
}

func sizeValidator(ans interface{}) error {
	raw, _ := ans.(string)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
