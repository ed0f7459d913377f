// Package main provides the nODEs command line demo.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jdhoffa/nODEs/backend/cpu"
	"github.com/jdhoffa/nODEs/nn"
	"github.com/jdhoffa/nODEs/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("nODEs %s\n", version)
		return
	}

	hidden := flag.Int("hidden", nn.DefaultHiddenSize, "hidden layer width")
	seed := flag.Uint64("seed", 42, "weight initialization seed")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(log, *hidden, *seed); err != nil {
		log.Fatal().Err(err).Msg("demo failed")
	}
}

// run builds the illustrative four-sample network and reports one forward
// pass: three binary features per sample, one binary target per sample.
func run(log zerolog.Logger, hidden int, seed uint64) error {
	backend := cpu.New()

	x, err := tensor.FromSlice(
		[]float64{
			0, 0, 1,
			0, 1, 1,
			1, 0, 1,
			1, 1, 1,
		},
		tensor.Shape{4, 3}, backend)
	if err != nil {
		return err
	}

	y, err := tensor.FromSlice(
		[]float64{0, 1, 1, 0},
		tensor.Shape{4, 1}, backend)
	if err != nil {
		return err
	}

	net, err := nn.NewNetwork(x, y, backend,
		nn.WithHiddenSize(hidden),
		nn.WithSeed(seed),
	)
	if err != nil {
		return err
	}

	log.Info().
		Str("backend", backend.Name()).
		Ints("input_shape", x.Shape()).
		Ints("target_shape", y.Shape()).
		Int("hidden", net.HiddenSize()).
		Uint64("seed", seed).
		Msg("network constructed")

	log.Info().Float64("cost", net.Cost()).Msg("cost before feedforward (zero output)")

	out := net.Feedforward()

	log.Info().
		Floats64("output", out.Data()).
		Float64("cost", net.Cost()).
		Msg("feedforward complete")

	return nil
}
