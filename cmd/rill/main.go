// Package main provides the Rill CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rill-ml/rill/backend/cpu"
	"github.com/rill-ml/rill/chain"
	"github.com/rill-ml/rill/nn"
	"github.com/rill-ml/rill/optim"
	"github.com/rill-ml/rill/shape"
	"github.com/rill-ml/rill/tensor"
	"github.com/rill-ml/rill/train"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Rill %s\n", version)
	case "train":
		if err := runTrain(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "rill: %v\n", err)
			os.Exit(1)
		}
	case "dot":
		if err := runDot(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "rill: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Rill - Closure-Based Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  train    Train an architecture on synthetic regression data")
	fmt.Println("  dot      Print an architecture as a Graphviz graph")
	fmt.Println("  version  Show version")
}

// runTrain fits the given architecture to a random linear target. It is a
// smoke-test harness for architectures, not a data pipeline.
func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	arch := fs.String("arch", "(chain (affine 3 5) (relu) (affine 1 3))", "architecture s-expression")
	epochs := fs.Int("epochs", 100, "number of training epochs")
	lr := fs.Float64("lr", optim.DefaultLR, "learning rate")
	seed := fs.Uint64("seed", 1, "RNG seed for parameters and data")
	batch := fs.Int("batch", 32, "number of synthetic samples")
	every := fs.Int("every", 10, "print cost every N epochs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	backend := cpu.NewWithSeed(*seed)
	model, err := shape.Parse(*arch, backend)
	if err != nil {
		return err
	}

	in, out, err := modelDims(model)
	if err != nil {
		return err
	}

	input := tensor.Randn(tensor.Shape{in, *batch}, backend)
	truth := tensor.Randn(tensor.Shape{out, in}, backend)
	target := truth.MatMul(input)

	opt := optim.NewSGD(optim.SGDConfig{LR: *lr})
	for epoch, cost := range train.Run(input, target, model, opt, *epochs) {
		if epoch%*every == 0 || epoch == *epochs-1 {
			fmt.Printf("epoch %4d  cost %.6f\n", epoch, cost)
		}
	}
	return nil
}

func runDot(args []string) error {
	fs := flag.NewFlagSet("dot", flag.ExitOnError)
	arch := fs.String("arch", "(chain (affine 3 5) (relu) (affine 1 3))", "architecture s-expression")
	if err := fs.Parse(args); err != nil {
		return err
	}

	model, err := shape.Parse(*arch, cpu.New())
	if err != nil {
		return err
	}
	fmt.Println(chain.Dot(model).String())
	return nil
}

// modelDims reads the input and output widths off the model's affine layers.
// Width-preserving layers (relu, sigmoid, identity) are skipped.
func modelDims(model nn.Layer) (in, out int, err error) {
	var layers []nn.Layer
	if c, ok := model.(*chain.Chain); ok {
		layers = c.Layers()
	} else {
		layers = []nn.Layer{model}
	}

	for _, l := range layers {
		if a, ok := l.(*nn.Affine); ok {
			if in == 0 {
				in = a.InFeatures()
			}
			out = a.OutFeatures()
		}
	}
	if in == 0 {
		return 0, 0, fmt.Errorf("architecture has no affine layer to size inputs from")
	}
	return in, out, nil
}
