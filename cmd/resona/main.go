// Package main provides the Resona CLI.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/resona-ml/resona/internal/config"
	"github.com/resona-ml/resona/internal/dataset"
	"github.com/resona-ml/resona/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Resona %s\n", version)
	case "train":
		if err := runTrain(os.Args[2:]); err != nil {
			log.Fatalf("train: %v", err)
		}
	case "masses":
		if err := runMasses(os.Args[2:]); err != nil {
			log.Fatalf("masses: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Resona - Physics-Informed Neural Networks for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  train -config FILE   Train a model from a YAML run file")
	fmt.Println("  masses -out FILE     Download the AME2020 mass table as JSON records")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	cfgPath := fs.String("config", "", "YAML run file (required)")
	outPath := fs.String("out", "", "write the trained model as JSON to this path")
	quiet := fs.Bool("quiet", false, "suppress per-iteration diagnostics")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cfgPath == "" {
		return errors.New("-config is required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if !*quiet {
		cfg.OnIteration = train.JSONEmitter(os.Stdout)
	}

	trainer, err := train.New(cfg)
	if err != nil {
		return err
	}

	// Ctrl-C stops the loop between iterations; the best parameters found
	// so far are still written out.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, runErr := trainer.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	log.Printf("state=%v iterations=%d loss=%g (data=%g physics=%g)",
		res.State, res.Iterations, res.Loss, res.DataLoss, res.PhysicsLoss)

	if *outPath != "" && res.Model != nil {
		data, err := json.MarshalIndent(res.Model, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(*outPath, data, 0o644); err != nil {
			return err
		}
		log.Printf("model written to %s", *outPath)
	}
	if errors.Is(runErr, context.Canceled) {
		log.Print("interrupted; best parameters kept")
		return nil
	}
	return runErr
}

func runMasses(args []string) error {
	fs := flag.NewFlagSet("masses", flag.ExitOnError)
	url := fs.String("url", dataset.DefaultAME2020URL, "mass table location")
	outPath := fs.String("out", "", "write JSON records to this path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, err := dataset.NewAME2020().Fetch(ctx, *url)
	if err != nil {
		return err
	}
	log.Printf("parsed %d nuclide records", len(records))

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if *outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(*outPath, append(data, '\n'), 0o644); err != nil {
		return err
	}
	log.Printf("records written to %s", *outPath)
	return nil
}
