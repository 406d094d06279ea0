package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/kaboom/internal/kaboom"
)

func main() {
	kaboom.Debug = os.Getenv("DEBUG") != ""
	kaboom.RAW = os.Getenv("RAW")
	if w, err := strconv.Atoi(os.Getenv("WORKERS")); err == nil && w > 0 {
		kaboom.Workers = w
	}
	stop := func() {}
	if os.Getenv("PROFILE") != "" {
		var err error
		if stop, err = startProfile("cpu.out"); err != nil {
			panic(err)
		}
	}

	err := mainCmd().Execute()
	stop()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// startProfile starts CPU profiling into path; the returned func flushes and closes it.
func startProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}, nil
}

func mainCmd() *cobra.Command {
	var outputs []string
	cmd := &cobra.Command{
		Use:           "kaboom [config.json]",
		Short:         "Sphere-trace a fire ball into an image file",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			cfg := ""
			if len(args) > 0 {
				cfg = args[0]
			}
			return kaboom.Run(cfg, outputs)
		},
	}
	cmd.Flags().StringSliceVarP(&outputs, "out", "o", nil, "output image files (.png, .tiff, .bmp), overrides the config")
	cmd.Flags().IntVar(&kaboom.Workers, "workers", kaboom.Workers, "render workers, 0 means one per CPU")
	return cmd
}
