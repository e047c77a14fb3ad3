package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var errValidationFailed = errors.New("possible incorrect query result")

func newRootCmd() *cobra.Command {
	var (
		dataPath            string
		concurrency         int
		qnum                int
		customQuery         string
		listingTables       bool
		validate            bool
		batchSize           int
		partitionsPerWorker int
		prefetchBufferSize  int
		workerPoolMin       int
		logLevel            string
	)

	cmd := &cobra.Command{
		Use:           "ray-tpch-bench",
		Short:         "TPC-H benchmark harness for a distributed SQL engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := SetLogLevel(logLevel); err != nil {
				return err
			}

			cfg := Config{
				DataPath:           dataPath,
				Concurrency:        concurrency,
				BatchSize:          batchSize,
				WorkerPoolMin:      workerPoolMin,
				PrefetchBufferSize: prefetchBufferSize,
				ListingTables:      listingTables,
				Validate:           validate,
			}
			if cmd.Flags().Changed("partitions-per-processor") {
				cfg.PartitionsPerWorker = &partitionsPerWorker
			}
			if err := cfg.Check(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			queries, err := SelectQueries(qnum, customQuery)
			if err != nil {
				return err
			}

			harness := NewHarness(cfg, queries)
			if results, err := OpenResultsDB(); err != nil {
				Logger.Errorf("failed to open results db, continuing without upload: %v", err)
			} else if results != nil {
				harness.results = results
				defer results.Close()
			}

			ok, err := harness.Run()
			if err != nil {
				return fmt.Errorf("benchmark failed: %w", err)
			}
			if !ok {
				return errValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "path to the dataset root directory")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent tasks for the execution context")
	cmd.Flags().IntVar(&qnum, "qnum", -1, "TPC-H query number, 1-22")
	cmd.Flags().StringVar(&customQuery, "query", "", "custom query to run against the TPC-H tables")
	cmd.Flags().BoolVar(&listingTables, "listing-tables", false, "register tables as listing sources instead of explicit files")
	cmd.Flags().BoolVar(&validate, "validate", false, "cross-check results against the reference engine")
	cmd.Flags().IntVar(&batchSize, "batch-size", 8192, "desired batch size output per stage")
	cmd.Flags().IntVar(&partitionsPerWorker, "partitions-per-processor", 0, "max partitions per stage worker")
	cmd.Flags().IntVar(&prefetchBufferSize, "prefetch-buffer-size", 0, "how many batches each stage should eagerly buffer")
	cmd.Flags().IntVar(&workerPoolMin, "worker-pool-min", 0, "minimum number of standing workers to keep in the pool")
	cmd.Flags().StringVar(&logLevel, "log-level", "INFO", "ERROR, WARN, INFO, DEBUG")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("concurrency")

	return cmd
}

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errValidationFailed) {
			Logger.Errorf("%v", err)
		}
		os.Exit(1)
	}
}
