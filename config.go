package main

import "fmt"

// BindMode controls how a registered dataset path is interpreted by an
// engine: as one concrete Parquet file or as a listing source scanned
// lazily.
type BindMode int

const (
	BindExplicit BindMode = iota
	BindListing
)

func (m BindMode) String() string {
	if m == BindListing {
		return "listing"
	}
	return "explicit"
}

// Config carries everything the harness needs for one run. Built once at
// startup and never mutated afterwards.
type Config struct {
	DataPath            string
	Concurrency         int
	BatchSize           int
	PartitionsPerWorker *int // nil when the flag was not given
	WorkerPoolMin       int
	PrefetchBufferSize  int
	ListingTables       bool
	Validate            bool
}

func (c Config) BindMode() BindMode {
	if c.ListingTables {
		return BindListing
	}
	return BindExplicit
}

func (c Config) Check() error {
	if c.DataPath == "" {
		return fmt.Errorf("data path must not be empty")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %v", c.Concurrency)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %v", c.BatchSize)
	}
	if c.PartitionsPerWorker != nil && *c.PartitionsPerWorker < 0 {
		return fmt.Errorf("partitions per worker must be non-negative, got %v", *c.PartitionsPerWorker)
	}
	if c.WorkerPoolMin < 0 {
		return fmt.Errorf("worker pool minimum must be non-negative, got %v", c.WorkerPoolMin)
	}
	if c.PrefetchBufferSize < 0 {
		return fmt.Errorf("prefetch buffer size must be non-negative, got %v", c.PrefetchBufferSize)
	}
	return nil
}
