package main

import (
	"fmt"
	"strings"
)

// stubEngine scripts SQLEngine behavior for harness tests: canned batches
// per statement, recorded registrations, optional failure injection.
type stubEngine struct {
	registeredPaths map[string]string
	registeredModes map[string]BindMode
	results         map[string][]Batch
	executed        []string
	failRegister    bool
	failQuery       string
	closed          bool
}

func newStubEngine() *stubEngine {
	return &stubEngine{
		registeredPaths: make(map[string]string),
		registeredModes: make(map[string]BindMode),
		results:         make(map[string][]Batch),
	}
}

func (s *stubEngine) on(statement string, batches ...Batch) {
	s.results[statement] = batches
}

func (s *stubEngine) RegisterTable(name string, path string, mode BindMode) error {
	if s.failRegister {
		return fmt.Errorf("registration of %v rejected", name)
	}
	s.registeredPaths[name] = path
	s.registeredModes[name] = mode
	return nil
}

func (s *stubEngine) Query(sql string) ([]Batch, error) {
	statement := strings.TrimSpace(sql)
	s.executed = append(s.executed, statement)
	if statement == s.failQuery && s.failQuery != "" {
		return nil, fmt.Errorf("statement %q rejected", statement)
	}
	return s.results[statement], nil
}

func (s *stubEngine) Close() error {
	s.closed = true
	return nil
}

func singleColumn(column string, values ...any) Batch {
	batch := Batch{Columns: []string{column}}
	for _, value := range values {
		batch.Rows = append(batch.Rows, []any{value})
	}
	return batch
}
