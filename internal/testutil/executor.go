// Package testutil provides test doubles shared by service tests.
package testutil

import (
	"context"
	"os"
	"strings"
	"sync"
)

// Response scripts executor reply for commands containing Match
type Response struct {
	Match  string
	Output string
	Err    error
}

// Transfer records a single Put call
type Transfer struct {
	Local  string
	Remote string
	Data   []byte
}

// Executor is a scripted in-memory executor; commands without matching response succeed with empty output,
// which every probe treats as "absent".
type Executor struct {
	Responses []Response
	PutErr    error
	Commands  []string
	Transfers []Transfer
	Closed    bool
	mux       sync.Mutex
}

// Run records command and returns the first matching response
func (e *Executor) Run(ctx context.Context, command string) (string, error) {
	e.mux.Lock()
	defer e.mux.Unlock()
	e.Commands = append(e.Commands, command)
	for _, response := range e.Responses {
		if strings.Contains(command, response.Match) {
			return response.Output, response.Err
		}
	}
	return "", nil
}

// Put records transfer, including the transferred content
func (e *Executor) Put(ctx context.Context, localPath, remotePath string) error {
	e.mux.Lock()
	defer e.mux.Unlock()
	if e.PutErr != nil {
		return e.PutErr
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	e.Transfers = append(e.Transfers, Transfer{Local: localPath, Remote: remotePath, Data: data})
	return nil
}

func (e *Executor) Close() error {
	e.Closed = true
	return nil
}

// Count returns number of recorded commands containing fragment
func (e *Executor) Count(fragment string) int {
	count := 0
	for _, command := range e.Commands {
		if strings.Contains(command, fragment) {
			count++
		}
	}
	return count
}

// Index returns position of the first recorded command containing fragment or -1
func (e *Executor) Index(fragment string) int {
	for i, command := range e.Commands {
		if strings.Contains(command, fragment) {
			return i
		}
	}
	return -1
}

// On appends scripted response and returns executor for chaining
func (e *Executor) On(match, output string, err error) *Executor {
	e.Responses = append(e.Responses, Response{Match: match, Output: output, Err: err})
	return e
}
