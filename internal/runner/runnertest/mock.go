// Package runnertest provides a CommandRunner test double.
package runnertest

import (
	"context"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"
)

// Invocation records one invocation made through a MockRunner.
type Invocation struct {
	Name string
	Args []string
	Dir  string
}

// String renders the call as a command line.
func (c Invocation) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// MockRunner is a testify mock for runner.CommandRunner that also keeps
// an ordered call log. Side effects run before the mocked result is returned.
type MockRunner struct {
	mock.Mock

	mu      sync.Mutex
	calls   []Invocation
	effects []func(Invocation) error
}

// Run implements runner.CommandRunner.
func (m *MockRunner) Run(_ context.Context, name string, args []string, dir string) error {
	call := Invocation{Name: name, Args: append([]string(nil), args...), Dir: dir}

	m.mu.Lock()
	m.calls = append(m.calls, call)
	effects := append([]func(Invocation) error(nil), m.effects...)
	m.mu.Unlock()

	for _, effect := range effects {
		if err := effect(call); err != nil {
			return err
		}
	}

	ret := m.Called(name, args, dir)
	return ret.Error(0)
}

// OnAny accepts every call and returns err.
func (m *MockRunner) OnAny(err error) *mock.Call {
	return m.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(err)
}

// WithEffect registers a side effect applied to every call in order.
func (m *MockRunner) WithEffect(effect func(Invocation) error) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.effects = append(m.effects, effect)
	return m
}

// Invocations returns the recorded invocations in order.
func (m *MockRunner) Invocations() []Invocation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Invocation(nil), m.calls...)
}

// CommandLines returns the recorded invocations rendered as command lines.
func (m *MockRunner) CommandLines() []string {
	calls := m.Invocations()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}
