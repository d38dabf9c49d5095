package factory

import (
	"time"

	"github.com/mcoot/blockfall/internal/dependencies/mocks"
	"github.com/mcoot/blockfall/internal/events"
	"github.com/mcoot/blockfall/internal/testutil"
)

// TestSessionID is the session identifier of every TestApp
const TestSessionID = "TEST0001"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom

	// Recorder sees every published event, including the first spawn
	Recorder *events.Recorder
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// With nothing queued on the mock random, the bag deals its base in order.
func NewTestApp(cfg Config) (*TestApp, error) {
	return NewTestAppWithRandom(cfg, mocks.NewMockRandom())
}

// NewTestAppWithRandom is NewTestApp with a prepared MockRandom, so the first
// piece can be controlled
func NewTestAppWithRandom(cfg Config, mockRandom *mocks.MockRandom) (*TestApp, error) {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	ids := mocks.NewMockRandom()
	ids.QueueString(TestSessionID)

	logger := cfg.Logger
	if logger == nil {
		logger = testutil.NopLogger()
	}

	recorder := &events.Recorder{}
	app, err := newWithDependencies(cfg, mockClock, mockRandom, ids, logger, recorder.Handle)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Recorder:   recorder,
	}, nil
}
