package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockfall/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Result tests

func (s *StorageSuite) TestSaveAndGetResult() {
	result := model.GameSummary{SessionID: "ABCD2345", LinesCleared: 12, Pieces: 40, Reason: model.StopReasonGameOver}

	err := s.storage.SaveResult(s.ctx, result)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetResult(s.ctx, "ABCD2345")
	s.Require().NoError(err)
	s.Equal(result, retrieved)
}

func (s *StorageSuite) TestGetResultNotFound() {
	_, err := s.storage.GetResult(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrResultNotFound)
}

func (s *StorageSuite) TestSaveResultReplacesSameSession() {
	_ = s.storage.SaveResult(s.ctx, model.GameSummary{SessionID: "A", LinesCleared: 1})
	_ = s.storage.SaveResult(s.ctx, model.GameSummary{SessionID: "A", LinesCleared: 2})

	results, err := s.storage.ListResults(s.ctx)
	s.Require().NoError(err)
	s.Len(results, 1)
	s.Equal(2, results[0].LinesCleared)
}

func (s *StorageSuite) TestListResultsKeepsSaveOrder() {
	for _, id := range []string{"C", "A", "B"} {
		s.Require().NoError(s.storage.SaveResult(s.ctx, model.GameSummary{SessionID: id}))
	}

	results, err := s.storage.ListResults(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(results, 3)
	s.Equal("C", results[0].SessionID)
	s.Equal("A", results[1].SessionID)
	s.Equal("B", results[2].SessionID)
}

func (s *StorageSuite) TestListResultsEmpty() {
	results, err := s.storage.ListResults(s.ctx)
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *StorageSuite) TestConcurrentSaves() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.storage.SaveResult(s.ctx, model.GameSummary{SessionID: fmt.Sprintf("S%02d", i)})
		}(i)
	}
	wg.Wait()

	results, err := s.storage.ListResults(s.ctx)
	s.Require().NoError(err)
	s.Len(results, 50)
}
