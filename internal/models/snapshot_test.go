package models_test

import (
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/test"
)

func (suite *TestSuiteStandard) TestSnapshotRoundTrip() {
	s := test.Snapshot()
	suite.loadSnapshot(s)

	loaded, meta, err := models.LoadSnapshot(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.SnapshotVersion, meta.Version)
	suite.Assert().True(test.LoadedAt.Equal(meta.LoadedAt), "expected %s, got %s", test.LoadedAt, meta.LoadedAt)

	suite.Require().Len(loaded.Categories, len(s.Categories))
	for i, c := range s.Categories {
		suite.Assert().Equal(c.ID, loaded.Categories[i].ID, "categories must keep their order")
		suite.Assert().Equal(c.Name, loaded.Categories[i].Name)
		suite.Assert().Equal(c.CreatedAt, loaded.Categories[i].CreatedAt)
	}

	suite.Require().Len(loaded.Budgets, len(s.Budgets))
	suite.Require().Len(loaded.Transactions, len(s.Transactions))
	for i, t := range s.Transactions {
		suite.Assert().Equal(t.ID, loaded.Transactions[i].ID)
		suite.Assert().Equal(t.AmountCents, loaded.Transactions[i].AmountCents)
		suite.Assert().Equal(t.Note, loaded.Transactions[i].Note)
	}
}

func (suite *TestSuiteStandard) TestSnapshotReplacesWholesale() {
	suite.loadSnapshot(test.Snapshot())

	replacement := models.Empty()
	replacement.Categories = []models.Category{{ID: "only", Type: models.KindIncome, Name: "Salary"}}
	suite.loadSnapshot(replacement)

	loaded, _, err := models.LoadSnapshot(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(loaded.Categories, 1)
	suite.Assert().Equal("only", loaded.Categories[0].ID)
	suite.Assert().NotNil(loaded.Budgets, "empty lists must not be nil")
	suite.Assert().Len(loaded.Budgets, 0)
	suite.Assert().Len(loaded.Transactions, 0)
}

func (suite *TestSuiteStandard) TestSnapshotNotLoaded() {
	_, _, err := models.LoadSnapshot(models.DB)
	suite.Assert().ErrorIs(err, models.ErrNoSnapshot)
}

func (suite *TestSuiteStandard) TestSnapshotVersion() {
	s := test.Snapshot()
	s.Version = 2

	err := models.ReplaceSnapshot(models.DB, s, test.LoadedAt)
	suite.Assert().ErrorIs(err, models.ErrSnapshotVersion)

	// A cached snapshot with a different version is ignored
	suite.Require().Nil(models.DB.Save(&models.SnapshotMeta{ID: 1, Version: 2, LoadedAt: test.LoadedAt}).Error)
	_, _, err = models.LoadSnapshot(models.DB)
	suite.Assert().ErrorIs(err, models.ErrNoSnapshot)
}

func (suite *TestSuiteStandard) TestSnapshotMissingID() {
	s := test.Snapshot()
	s.Transactions[0].ID = ""

	err := models.ReplaceSnapshot(models.DB, s, test.LoadedAt)
	suite.Assert().ErrorIs(err, models.ErrInvalidIdentifier)
}

func (suite *TestSuiteStandard) TestSnapshotDuplicateBudget() {
	s := test.Snapshot()
	duplicate := s.Budgets[0]
	duplicate.ID = "duplicate"
	s.Budgets = append(s.Budgets, duplicate)

	err := models.ReplaceSnapshot(models.DB, s, test.LoadedAt)
	suite.Assert().ErrorIs(err, models.ErrBudgetNotUnique)
}

func (suite *TestSuiteStandard) TestSnapshotDBClosed() {
	suite.CloseDB()

	_, _, err := models.LoadSnapshot(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
