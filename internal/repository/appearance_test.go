//go:build integration
// +build integration

package repository

import (
	"testing"

	"scouting-planner-backend/internal/database/models"
	"scouting-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AppearanceRepositoryTestSuite tests the AppearanceRepository
type AppearanceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AppearanceRepository
}

// SetupSuite runs before all tests in the suite
func (suite *AppearanceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAppearanceRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *AppearanceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AppearanceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AppearanceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetFirstEmptyTable tests the missing record case
func (suite *AppearanceRepositoryTestSuite) TestGetFirstEmptyTable() {
	_, err := suite.repo.GetFirst()

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpsertCreatesSingleRow tests that repeated upserts keep one row
func (suite *AppearanceRepositoryTestSuite) TestUpsertCreatesSingleRow() {
	first, err := suite.repo.Upsert("http://localhost:8000/static/photos/a.jpg")
	suite.NoError(err)

	second, err := suite.repo.Upsert("http://localhost:8000/static/photos/b.jpg")
	suite.NoError(err)

	suite.Equal(first.ID, second.ID)
	suite.Equal("http://localhost:8000/static/photos/b.jpg", second.PortadaURL)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Appearance{}).Count(&count)
	suite.Equal(int64(1), count)
}

// TestGetFirstReturnsStoredURL tests reading back the stored record
func (suite *AppearanceRepositoryTestSuite) TestGetFirstReturnsStoredURL() {
	_, err := suite.repo.Upsert("http://localhost:8000/static/photos/Portada-600-x-400px.jpg")
	suite.NoError(err)

	appearance, err := suite.repo.GetFirst()

	suite.NoError(err)
	suite.Equal("http://localhost:8000/static/photos/Portada-600-x-400px.jpg", appearance.PortadaURL)
}

// TestAppearanceRepositoryTestSuite runs the test suite
func TestAppearanceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AppearanceRepositoryTestSuite))
}
