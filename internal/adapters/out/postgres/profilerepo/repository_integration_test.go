package profilerepo_test

import (
	"context"
	"testing"
	"time"

	"orderlink/internal/adapters/out/postgres/profilerepo"
	"orderlink/internal/core/domain/model/account"
	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProfileRepositoryIntegrationTestSuite provides integration tests for
// ProfileRepository using PostgreSQL containers.
type ProfileRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *profilerepo.GormProfileRepository
	ownerID    kernel.OwnerID
}

func (suite *ProfileRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		DriverName: "postgres",
		DSN:        connStr,
	}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&profilerepo.ProfileDTO{}))

	suite.ownerID, err = kernel.NewOwnerID("owner-1")
	suite.Require().NoError(err)
}

func (suite *ProfileRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE profiles").Error)
	suite.repository = profilerepo.NewGormProfileRepository(suite.db)
}

func (suite *ProfileRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestUpsert_CreatesProfile() {
	ctx := context.Background()
	profile, err := account.NewProfile(suite.ownerID, "Riverside Ceramics", "+15550100999", time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Upsert(ctx, profile))

	loaded, err := suite.repository.Get(ctx, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal("Riverside Ceramics", loaded.BusinessName())
	suite.Equal("+15550100999", loaded.BusinessPhoneNumber())
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestUpsert_SecondWriteReplacesFields() {
	ctx := context.Background()
	now := time.Now().UTC()

	profile, err := account.NewProfile(suite.ownerID, "Riverside Ceramics", "+15550100999", now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, profile))

	suite.Require().NoError(profile.Merge("Riverside Pottery", "", now.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Upsert(ctx, profile))

	loaded, err := suite.repository.Get(ctx, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal("Riverside Pottery", loaded.BusinessName())
	suite.Equal("+15550100999", loaded.BusinessPhoneNumber())

	var count int64
	suite.Require().NoError(suite.db.Model(&profilerepo.ProfileDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *ProfileRepositoryIntegrationTestSuite) TestGet_MissingProfile_ReturnsNotFound() {
	missingOwner, err := kernel.NewOwnerID("owner-without-profile")
	suite.Require().NoError(err)

	_, err = suite.repository.Get(context.Background(), missingOwner)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFoundErr)
}

func TestProfileRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositoryIntegrationTestSuite))
}
