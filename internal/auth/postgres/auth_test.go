package postgres_test

import (
	"context"
	"testing"

	"github.com/frahmantamala/hrms-backend/internal/auth"
	"github.com/frahmantamala/hrms-backend/internal/auth/postgres"
	organisationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/organisation"
	userDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAuthRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Repository Suite")
}

var _ = Describe("Auth Repository", func() {
	var (
		db   *gorm.DB
		repo auth.RepositoryAPI
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		// every sqlite connection to :memory: is a distinct database, so the
		// pool must stay on a single connection
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		Expect(db.AutoMigrate(
			&organisationDatamodel.Organisation{},
			&userDatamodel.User{},
		)).To(Succeed())

		repo = postgres.NewAuthRepository(db)
		ctx = context.Background()
	})

	Describe("CreateOrganisationWithAdmin", func() {
		It("should create the organisation and its admin together", func() {
			org, user, err := repo.CreateOrganisationWithAdmin(ctx, "Acme", "Alice", "alice@acme.test", "hash")

			Expect(err).NotTo(HaveOccurred())
			Expect(org.ID).NotTo(BeZero())
			Expect(user.OrganisationID).To(Equal(org.ID))
			Expect(user.Email).To(Equal("alice@acme.test"))
		})

		It("should translate a duplicate organisation name into ErrDuplicatedKey and create no user", func() {
			_, _, err := repo.CreateOrganisationWithAdmin(ctx, "Acme", "Alice", "alice@acme.test", "hash")
			Expect(err).NotTo(HaveOccurred())

			_, _, err = repo.CreateOrganisationWithAdmin(ctx, "Acme", "Bob", "bob@acme.test", "hash")
			Expect(err).To(MatchError(gorm.ErrDuplicatedKey))

			var users int64
			Expect(db.Model(&userDatamodel.User{}).Where("email = ?", "bob@acme.test").Count(&users).Error).To(Succeed())
			Expect(users).To(BeZero())
		})

		It("should roll back the organisation when the admin email is taken", func() {
			_, _, err := repo.CreateOrganisationWithAdmin(ctx, "Acme", "Alice", "alice@acme.test", "hash")
			Expect(err).NotTo(HaveOccurred())

			_, _, err = repo.CreateOrganisationWithAdmin(ctx, "Globex", "Alice Again", "alice@acme.test", "hash")
			Expect(err).To(MatchError(gorm.ErrDuplicatedKey))

			var orgs int64
			Expect(db.Model(&organisationDatamodel.Organisation{}).Where("name = ?", "Globex").Count(&orgs).Error).To(Succeed())
			Expect(orgs).To(BeZero())
		})
	})

	Describe("OrgOrEmailExists", func() {
		BeforeEach(func() {
			_, _, err := repo.CreateOrganisationWithAdmin(ctx, "Acme", "Alice", "alice@acme.test", "hash")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should report an existing organisation name", func() {
			exists, err := repo.OrgOrEmailExists(ctx, "Acme", "new@corp.test")

			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("should report an existing email", func() {
			exists, err := repo.OrgOrEmailExists(ctx, "Globex", "alice@acme.test")

			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("should report neither taken", func() {
			exists, err := repo.OrgOrEmailExists(ctx, "Globex", "new@corp.test")

			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("GetUserByEmail", func() {
		It("should return the user joined with its organisation name", func() {
			_, _, err := repo.CreateOrganisationWithAdmin(ctx, "Acme", "Alice", "alice@acme.test", "hash")
			Expect(err).NotTo(HaveOccurred())

			got, err := repo.GetUserByEmail(ctx, "alice@acme.test")

			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Alice"))
			Expect(got.PasswordHash).To(Equal("hash"))
			Expect(got.OrgName).To(Equal("Acme"))
		})

		It("should return record not found for an unknown email", func() {
			_, err := repo.GetUserByEmail(ctx, "nobody@acme.test")

			Expect(err).To(MatchError(gorm.ErrRecordNotFound))
		})
	})
})
