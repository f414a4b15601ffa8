package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/auditlog"
	auditlogPostgres "github.com/frahmantamala/hrms-backend/internal/auditlog/postgres"
	"github.com/frahmantamala/hrms-backend/internal/auth"
	authPostgres "github.com/frahmantamala/hrms-backend/internal/auth/postgres"
	auditlogDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/auditlog"
	organisationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/organisation"
	userDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/user"
	"github.com/frahmantamala/hrms-backend/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var _ = Describe("Auth Handler Integration", func() {
	var (
		db      *gorm.DB
		service *auth.Service
		handler *auth.Handler
	)

	registerBody := `{"orgName":"Acme","adminName":"Alice","email":"alice@acme.test","password":"s3cret!pass"}`

	register := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.Register(w, req)
		return w
	}

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.Login(w, req)
		return w
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
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
			&auditlogDatamodel.LogEntry{},
		)).To(Succeed())

		audit := auditlog.NewService(auditlogPostgres.NewLogRepository(db), logger.L())
		tokens := auth.NewJWTTokenGenerator("test-secret-at-least-32-characters!!", time.Hour)
		service = auth.NewService(authPostgres.NewAuthRepository(db), tokens, audit, bcrypt.MinCost)
		handler = auth.NewHandler(service)
	})

	Describe("POST /api/auth/register", func() {
		It("should create the organisation and return a token with summaries", func() {
			w := register(registerBody)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp auth.AuthResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Token).NotTo(BeEmpty())
			Expect(resp.Organisation.Name).To(Equal("Acme"))
			Expect(resp.User.Email).To(Equal("alice@acme.test"))

			var logs int64
			Expect(db.Model(&auditlogDatamodel.LogEntry{}).
				Where("action = ?", auditlog.ActionOrganisationCreated).
				Count(&logs).Error).To(Succeed())
			Expect(logs).To(Equal(int64(1)))
		})

		It("should reject a duplicate organisation or email", func() {
			Expect(register(registerBody).Code).To(Equal(http.StatusCreated))

			w := register(registerBody)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			var resp map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["message"]).To(Equal("organisation or email already exists"))
		})

		It("should reject a payload with missing fields", func() {
			w := register(`{"orgName":"Acme"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a malformed body", func() {
			w := register(`{not json`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /api/auth/login", func() {
		BeforeEach(func() {
			Expect(register(registerBody).Code).To(Equal(http.StatusCreated))
		})

		It("should issue a token for valid credentials", func() {
			w := login(`{"email":"alice@acme.test","password":"s3cret!pass"}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp auth.AuthResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Token).NotTo(BeEmpty())

			claims, err := service.ValidateAccessToken(resp.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.OrgID).NotTo(BeZero())
		})

		It("should reject a wrong password and an unknown email with the same response", func() {
			wrongPassword := login(`{"email":"alice@acme.test","password":"wrong"}`)
			unknownEmail := login(`{"email":"nobody@acme.test","password":"s3cret!pass"}`)

			Expect(wrongPassword.Code).To(Equal(http.StatusUnauthorized))
			Expect(unknownEmail.Code).To(Equal(http.StatusUnauthorized))
			Expect(wrongPassword.Body.String()).To(Equal(unknownEmail.Body.String()))
		})
	})

	Describe("POST /api/auth/logout", func() {
		It("should acknowledge", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
			w := httptest.NewRecorder()

			handler.Logout(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Logged out"))
		})
	})

	Describe("AuthMiddleware", func() {
		var protected http.Handler

		BeforeEach(func() {
			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity, ok := internal.IdentityFromContext(r.Context())
				Expect(ok).To(BeTrue())
				Expect(identity.OrgID).NotTo(BeZero())
				w.WriteHeader(http.StatusOK)
			}))
		})

		It("should reject a request without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject a garbage token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			req.Header.Set("Authorization", "Bearer not-a-token")
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("token invalid or expired"))
		})

		It("should pass a valid token through and expose the caller identity", func() {
			Expect(register(registerBody).Code).To(Equal(http.StatusCreated))
			w := login(`{"email":"alice@acme.test","password":"s3cret!pass"}`)
			var resp auth.AuthResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())

			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			req.Header.Set("Authorization", "Bearer "+resp.Token)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})
