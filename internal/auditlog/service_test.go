package auditlog_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frahmantamala/hrms-backend/internal/auditlog"
	auditlogDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/auditlog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAuditLogService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "AuditLog Service Suite")
}

// MockRepository implements auditlog.RepositoryAPI for testing
type MockRepository struct {
	entries    []*auditlogDatamodel.LogEntry
	lastLimit  int
	lastFilter auditlog.ListFilter
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

func (m *MockRepository) Append(ctx context.Context, entry *auditlogDatamodel.LogEntry) error {
	if m.shouldFail {
		return m.failError
	}
	entry.ID = int64(len(m.entries) + 1)
	entry.Timestamp = time.Now()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockRepository) List(ctx context.Context, orgID int64, filter auditlog.ListFilter, limit int) ([]*auditlogDatamodel.LogEntry, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	m.lastLimit = limit
	m.lastFilter = filter

	var result []*auditlogDatamodel.LogEntry
	for _, e := range m.entries {
		if e.OrganisationID == orgID {
			result = append(result, e)
		}
	}
	return result, nil
}

var _ = Describe("AuditLog Service", func() {
	var (
		mockRepo *MockRepository
		service  *auditlog.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auditlog.NewService(mockRepo, lg)
	})

	Describe("Record", func() {
		It("should append an entry with serialized meta", func() {
			service.Record(context.Background(), 1, 7, auditlog.ActionEmployeeCreated, map[string]any{"employeeId": 42})

			Expect(mockRepo.entries).To(HaveLen(1))
			entry := mockRepo.entries[0]
			Expect(entry.OrganisationID).To(Equal(int64(1)))
			Expect(*entry.UserID).To(Equal(int64(7)))
			Expect(entry.Action).To(Equal("employee_created"))

			var meta map[string]any
			Expect(json.Unmarshal([]byte(entry.Meta), &meta)).To(Succeed())
			Expect(meta).To(HaveKeyWithValue("employeeId", float64(42)))
		})

		It("should store a null user id for system-originated entries", func() {
			service.Record(context.Background(), 1, 0, auditlog.ActionOrganisationCreated, nil)

			Expect(mockRepo.entries).To(HaveLen(1))
			Expect(mockRepo.entries[0].UserID).To(BeNil())
		})

		It("should swallow storage failures", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("storage unavailable")

			Expect(func() {
				service.Record(context.Background(), 1, 7, auditlog.ActionUserLogin, map[string]any{"email": "a@b.c"})
			}).NotTo(Panic())
			Expect(mockRepo.entries).To(BeEmpty())
		})
	})

	Describe("List", func() {
		It("should cap queries at 100 rows", func() {
			_, err := service.List(context.Background(), 1, auditlog.ListFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.lastLimit).To(Equal(100))
		})

		It("should pass filters through to the repository", func() {
			start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			_, err := service.List(context.Background(), 1, auditlog.ListFilter{
				Action:    "employee_created",
				StartDate: start,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.lastFilter.Action).To(Equal("employee_created"))
			Expect(mockRepo.lastFilter.StartDate).To(Equal(start))
		})

		It("should only return entries for the requested organisation", func() {
			service.Record(context.Background(), 1, 7, auditlog.ActionUserLogin, nil)
			service.Record(context.Background(), 2, 8, auditlog.ActionUserLogin, nil)

			entries, err := service.List(context.Background(), 1, auditlog.ListFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].OrganisationID).To(Equal(int64(1)))
		})

		It("should return repository errors", func() {
			mockRepo.shouldFail = true
			mockRepo.failError = errors.New("db down")

			_, err := service.List(context.Background(), 1, auditlog.ListFilter{})
			Expect(err).To(HaveOccurred())
		})
	})
})
