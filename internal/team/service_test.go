package team_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/frahmantamala/hrms-backend/internal"
	"github.com/frahmantamala/hrms-backend/internal/auditlog"
	teamDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/team"
	"github.com/frahmantamala/hrms-backend/internal/team"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestTeamService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Team Service Suite")
}

type MockRepository struct {
	teams        []*teamDatamodel.Team
	members      map[int64][]team.AssignedEmployee
	orgEmployees map[int64][]int64

	countErr  error
	assignErr error

	assigned   map[int64][]int64
	unassigned [][2]int64
	deleted    []int64
}

func newMockRepository() *MockRepository {
	return &MockRepository{
		members:      map[int64][]team.AssignedEmployee{},
		orgEmployees: map[int64][]int64{},
		assigned:     map[int64][]int64{},
	}
}

func (m *MockRepository) GetAllWithCounts(ctx context.Context, orgID int64) ([]*team.TeamWithCount, error) {
	out := make([]*team.TeamWithCount, 0)
	for _, t := range m.teams {
		if t.OrganisationID != orgID {
			continue
		}
		out = append(out, &team.TeamWithCount{
			Team:          *team.FromDataModel(t),
			EmployeeCount: int64(len(m.members[t.ID])),
		})
	}
	return out, nil
}

func (m *MockRepository) GetByID(ctx context.Context, orgID, id int64) (*teamDatamodel.Team, error) {
	for _, t := range m.teams {
		if t.ID == id && t.OrganisationID == orgID {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockRepository) GetMembers(ctx context.Context, orgID, teamID int64) ([]team.AssignedEmployee, error) {
	return m.members[teamID], nil
}

func (m *MockRepository) Create(ctx context.Context, t *teamDatamodel.Team) error {
	t.ID = int64(len(m.teams) + 1)
	m.teams = append(m.teams, t)
	return nil
}

func (m *MockRepository) Update(ctx context.Context, orgID int64, t *teamDatamodel.Team) error {
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, orgID, id int64) error {
	m.deleted = append(m.deleted, id)
	delete(m.members, id)
	return nil
}

func (m *MockRepository) CountEmployeesInOrg(ctx context.Context, orgID int64, employeeIDs []int64) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	known := map[int64]bool{}
	for _, id := range m.orgEmployees[orgID] {
		known[id] = true
	}
	var count int64
	for _, id := range employeeIDs {
		if known[id] {
			count++
		}
	}
	return count, nil
}

func (m *MockRepository) AssignEmployees(ctx context.Context, teamID int64, employeeIDs []int64) error {
	if m.assignErr != nil {
		return m.assignErr
	}
	m.assigned[teamID] = append(m.assigned[teamID], employeeIDs...)
	return nil
}

func (m *MockRepository) UnassignEmployee(ctx context.Context, orgID, teamID, employeeID int64) error {
	m.unassigned = append(m.unassigned, [2]int64{teamID, employeeID})
	return nil
}

type MockRecorder struct {
	actions []string
	metas   []any
}

func (m *MockRecorder) Record(ctx context.Context, orgID, userID int64, action string, meta any) {
	m.actions = append(m.actions, action)
	m.metas = append(m.metas, meta)
}

var _ = Describe("Team Service", func() {
	var (
		mockRepo  *MockRepository
		mockAudit *MockRecorder
		service   *team.Service
		identity  internal.Identity
		ctx       context.Context
	)

	BeforeEach(func() {
		mockRepo = newMockRepository()
		mockAudit = &MockRecorder{}
		service = team.NewService(mockRepo, mockAudit, slog.Default())
		identity = internal.Identity{UserID: 7, OrgID: 1}
		ctx = context.Background()
	})

	Describe("List", func() {
		It("should return teams of the organisation with member counts", func() {
			mockRepo.teams = []*teamDatamodel.Team{
				{ID: 1, OrganisationID: 1, Name: "Engineering"},
				{ID: 2, OrganisationID: 2, Name: "Sales"},
			}
			mockRepo.members[1] = []team.AssignedEmployee{{ID: 10}, {ID: 11}}

			teams, err := service.List(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(teams).To(HaveLen(1))
			Expect(teams[0].Name).To(Equal("Engineering"))
			Expect(teams[0].EmployeeCount).To(Equal(int64(2)))
		})
	})

	Describe("Get", func() {
		It("should return the team with its members", func() {
			mockRepo.teams = []*teamDatamodel.Team{{ID: 1, OrganisationID: 1, Name: "Engineering"}}
			mockRepo.members[1] = []team.AssignedEmployee{
				{ID: 10, FirstName: "Ana", LastName: "Silva", Email: "ana@corp.test"},
			}

			detail, err := service.Get(ctx, 1, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Name).To(Equal("Engineering"))
			Expect(detail.Employees).To(HaveLen(1))
			Expect(detail.Employees[0].Email).To(Equal("ana@corp.test"))
		})

		It("should return not found for another organisation's team", func() {
			mockRepo.teams = []*teamDatamodel.Team{{ID: 1, OrganisationID: 2, Name: "Engineering"}}

			_, err := service.Get(ctx, 1, 1)

			Expect(err).To(MatchError(internal.ErrTeamNotFound))
		})
	})

	Describe("Create", func() {
		It("should stamp the caller's organisation and record an audit entry", func() {
			created, err := service.Create(ctx, identity, team.TeamDTO{Name: "Engineering", Description: "builds things"})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeZero())
			Expect(created.OrganisationID).To(Equal(int64(1)))
			Expect(mockAudit.actions).To(ConsistOf(auditlog.ActionTeamCreated))
		})

		It("should reject a payload without a name", func() {
			_, err := service.Create(ctx, identity, team.TeamDTO{Description: "no name"})

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			mockRepo.teams = []*teamDatamodel.Team{{ID: 1, OrganisationID: 1, Name: "Engineering"}}
			mockRepo.members[1] = []team.AssignedEmployee{{ID: 10}}
		})

		It("should delete the team and record an audit entry", func() {
			err := service.Delete(ctx, identity, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.deleted).To(ContainElement(int64(1)))
			Expect(mockAudit.actions).To(ConsistOf(auditlog.ActionTeamDeleted))
		})

		It("should return not found for another organisation's team", func() {
			otherOrg := internal.Identity{UserID: 9, OrgID: 2}

			err := service.Delete(ctx, otherOrg, 1)

			Expect(err).To(MatchError(internal.ErrTeamNotFound))
			Expect(mockRepo.deleted).To(BeEmpty())
		})
	})

	Describe("Assign", func() {
		BeforeEach(func() {
			mockRepo.teams = []*teamDatamodel.Team{{ID: 1, OrganisationID: 1, Name: "Engineering"}}
			mockRepo.orgEmployees[1] = []int64{10, 11, 12}
		})

		It("should assign a batch and record one audit entry", func() {
			err := service.Assign(ctx, identity, 1, team.AssignDTO{EmployeeIDs: []int64{10, 11}})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.assigned[1]).To(Equal([]int64{10, 11}))
			Expect(mockAudit.actions).To(ConsistOf(auditlog.ActionEmployeeAssigned))
		})

		It("should accept the single-id form", func() {
			id := int64(12)

			err := service.Assign(ctx, identity, 1, team.AssignDTO{EmployeeID: &id})

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.assigned[1]).To(Equal([]int64{12}))
		})

		It("should reject an empty id list", func() {
			err := service.Assign(ctx, identity, 1, team.AssignDTO{})

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
			Expect(mockRepo.assigned).To(BeEmpty())
		})

		It("should reject the whole batch when any employee is unknown", func() {
			err := service.Assign(ctx, identity, 1, team.AssignDTO{EmployeeIDs: []int64{10, 999}})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("one or more employees not found"))
			Expect(mockRepo.assigned).To(BeEmpty())
			Expect(mockAudit.actions).To(BeEmpty())
		})

		It("should reject employees belonging to another organisation", func() {
			mockRepo.orgEmployees[2] = []int64{50}

			err := service.Assign(ctx, identity, 1, team.AssignDTO{EmployeeIDs: []int64{50}})

			Expect(err).To(HaveOccurred())
			Expect(mockRepo.assigned).To(BeEmpty())
		})

		It("should return not found when the team belongs to another organisation", func() {
			otherOrg := internal.Identity{UserID: 9, OrgID: 2}
			mockRepo.orgEmployees[2] = []int64{50}

			err := service.Assign(ctx, otherOrg, 1, team.AssignDTO{EmployeeIDs: []int64{50}})

			Expect(err).To(MatchError(internal.ErrTeamNotFound))
		})
	})

	Describe("Unassign", func() {
		It("should remove the pair and record an audit entry", func() {
			err := service.Unassign(ctx, identity, 1, 10)

			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.unassigned).To(ContainElement([2]int64{1, 10}))
			Expect(mockAudit.actions).To(ConsistOf(auditlog.ActionEmployeeUnassigned))
		})

		It("should succeed for a pair that does not exist", func() {
			err := service.Unassign(ctx, identity, 99, 999)

			Expect(err).NotTo(HaveOccurred())
		})
	})
})
