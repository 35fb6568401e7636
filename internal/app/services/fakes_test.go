package services

import (
	"context"
	"sort"
	"strings"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/repositories"
)

// In-memory store implementations for service tests.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
	for _, user := range users {
		if user.ID >= s.nextID {
			s.nextID = user.ID + 1
		}
		s.users[user.ID] = user
	}
	return s
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (s *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *fakeUserStore) CountStudentsByBranch(_ context.Context, collegeID int64) (map[string]int, error) {
	counts := make(map[string]int)
	for _, user := range s.users {
		if user.RoleType != models.RoleStudent || user.CollegeID == nil || *user.CollegeID != collegeID {
			continue
		}
		branch := "UNSPECIFIED"
		if user.Branch != nil && strings.TrimSpace(*user.Branch) != "" {
			branch = strings.ToUpper(strings.TrimSpace(*user.Branch))
		}
		counts[branch]++
	}
	return counts, nil
}

func (s *fakeUserStore) ListCompanies(_ context.Context) ([]models.User, error) {
	var companies []models.User
	for _, user := range s.users {
		if user.RoleType == models.RoleCompany {
			companies = append(companies, *user)
		}
	}
	return companies, nil
}

func (s *fakeUserStore) ListColleges(_ context.Context) ([]models.User, error) {
	var colleges []models.User
	for _, user := range s.users {
		if user.RoleType == models.RoleCollege {
			colleges = append(colleges, *user)
		}
	}
	sort.Slice(colleges, func(i, j int) bool { return colleges[i].Name < colleges[j].Name })
	return colleges, nil
}

type fakePlacementStore struct {
	records []models.PlacementRecord
	nextID  int64
}

func (s *fakePlacementStore) matches(rec models.PlacementRecord, q repositories.RecordQuery) bool {
	if rec.CollegeID != q.CollegeID {
		return false
	}
	if q.ClassYear != "" && rec.ClassYear != q.ClassYear {
		return false
	}
	if q.Department != "" && rec.Department != q.Department {
		return false
	}
	return true
}

func (s *fakePlacementStore) CountPartition(_ context.Context, collegeID int64, classYear, department string) (int, error) {
	count := 0
	for _, rec := range s.records {
		if rec.CollegeID == collegeID && rec.ClassYear == classYear && rec.Department == department {
			count++
		}
	}
	return count, nil
}

func (s *fakePlacementStore) ReplacePartition(_ context.Context, collegeID int64, classYear, department string, records []models.PlacementRecord, replace bool) error {
	if replace {
		kept := s.records[:0]
		for _, rec := range s.records {
			if rec.CollegeID == collegeID && rec.ClassYear == classYear && rec.Department == department {
				continue
			}
			kept = append(kept, rec)
		}
		s.records = kept
	}
	for _, rec := range records {
		s.nextID++
		rec.ID = s.nextID
		s.records = append(s.records, rec)
	}
	return nil
}

func (s *fakePlacementStore) Find(_ context.Context, q repositories.RecordQuery) ([]models.PlacementRecord, error) {
	var out []models.PlacementRecord
	for _, rec := range s.records {
		if s.matches(rec, q) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *fakePlacementStore) FindPage(ctx context.Context, q repositories.RecordQuery) ([]models.PlacementRecord, int, error) {
	matched, err := s.Find(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].StudentName != matched[j].StudentName {
			return matched[i].StudentName < matched[j].StudentName
		}
		return matched[i].StudentID < matched[j].StudentID
	})

	total := len(matched)
	if q.Skip > 0 {
		if q.Skip >= len(matched) {
			matched = nil
		} else {
			matched = matched[q.Skip:]
		}
	}
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, total, nil
}

func (s *fakePlacementStore) ListPartitions(_ context.Context, collegeID int64) ([][2]string, error) {
	seen := make(map[[2]string]bool)
	var partitions [][2]string
	for _, rec := range s.records {
		if rec.CollegeID != collegeID {
			continue
		}
		key := [2]string{rec.ClassYear, rec.Department}
		if !seen[key] {
			seen[key] = true
			partitions = append(partitions, key)
		}
	}
	return partitions, nil
}

type fakeJobStore struct {
	jobs   []models.Job
	nextID int64
}

func (s *fakeJobStore) Create(_ context.Context, job *models.Job) error {
	s.nextID++
	job.ID = s.nextID
	s.jobs = append(s.jobs, *job)
	return nil
}

func (s *fakeJobStore) GetByID(_ context.Context, id int64) (*models.Job, error) {
	for _, job := range s.jobs {
		if job.ID == id {
			j := job
			return &j, nil
		}
	}
	return nil, repositories.ErrJobNotFound
}

func (s *fakeJobStore) ListByCompany(_ context.Context, companyID int64) ([]models.Job, error) {
	var out []models.Job
	for _, job := range s.jobs {
		if job.CompanyID == companyID {
			out = append(out, job)
		}
	}
	return out, nil
}

func (s *fakeJobStore) ListByCollege(_ context.Context, collegeID int64) ([]models.Job, error) {
	var out []models.Job
	for _, job := range s.jobs {
		if job.CollegeID == collegeID {
			out = append(out, job)
		}
	}
	return out, nil
}

func (s *fakeJobStore) ListOpenByCollege(_ context.Context, collegeID int64) ([]models.Job, error) {
	var out []models.Job
	for _, job := range s.jobs {
		if job.CollegeID == collegeID && job.Status == models.JobStatusOpen {
			out = append(out, job)
		}
	}
	return out, nil
}

type fakePartnershipStore struct {
	partnerships []models.Partnership
	nextID       int64
}

func (s *fakePartnershipStore) Create(_ context.Context, p *models.Partnership) error {
	s.nextID++
	p.ID = s.nextID
	s.partnerships = append(s.partnerships, *p)
	return nil
}

func (s *fakePartnershipStore) GetByID(_ context.Context, id int64) (*models.Partnership, error) {
	for _, p := range s.partnerships {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, repositories.ErrPartnershipNotFound
}

func (s *fakePartnershipStore) UpdateStatus(_ context.Context, id int64, status models.PartnershipStatus) error {
	for i := range s.partnerships {
		if s.partnerships[i].ID == id {
			s.partnerships[i].Status = status
			return nil
		}
	}
	return repositories.ErrPartnershipNotFound
}

func (s *fakePartnershipStore) ListByUser(_ context.Context, userID int64) ([]models.Partnership, error) {
	var out []models.Partnership
	for _, p := range s.partnerships {
		if p.RequesterID == userID || p.RecipientID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePartnershipStore) ActivePartnerIDs(_ context.Context, userID int64) (map[int64]bool, error) {
	partners := make(map[int64]bool)
	for _, p := range s.partnerships {
		if p.Status != models.PartnershipActive {
			continue
		}
		if p.RequesterID == userID {
			partners[p.RecipientID] = true
		} else if p.RecipientID == userID {
			partners[p.RequesterID] = true
		}
	}
	return partners, nil
}

func (s *fakePartnershipStore) HasActiveBetween(_ context.Context, a, b int64) (bool, error) {
	for _, p := range s.partnerships {
		if p.Status != models.PartnershipActive {
			continue
		}
		if (p.RequesterID == a && p.RecipientID == b) || (p.RequesterID == b && p.RecipientID == a) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakePartnershipStore) PairExists(_ context.Context, a, b int64) (bool, error) {
	for _, p := range s.partnerships {
		if (p.RequesterID == a && p.RecipientID == b) || (p.RequesterID == b && p.RecipientID == a) {
			return true, nil
		}
	}
	return false, nil
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func collegeUser(id int64, name string) *models.User {
	return &models.User{ID: id, Name: name, Email: name + "@test.local", RoleType: models.RoleCollege}
}

func companyUser(id int64, name string) *models.User {
	return &models.User{ID: id, Name: name, Email: name + "@test.local", RoleType: models.RoleCompany}
}

func studentUser(id, collegeID int64, branch string) *models.User {
	return &models.User{
		ID:        id,
		Name:      "Student",
		Email:     "student@test.local",
		RoleType:  models.RoleStudent,
		CollegeID: int64Ptr(collegeID),
		Branch:    strPtr(branch),
	}
}

func newPlacementService(users *fakeUserStore, records *fakePlacementStore, jobs *fakeJobStore, partnerships *fakePartnershipStore) *PlacementService {
	if records == nil {
		records = &fakePlacementStore{}
	}
	if jobs == nil {
		jobs = &fakeJobStore{}
	}
	if partnerships == nil {
		partnerships = &fakePartnershipStore{}
	}
	return NewPlacementService(users, records, jobs, partnerships)
}
