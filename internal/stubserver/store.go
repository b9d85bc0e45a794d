package stubserver

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"orgconsole/internal/models"
)

// User is a stub-only login account. The real backend owns users; the stub
// just needs enough to issue tokens.
type User struct {
	ID             int
	Email          string
	PasswordHash   string
	Role           string
	OrganizationID int
}

// Store keeps every record in memory behind one mutex. It stands in for the
// unseen backend's database during tests and local development.
type Store struct {
	mu sync.RWMutex

	users         map[int]User
	organizations map[int]models.Organization
	sites         map[int]models.Site
	departments   map[int]models.Department
	designations  map[int]models.Designation
	employees     map[int]models.Employee
	zones         map[int]models.Zone
	locations     map[int]models.Location
	gateways      map[int]models.Gateway

	nextID int
}

func NewStore() *Store {
	return &Store{
		users:         map[int]User{},
		organizations: map[int]models.Organization{},
		sites:         map[int]models.Site{},
		departments:   map[int]models.Department{},
		designations:  map[int]models.Designation{},
		employees:     map[int]models.Employee{},
		zones:         map[int]models.Zone{},
		locations:     map[int]models.Location{},
		gateways:      map[int]models.Gateway{},
		nextID:        1,
	}
}

func (s *Store) next() int {
	id := s.nextID
	s.nextID++
	return id
}

// Seeded returns a store with two organizations, an admin login per org and
// a little starter data, enough to click around the dashboard locally.
func Seeded() *Store {
	s := NewStore()
	now := time.Now()

	acme := models.Organization{ID: s.next(), Name: "Acme Industries", CreatedAt: now, UpdatedAt: now}
	globex := models.Organization{ID: s.next(), Name: "Globex Corp", CreatedAt: now, UpdatedAt: now}
	s.organizations[acme.ID] = acme
	s.organizations[globex.ID] = globex

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := User{ID: s.next(), Email: "admin@acme.test", PasswordHash: string(hash), Role: "admin", OrganizationID: acme.ID}
	other := User{ID: s.next(), Email: "admin@globex.test", PasswordHash: string(hash), Role: "admin", OrganizationID: globex.ID}
	s.users[admin.ID] = admin
	s.users[other.ID] = other

	hq := models.Site{
		ID: s.next(), OrganizationID: acme.ID,
		SiteName: "Head Office", SiteCode: "HO",
		Address: "1 Industrial Estate", City: "Pune", State: "Maharashtra",
		Country: "India", Pincode: "411001", IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	}
	s.sites[hq.ID] = hq

	eng := models.Department{
		ID: s.next(), OrganizationID: acme.ID, SiteID: hq.ID,
		DepartmentName: "Engineering", DepartmentCode: "ENG",
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	s.departments[eng.ID] = eng

	lead := models.Designation{
		ID: s.next(), OrganizationID: acme.ID,
		DesignationName: "Team Lead", DesignationCode: "TL", Level: 5,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	s.designations[lead.ID] = lead

	return s
}

// userByEmail looks up a login account.
func (s *Store) userByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

func (s *Store) userByID(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// sortedIDs returns map keys ascending so paginated listings are stable.
func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
