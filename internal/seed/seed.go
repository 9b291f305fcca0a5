// Package seed loads the demo directory: thirty employees plus one admin and
// one employee login.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	authservice "github.com/staffhub/staffhub-backend-go/internal/service/auth"
	employeeservice "github.com/staffhub/staffhub-backend-go/internal/service/employee"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminEmail       = "admin@staffhub.com"
	AdminPassword    = "admin123"
	EmployeeEmail    = "john@staffhub.com"
	EmployeePassword = "employee123"
)

var departments = []string{"Engineering", "Design", "Marketing", "Sales", "HR", "Finance", "Operations", "Product"}

var positions = []string{
	"Software Engineer", "Senior Developer", "UI/UX Designer", "Marketing Manager", "Sales Representative",
	"HR Specialist", "Financial Analyst", "Product Manager", "Team Lead", "Director",
}

var subjectSets = [][]string{
	{"Mathematics", "Physics", "Computer Science"},
	{"English", "Literature", "History"},
	{"Biology", "Chemistry", "Environmental Science"},
	{"Economics", "Business Studies", "Accounting"},
	{"Art", "Music", "Drama"},
	{"Physical Education", "Health", "Nutrition"},
}

var streets = []string{"Main", "Oak", "Maple", "Cedar", "Pine"}

type location struct{ city, state, country string }

var locations = []location{
	{"New York", "NY", "USA"},
	{"Los Angeles", "CA", "USA"},
	{"Chicago", "IL", "USA"},
	{"Houston", "TX", "USA"},
	{"Phoenix", "AZ", "USA"},
	{"San Francisco", "CA", "USA"},
	{"Seattle", "WA", "USA"},
	{"Boston", "MA", "USA"},
}

type person struct {
	first, last string
	gender      employee.Gender
	age         int
}

var people = []person{
	{"John", "Doe", employee.GenderMale, 32},
	{"Jane", "Smith", employee.GenderFemale, 28},
	{"Michael", "Johnson", employee.GenderMale, 45},
	{"Emily", "Williams", employee.GenderFemale, 35},
	{"David", "Brown", employee.GenderMale, 29},
	{"Sarah", "Davis", employee.GenderFemale, 41},
	{"James", "Miller", employee.GenderMale, 38},
	{"Jennifer", "Wilson", employee.GenderFemale, 33},
	{"Robert", "Moore", employee.GenderMale, 52},
	{"Lisa", "Taylor", employee.GenderFemale, 26},
	{"William", "Anderson", employee.GenderMale, 44},
	{"Jessica", "Thomas", employee.GenderFemale, 31},
	{"Daniel", "Jackson", employee.GenderMale, 36},
	{"Amanda", "White", employee.GenderFemale, 27},
	{"Christopher", "Harris", employee.GenderMale, 48},
	{"Ashley", "Martin", employee.GenderFemale, 34},
	{"Matthew", "Garcia", employee.GenderMale, 30},
	{"Stephanie", "Martinez", employee.GenderFemale, 39},
	{"Andrew", "Robinson", employee.GenderMale, 42},
	{"Nicole", "Clark", employee.GenderFemale, 25},
	{"Joshua", "Rodriguez", employee.GenderMale, 37},
	{"Megan", "Lewis", employee.GenderFemale, 29},
	{"Kevin", "Lee", employee.GenderMale, 46},
	{"Rachel", "Walker", employee.GenderFemale, 32},
	{"Brian", "Hall", employee.GenderMale, 40},
	{"Lauren", "Allen", employee.GenderFemale, 28},
	{"Justin", "Young", employee.GenderMale, 35},
	{"Samantha", "King", employee.GenderFemale, 43},
	{"Ryan", "Wright", employee.GenderMale, 31},
	{"Brittany", "Scott", employee.GenderFemale, 24},
}

type Seeder struct {
	tx        database.Transactor
	employees employee.EmployeeRepository
	users     user.UserRepository
	logger    *slog.Logger
	rand      *rand.Rand
	hashCost  int
}

type Option func(*Seeder)

// WithRand fixes the source used for phone numbers, dates, salaries and
// attendance.
func WithRand(r *rand.Rand) Option {
	return func(s *Seeder) { s.rand = r }
}

func WithHashCost(cost int) Option {
	return func(s *Seeder) { s.hashCost = cost }
}

func NewSeeder(tx database.Transactor, employees employee.EmployeeRepository, users user.UserRepository, logger *slog.Logger, opts ...Option) *Seeder {
	s := &Seeder{
		tx:        tx,
		employees: employees,
		users:     users,
		logger:    logger,
		rand:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		hashCost:  authservice.HashCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run inserts the demo data in one transaction. It reports false without
// writing anything when the admin login already exists.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	exists, err := s.users.ExistsByEmail(ctx, AdminEmail)
	if err != nil {
		return false, fmt.Errorf("check admin user: %w", err)
	}
	if exists {
		s.logger.InfoContext(ctx, "seed skipped, admin user already exists", slog.String("email", AdminEmail))
		return false, nil
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), s.hashCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	employeeHash, err := bcrypt.GenerateFromPassword([]byte(EmployeePassword), s.hashCost)
	if err != nil {
		return false, fmt.Errorf("hash employee password: %w", err)
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var first employee.Employee
		for i := range people {
			created, err := employeeservice.CreateWithNextCode(txCtx, s.employees, s.employee(i))
			if err != nil {
				return fmt.Errorf("create employee %d: %w", i+1, err)
			}
			if i == 0 {
				first = created
			}
		}

		if _, err := s.users.Create(txCtx, user.User{
			Email:        AdminEmail,
			PasswordHash: string(adminHash),
			Role:         user.RoleAdmin,
		}); err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}

		if _, err := s.users.Create(txCtx, user.User{
			Email:        EmployeeEmail,
			PasswordHash: string(employeeHash),
			Role:         user.RoleEmployee,
			EmployeeID:   &first.ID,
		}); err != nil {
			return fmt.Errorf("create employee user: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "database seeded",
		slog.Int("employees", len(people)),
		slog.String("admin", AdminEmail),
		slog.String("employee", EmployeeEmail),
	)
	return true, nil
}

func (s *Seeder) employee(i int) employee.Employee {
	p := people[i]
	loc := locations[i%len(locations)]

	status := employee.StatusActive
	switch {
	case i >= 28:
		status = employee.StatusInactive
	case i >= 25:
		status = employee.StatusOnLeave
	}

	var flagReason *string
	switch i {
	case 5:
		flagReason = ptr("Performance review pending")
	case 15:
		flagReason = ptr("Documents incomplete")
	}

	dob := s.dateBetween(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC))
	salary := decimal.NewFromFloat(50000 + s.rand.Float64()*100000).Round(2)

	return employee.Employee{
		FirstName:   p.first,
		LastName:    p.last,
		Email:       strings.ToLower(p.first) + "." + strings.ToLower(p.last) + "@staffhub.com",
		Phone:       ptr(fmt.Sprintf("+1-%d-%d-%d", 100+s.rand.IntN(900), 100+s.rand.IntN(900), 1000+s.rand.IntN(9000))),
		Avatar:      ptr(employee.DefaultAvatar(p.first, p.last)),
		Age:         p.age,
		DateOfBirth: &dob,
		Gender:      p.gender,
		Department:  departments[i%len(departments)],
		Position:    positions[i%len(positions)],
		Class:       ptr(fmt.Sprintf("Class %c", 'A'+rune(i%5))),
		Subjects:    append([]string(nil), subjectSets[i%len(subjectSets)]...),
		Salary:      &salary,
		JoinDate:    s.dateBetween(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)),
		Status:      status,
		IsFlagged:   flagReason != nil,
		FlagReason:  flagReason,
		Attendance:  float64(int((85+s.rand.Float64()*15)*10+0.5)) / 10,
		Address:     ptr(fmt.Sprintf("%d %s Street", 100+s.rand.IntN(9900), streets[i%len(streets)])),
		City:        ptr(loc.city),
		State:       ptr(loc.state),
		Country:     ptr(loc.country),
		ZipCode:     ptr(fmt.Sprintf("%d", 10000+s.rand.IntN(89999))),
	}
}

func (s *Seeder) dateBetween(start, end time.Time) time.Time {
	span := end.Sub(start)
	return start.Add(time.Duration(s.rand.Int64N(int64(span))))
}

func ptr[T any](v T) *T {
	return &v
}
