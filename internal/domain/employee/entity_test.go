package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEmployee_FullName(t *testing.T) {
	e := Employee{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", e.FullName())
}

func TestEmployee_FullAddress(t *testing.T) {
	e := Employee{
		Address: strPtr("1 Main St"),
		City:    strPtr("Austin"),
		State:   strPtr(""),
		ZipCode: strPtr("78701"),
		Country: strPtr("USA"),
	}
	require.NotNil(t, e.FullAddress())
	assert.Equal(t, "1 Main St, Austin, 78701, USA", *e.FullAddress())

	assert.Nil(t, Employee{}.FullAddress())
}

func TestDefaultAvatar(t *testing.T) {
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=JaneDoe", DefaultAvatar("Jane", "Doe"))
}

func TestEmployeeCode(t *testing.T) {
	assert.Equal(t, "EMP001", NextCode(0))
	assert.Equal(t, "EMP031", NextCode(30))
	assert.Equal(t, "EMP1000", NextCode(999))

	n, ok := ParseCode("EMP042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	n, ok = ParseCode("EMP999999999")
	assert.True(t, ok)
	assert.Equal(t, 999999999, n)

	for _, bad := range []string{"", "EMP", "EMP-1", "EMP+1", "X001", "emp001", "EMP1234567890"} {
		_, ok := ParseCode(bad)
		assert.False(t, ok, bad)
	}
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, GenderOther.Valid())
	assert.False(t, Gender("male").Valid())
	assert.True(t, StatusOnLeave.Valid())
	assert.False(t, Status("RETIRED").Valid())
	assert.True(t, SortBySalary.Valid())
	assert.False(t, SortField("PHONE").Valid())
}

func TestListEmployeesRequest_Normalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req := ListEmployeesRequest{}
		req.Normalize()
		assert.Equal(t, 1, req.Page)
		assert.Equal(t, 10, req.PageSize)
		assert.Equal(t, SortByCreatedAt, req.SortBy)
		assert.Equal(t, SortDesc, req.SortOrder)
		assert.Equal(t, 0, req.Offset())
	})

	t.Run("clamps page size", func(t *testing.T) {
		req := ListEmployeesRequest{Page: 3, PageSize: 500, SortBy: "BOGUS", SortOrder: "asc"}
		req.Normalize()
		assert.Equal(t, 100, req.PageSize)
		assert.Equal(t, SortByCreatedAt, req.SortBy)
		assert.Equal(t, SortAsc, req.SortOrder)
		assert.Equal(t, 200, req.Offset())
	})

	t.Run("drops empty search", func(t *testing.T) {
		req := ListEmployeesRequest{Filter: EmployeeFilter{Search: strPtr(""), Department: strPtr("")}}
		req.Normalize()
		assert.Nil(t, req.Filter.Search)
		assert.Nil(t, req.Filter.Department)
	})
}

func TestNewPageInfo(t *testing.T) {
	info := NewPageInfo(2, 10, 25)
	assert.Equal(t, PageInfo{CurrentPage: 2, TotalPages: 3, HasNextPage: true, HasPreviousPage: true, PageSize: 10}, info)

	empty := NewPageInfo(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNextPage)
	assert.False(t, empty.HasPreviousPage)
}

func TestUpdateEmployeeRequest_RestrictedField(t *testing.T) {
	salary := decimal.NewFromInt(1000)
	status := StatusInactive
	attendance := 90.0

	field, ok := (&UpdateEmployeeRequest{FirstName: strPtr("A")}).RestrictedField()
	assert.False(t, ok)
	assert.Empty(t, field)

	field, ok = (&UpdateEmployeeRequest{Attendance: &attendance, Status: &status, Salary: &salary}).RestrictedField()
	assert.True(t, ok)
	assert.Equal(t, "salary", field)

	field, _ = (&UpdateEmployeeRequest{Attendance: &attendance, Status: &status}).RestrictedField()
	assert.Equal(t, "status", field)
}

func TestUpdateEmployeeRequest_Apply(t *testing.T) {
	e := Employee{FirstName: "Old", IsFlagged: true, FlagReason: strPtr("late")}
	unflag := false
	subjects := []string{"Math", "Physics"}

	req := UpdateEmployeeRequest{FirstName: strPtr("New"), IsFlagged: &unflag, Subjects: &subjects}
	req.Apply(&e)

	assert.Equal(t, "New", e.FirstName)
	assert.False(t, e.IsFlagged)
	assert.Nil(t, e.FlagReason)
	assert.Equal(t, []string{"Math", "Physics"}, e.Subjects)

	subjects[0] = "Changed"
	assert.Equal(t, "Math", e.Subjects[0])
}

func TestUpdateEmployeeRequest_ValidateFlag(t *testing.T) {
	yes, no := true, false
	flagged := Employee{IsFlagged: true, FlagReason: strPtr("late")}
	clean := Employee{}

	tests := []struct {
		name    string
		current Employee
		req     UpdateEmployeeRequest
		wantErr bool
	}{
		{"flag without reason", clean, UpdateEmployeeRequest{IsFlagged: &yes}, true},
		{"flag with blank reason", clean, UpdateEmployeeRequest{IsFlagged: &yes, FlagReason: strPtr("  ")}, true},
		{"flag with reason", clean, UpdateEmployeeRequest{IsFlagged: &yes, FlagReason: strPtr("audit")}, false},
		{"keeps existing reason", flagged, UpdateEmployeeRequest{IsFlagged: &yes}, false},
		{"blanks existing reason", flagged, UpdateEmployeeRequest{FlagReason: strPtr("")}, true},
		{"unflag", flagged, UpdateEmployeeRequest{IsFlagged: &no}, false},
		{"reason on unflagged record", clean, UpdateEmployeeRequest{FlagReason: strPtr("ignored")}, false},
		{"untouched", clean, UpdateEmployeeRequest{FirstName: strPtr("New")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.ValidateFlag(tt.current)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrFlagReasonRequired)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{FirstName: "A", LastName: "B", Email: "a@b.co", Age: 30, Department: "HR", Position: "Lead"}
	assert.NoError(t, valid.Validate())

	negative := decimal.NewFromInt(-1)
	bad := CreateEmployeeRequest{Email: "nope", Age: -1, Salary: &negative}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firstName")
	assert.Contains(t, err.Error(), "salary")
}

func TestRestrictedFieldError(t *testing.T) {
	err := &RestrictedFieldError{Field: "salary"}
	assert.ErrorIs(t, err, ErrRestrictedField)
	assert.Equal(t, "you don't have permission to update salary", err.Error())
}
