package graphql

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// The executor has already coerced every argument: enums carry domain
// values, absent and null input fields are missing from the map.
type args map[string]interface{}

func (a args) object(key string) args {
	if m, ok := a[key].(map[string]interface{}); ok {
		return m
	}
	return args{}
}

func (a args) str(key string) string {
	s, _ := a[key].(string)
	return s
}

func (a args) optString(key string) *string {
	if s, ok := a[key].(string); ok {
		return &s
	}
	return nil
}

func (a args) num(key string) int {
	n, _ := a.optInt(key)
	return n
}

func (a args) optInt(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func (a args) optIntPtr(key string) *int {
	if n, ok := a.optInt(key); ok {
		return &n
	}
	return nil
}

func (a args) optFloat(key string) *float64 {
	switch v := a[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func (a args) optBool(key string) *bool {
	if b, ok := a[key].(bool); ok {
		return &b
	}
	return nil
}

func (a args) optTime(key string) *time.Time {
	if t, ok := a[key].(time.Time); ok {
		return &t
	}
	return nil
}

// optMoney reads a Float as a two-decimal amount.
func (a args) optMoney(key string) *decimal.Decimal {
	f := a.optFloat(key)
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f).Round(2)
	return &d
}

func (a args) stringList(key string) []string {
	raw, ok := a[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (a args) optStrings(key string) *[]string {
	if _, ok := a[key].([]interface{}); !ok {
		return nil
	}
	s := a.stringList(key)
	return &s
}

func (a args) optGender(key string) *employee.Gender {
	if g, ok := a[key].(employee.Gender); ok {
		return &g
	}
	return nil
}

func (a args) optStatus(key string) *employee.Status {
	if s, ok := a[key].(employee.Status); ok {
		return &s
	}
	return nil
}

func listRequestFrom(a args) employee.ListEmployeesRequest {
	filter := a.object("filter")
	pagination := a.object("pagination")
	sort := a.object("sort")

	req := employee.ListEmployeesRequest{
		Filter: employee.EmployeeFilter{
			Search:        filter.optString("search"),
			Department:    filter.optString("department"),
			Status:        filter.optStatus("status"),
			Gender:        filter.optGender("gender"),
			IsFlagged:     filter.optBool("isFlagged"),
			MinAge:        filter.optIntPtr("minAge"),
			MaxAge:        filter.optIntPtr("maxAge"),
			MinAttendance: filter.optFloat("minAttendance"),
			MaxAttendance: filter.optFloat("maxAttendance"),
		},
		Page:     pagination.num("page"),
		PageSize: pagination.num("pageSize"),
	}
	if f, ok := sort["field"].(employee.SortField); ok {
		req.SortBy = f
	}
	if d, ok := sort["direction"].(employee.SortDirection); ok {
		req.SortOrder = d
	}
	return req
}

func createRequestFrom(in args) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:   in.str("firstName"),
		LastName:    in.str("lastName"),
		Email:       in.str("email"),
		Phone:       in.optString("phone"),
		Avatar:      in.optString("avatar"),
		Age:         in.num("age"),
		DateOfBirth: in.optTime("dateOfBirth"),
		Gender:      in.optGender("gender"),
		Department:  in.str("department"),
		Position:    in.str("position"),
		Class:       in.optString("class"),
		Subjects:    in.stringList("subjects"),
		Salary:      in.optMoney("salary"),
		JoinDate:    in.optTime("joinDate"),
		Status:      in.optStatus("status"),
		Address:     in.optString("address"),
		City:        in.optString("city"),
		State:       in.optString("state"),
		Country:     in.optString("country"),
		ZipCode:     in.optString("zipCode"),
	}
}

func updateRequestFrom(in args) employee.UpdateEmployeeRequest {
	return employee.UpdateEmployeeRequest{
		FirstName:   in.optString("firstName"),
		LastName:    in.optString("lastName"),
		Email:       in.optString("email"),
		Phone:       in.optString("phone"),
		Avatar:      in.optString("avatar"),
		Age:         in.optIntPtr("age"),
		DateOfBirth: in.optTime("dateOfBirth"),
		Gender:      in.optGender("gender"),
		Department:  in.optString("department"),
		Position:    in.optString("position"),
		Class:       in.optString("class"),
		Subjects:    in.optStrings("subjects"),
		Salary:      in.optMoney("salary"),
		Status:      in.optStatus("status"),
		IsFlagged:   in.optBool("isFlagged"),
		FlagReason:  in.optString("flagReason"),
		Attendance:  in.optFloat("attendance"),
		Address:     in.optString("address"),
		City:        in.optString("city"),
		State:       in.optString("state"),
		Country:     in.optString("country"),
		ZipCode:     in.optString("zipCode"),
	}
}

func submitRequestFrom(in args) signup.SubmitRequest {
	return signup.SubmitRequest{
		Email:     in.str("email"),
		Password:  in.str("password"),
		FirstName: in.str("firstName"),
		LastName:  in.str("lastName"),
		Phone:     in.optString("phone"),
		Age:       in.num("age"),
		Gender:    in.optGender("gender"),
		Address:   in.optString("address"),
		City:      in.optString("city"),
		State:     in.optString("state"),
		Country:   in.optString("country"),
		ZipCode:   in.optString("zipCode"),
	}
}

func approveRequestFrom(in args) signup.ApproveRequest {
	return signup.ApproveRequest{
		Department: in.str("department"),
		Position:   in.str("position"),
		Class:      in.optString("class"),
		Salary:     in.optMoney("salary"),
	}
}

func loginRequestFrom(in args) auth.LoginRequest {
	return auth.LoginRequest{
		Email:    in.str("email"),
		Password: in.str("password"),
	}
}

func registerRequestFrom(in args) auth.RegisterRequest {
	req := auth.RegisterRequest{
		Email:    in.str("email"),
		Password: in.str("password"),
	}
	if role, ok := in["role"].(user.Role); ok {
		req.Role = &role
	}
	return req
}
