package graphql

import (
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// linkedEmployeeKey carries User.employeeId to the employee field resolver.
// It is not part of the schema.
const linkedEmployeeKey = "__linkedEmployeeId"

func presentEmployee(e employee.Employee) map[string]interface{} {
	var salary interface{}
	if e.Salary != nil {
		salary = e.Salary.InexactFloat64()
	}
	return map[string]interface{}{
		"id":          e.ID,
		"employeeId":  e.EmployeeCode,
		"firstName":   e.FirstName,
		"lastName":    e.LastName,
		"fullName":    e.FullName(),
		"email":       e.Email,
		"phone":       e.Phone,
		"avatar":      e.Avatar,
		"age":         e.Age,
		"dateOfBirth": e.DateOfBirth,
		"gender":      e.Gender,
		"department":  e.Department,
		"position":    e.Position,
		"class":       e.Class,
		"subjects":    e.Subjects,
		"salary":      salary,
		"joinDate":    e.JoinDate,
		"status":      e.Status,
		"isFlagged":   e.IsFlagged,
		"flagReason":  e.FlagReason,
		"attendance":  e.Attendance,
		"address":     e.Address,
		"city":        e.City,
		"state":       e.State,
		"country":     e.Country,
		"zipCode":     e.ZipCode,
		"fullAddress": e.FullAddress(),
		"createdAt":   e.CreatedAt,
		"updatedAt":   e.UpdatedAt,
	}
}

func presentEmployees(list []employee.Employee) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(list))
	for _, e := range list {
		out = append(out, presentEmployee(e))
	}
	return out
}

func presentUser(u user.User) map[string]interface{} {
	m := map[string]interface{}{
		"id":        u.ID,
		"email":     u.Email,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
	}
	if u.EmployeeID != nil {
		m[linkedEmployeeKey] = *u.EmployeeID
	}
	return m
}

func presentAuthPayload(p auth.AuthPayload) map[string]interface{} {
	return map[string]interface{}{
		"token": p.Token,
		"user":  presentUser(p.User),
	}
}

func presentSignupRequest(r signup.Request) map[string]interface{} {
	return map[string]interface{}{
		"id":              r.ID,
		"email":           r.Email,
		"firstName":       r.FirstName,
		"lastName":        r.LastName,
		"fullName":        r.FullName(),
		"phone":           r.Phone,
		"age":             r.Age,
		"gender":          r.Gender,
		"address":         r.Address,
		"city":            r.City,
		"state":           r.State,
		"country":         r.Country,
		"zipCode":         r.ZipCode,
		"status":          r.Status,
		"rejectionReason": r.RejectionReason,
		"createdAt":       r.CreatedAt,
	}
}

func presentConnection(resp employee.ListEmployeesResponse) map[string]interface{} {
	return map[string]interface{}{
		"data":       presentEmployees(resp.Data),
		"totalCount": int(resp.TotalCount),
		"pageInfo": map[string]interface{}{
			"currentPage":     resp.PageInfo.CurrentPage,
			"totalPages":      resp.PageInfo.TotalPages,
			"hasNextPage":     resp.PageInfo.HasNextPage,
			"hasPreviousPage": resp.PageInfo.HasPreviousPage,
			"pageSize":        resp.PageInfo.PageSize,
		},
	}
}

func presentStats(s dashboard.Stats) map[string]interface{} {
	counts := make([]map[string]interface{}, 0, len(s.DepartmentCounts))
	for _, dc := range s.DepartmentCounts {
		counts = append(counts, map[string]interface{}{
			"department": dc.Department,
			"count":      int(dc.Count),
		})
	}
	return map[string]interface{}{
		"totalEmployees":    int(s.TotalEmployees),
		"activeEmployees":   int(s.ActiveEmployees),
		"onLeaveEmployees":  int(s.OnLeaveEmployees),
		"flaggedEmployees":  int(s.FlaggedEmployees),
		"averageAttendance": s.AverageAttendance,
		"departmentCounts":  counts,
	}
}
