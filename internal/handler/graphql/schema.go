package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// Enum values are the domain's own typed constants, so arguments arrive
// already converted and results serialize straight from entities.

var roleEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "Role",
	Description: "User roles for authorization",
	Values: graphql.EnumValueConfigMap{
		"ADMIN":    &graphql.EnumValueConfig{Value: user.RoleAdmin},
		"EMPLOYEE": &graphql.EnumValueConfig{Value: user.RoleEmployee},
	},
})

var genderEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "Gender",
	Description: "Gender options",
	Values: graphql.EnumValueConfigMap{
		"MALE":   &graphql.EnumValueConfig{Value: employee.GenderMale},
		"FEMALE": &graphql.EnumValueConfig{Value: employee.GenderFemale},
		"OTHER":  &graphql.EnumValueConfig{Value: employee.GenderOther},
	},
})

var employeeStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "EmployeeStatus",
	Description: "Employee status",
	Values: graphql.EnumValueConfigMap{
		"ACTIVE":     &graphql.EnumValueConfig{Value: employee.StatusActive},
		"INACTIVE":   &graphql.EnumValueConfig{Value: employee.StatusInactive},
		"ON_LEAVE":   &graphql.EnumValueConfig{Value: employee.StatusOnLeave},
		"TERMINATED": &graphql.EnumValueConfig{Value: employee.StatusTerminated},
	},
})

var sortDirectionEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "SortDirection",
	Description: "Sort direction",
	Values: graphql.EnumValueConfigMap{
		"ASC":  &graphql.EnumValueConfig{Value: employee.SortAsc},
		"DESC": &graphql.EnumValueConfig{Value: employee.SortDesc},
	},
})

var employeeSortFieldEnum = func() *graphql.Enum {
	values := graphql.EnumValueConfigMap{}
	for _, f := range employee.SortFields {
		values[string(f)] = &graphql.EnumValueConfig{Value: f}
	}
	return graphql.NewEnum(graphql.EnumConfig{
		Name:        "EmployeeSortField",
		Description: "Sortable fields for employees",
		Values:      values,
	})
}()

var signupRequestStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "SignupRequestStatus",
	Description: "Signup request status",
	Values: graphql.EnumValueConfigMap{
		"PENDING":  &graphql.EnumValueConfig{Value: signup.StatusPending},
		"APPROVED": &graphql.EnumValueConfig{Value: signup.StatusApproved},
		"REJECTED": &graphql.EnumValueConfig{Value: signup.StatusRejected},
	},
})

var employeeType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Employee",
	Description: "Employee type - main data entity",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"employeeId":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"firstName":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"fullName":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"phone":       &graphql.Field{Type: graphql.String},
		"avatar":      &graphql.Field{Type: graphql.String},
		"age":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"dateOfBirth": &graphql.Field{Type: DateTime},
		"gender":      &graphql.Field{Type: graphql.NewNonNull(genderEnum)},
		"department":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"position":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"class":       &graphql.Field{Type: graphql.String},
		"subjects":    &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"salary":      &graphql.Field{Type: graphql.Float},
		"joinDate":    &graphql.Field{Type: graphql.NewNonNull(DateTime)},
		"status":      &graphql.Field{Type: graphql.NewNonNull(employeeStatusEnum)},
		"isFlagged":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"flagReason":  &graphql.Field{Type: graphql.String},
		"attendance":  &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"address":     &graphql.Field{Type: graphql.String},
		"city":        &graphql.Field{Type: graphql.String},
		"state":       &graphql.Field{Type: graphql.String},
		"country":     &graphql.Field{Type: graphql.String},
		"zipCode":     &graphql.Field{Type: graphql.String},
		"fullAddress": &graphql.Field{Type: graphql.String},
		"createdAt":   &graphql.Field{Type: graphql.NewNonNull(DateTime)},
		"updatedAt":   &graphql.Field{Type: graphql.NewNonNull(DateTime)},
	},
})

var pageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "PageInfo",
	Description: "Pagination info",
	Fields: graphql.Fields{
		"currentPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"totalPages":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"hasNextPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"hasPreviousPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"pageSize":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var employeeConnectionType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "EmployeeConnection",
	Description: "Paginated employee response",
	Fields: graphql.Fields{
		"data":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(employeeType)))},
		"totalCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"pageInfo":   &graphql.Field{Type: graphql.NewNonNull(pageInfoType)},
	},
})

var signupRequestType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "SignupRequest",
	Description: "Signup request type",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"email":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"firstName":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"fullName":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"phone":           &graphql.Field{Type: graphql.String},
		"age":             &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"gender":          &graphql.Field{Type: graphql.NewNonNull(genderEnum)},
		"address":         &graphql.Field{Type: graphql.String},
		"city":            &graphql.Field{Type: graphql.String},
		"state":           &graphql.Field{Type: graphql.String},
		"country":         &graphql.Field{Type: graphql.String},
		"zipCode":         &graphql.Field{Type: graphql.String},
		"status":          &graphql.Field{Type: graphql.NewNonNull(signupRequestStatusEnum)},
		"rejectionReason": &graphql.Field{Type: graphql.String},
		"createdAt":       &graphql.Field{Type: graphql.NewNonNull(DateTime)},
	},
})

var departmentCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DepartmentCount",
	Fields: graphql.Fields{
		"department": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"count":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var dashboardStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "DashboardStats",
	Description: "Dashboard statistics",
	Fields: graphql.Fields{
		"totalEmployees":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"activeEmployees":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"onLeaveEmployees":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"flaggedEmployees":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"averageAttendance": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"departmentCounts":  &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(departmentCountType)))},
	},
})

var paginationInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "PaginationInput",
	Description: "Pagination input",
	Fields: graphql.InputObjectConfigFieldMap{
		"page":     &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: employee.DefaultPage},
		"pageSize": &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: employee.DefaultPageSize},
	},
})

var sortInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "SortInput",
	Description: "Sort input",
	Fields: graphql.InputObjectConfigFieldMap{
		"field":     &graphql.InputObjectFieldConfig{Type: employeeSortFieldEnum},
		"direction": &graphql.InputObjectFieldConfig{Type: sortDirectionEnum, DefaultValue: employee.SortDesc},
	},
})

var employeeFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "EmployeeFilter",
	Description: "Filter input for employees",
	Fields: graphql.InputObjectConfigFieldMap{
		"search":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"department":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":        &graphql.InputObjectFieldConfig{Type: employeeStatusEnum},
		"gender":        &graphql.InputObjectFieldConfig{Type: genderEnum},
		"isFlagged":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"minAge":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"maxAge":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"minAttendance": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"maxAttendance": &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

var createEmployeeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "CreateEmployeeInput",
	Description: "Input for creating an employee",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"avatar":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"age":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"dateOfBirth": &graphql.InputObjectFieldConfig{Type: DateTime},
		"gender":      &graphql.InputObjectFieldConfig{Type: genderEnum},
		"department":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"position":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"class":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"subjects":    &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"salary":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"joinDate":    &graphql.InputObjectFieldConfig{Type: DateTime},
		"status":      &graphql.InputObjectFieldConfig{Type: employeeStatusEnum},
		"address":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"city":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"state":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"country":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"zipCode":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updateEmployeeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "UpdateEmployeeInput",
	Description: "Input for updating an employee",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lastName":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"avatar":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"age":         &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"dateOfBirth": &graphql.InputObjectFieldConfig{Type: DateTime},
		"gender":      &graphql.InputObjectFieldConfig{Type: genderEnum},
		"department":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"position":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"class":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"subjects":    &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"salary":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"status":      &graphql.InputObjectFieldConfig{Type: employeeStatusEnum},
		"isFlagged":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"flagReason":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"attendance":  &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"address":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"city":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"state":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"country":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"zipCode":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var loginInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "LoginInput",
	Description: "Login input",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var registerInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "RegisterInput",
	Description: "Register input",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"role":     &graphql.InputObjectFieldConfig{Type: roleEnum},
	},
})

var signupRequestInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "SignupRequestInput",
	Description: "Input for submitting a signup request",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"age":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"gender":    &graphql.InputObjectFieldConfig{Type: genderEnum},
		"address":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"city":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"state":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"country":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"zipCode":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var approveSignupInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:        "ApproveSignupInput",
	Description: "Input for approving a signup request",
	Fields: graphql.InputObjectConfigFieldMap{
		"department": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"position":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"class":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"salary":     &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

// NewSchema assembles the Query and Mutation roots around r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "User type (for authentication)",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"role":      &graphql.Field{Type: graphql.NewNonNull(roleEnum)},
			"employee":  &graphql.Field{Type: employeeType, Resolve: r.resolve(r.userEmployee)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(DateTime)},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "AuthPayload",
		Description: "Authentication response",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	idArg := &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	idsArg := &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))}
	reasonArg := &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Query",
		Description: "Queries",
		Fields: graphql.Fields{
			"employees": &graphql.Field{
				Type: graphql.NewNonNull(employeeConnectionType),
				Args: graphql.FieldConfigArgument{
					"filter":     &graphql.ArgumentConfig{Type: employeeFilterInput},
					"pagination": &graphql.ArgumentConfig{Type: paginationInput},
					"sort":       &graphql.ArgumentConfig{Type: sortInput},
				},
				Resolve: r.resolve(r.employees),
			},
			"employee": &graphql.Field{
				Type:    employeeType,
				Args:    graphql.FieldConfigArgument{"id": idArg},
				Resolve: r.resolve(r.employee),
			},
			"employeeByEmployeeId": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"employeeId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolve(r.employeeByEmployeeID),
			},
			"dashboardStats": &graphql.Field{
				Type:    graphql.NewNonNull(dashboardStatsType),
				Resolve: r.resolve(r.dashboardStats),
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.resolve(r.me),
			},
			"departments": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
				Resolve: r.resolve(r.departments),
			},
			"positions": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
				Resolve: r.resolve(r.positions),
			},
			"signupRequests": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(signupRequestType))),
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: signupRequestStatusEnum},
				},
				Resolve: r.resolve(r.signupRequests),
			},
			"signupRequestCount": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Int),
				Resolve: r.resolve(r.signupRequestCount),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Mutation",
		Description: "Mutations",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type:    graphql.NewNonNull(authPayloadType),
				Args:    graphql.FieldConfigArgument{"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)}},
				Resolve: r.resolve(r.login),
			},
			"register": &graphql.Field{
				Type:    graphql.NewNonNull(authPayloadType),
				Args:    graphql.FieldConfigArgument{"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(registerInput)}},
				Resolve: r.resolve(r.register),
			},
			"createEmployee": &graphql.Field{
				Type:    graphql.NewNonNull(employeeType),
				Args:    graphql.FieldConfigArgument{"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createEmployeeInput)}},
				Resolve: r.resolve(r.createEmployee),
			},
			"updateEmployee": &graphql.Field{
				Type: graphql.NewNonNull(employeeType),
				Args: graphql.FieldConfigArgument{
					"id":    idArg,
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateEmployeeInput)},
				},
				Resolve: r.resolve(r.updateEmployee),
			},
			"deleteEmployee": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    graphql.FieldConfigArgument{"id": idArg},
				Resolve: r.resolve(r.deleteEmployee),
			},
			"flagEmployee": &graphql.Field{
				Type:    graphql.NewNonNull(employeeType),
				Args:    graphql.FieldConfigArgument{"id": idArg, "reason": reasonArg},
				Resolve: r.resolve(r.flagEmployee),
			},
			"unflagEmployee": &graphql.Field{
				Type:    graphql.NewNonNull(employeeType),
				Args:    graphql.FieldConfigArgument{"id": idArg},
				Resolve: r.resolve(r.unflagEmployee),
			},
			"bulkDeleteEmployees": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Int),
				Args:    graphql.FieldConfigArgument{"ids": idsArg},
				Resolve: r.resolve(r.bulkDeleteEmployees),
			},
			"bulkUpdateStatus": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Args: graphql.FieldConfigArgument{
					"ids":    idsArg,
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(employeeStatusEnum)},
				},
				Resolve: r.resolve(r.bulkUpdateStatus),
			},
			"submitSignupRequest": &graphql.Field{
				Type:    graphql.NewNonNull(signupRequestType),
				Args:    graphql.FieldConfigArgument{"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signupRequestInput)}},
				Resolve: r.resolve(r.submitSignupRequest),
			},
			"approveSignupRequest": &graphql.Field{
				Type: graphql.NewNonNull(employeeType),
				Args: graphql.FieldConfigArgument{
					"id":    idArg,
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(approveSignupInput)},
				},
				Resolve: r.resolve(r.approveSignupRequest),
			},
			"rejectSignupRequest": &graphql.Field{
				Type:    graphql.NewNonNull(signupRequestType),
				Args:    graphql.FieldConfigArgument{"id": idArg, "reason": reasonArg},
				Resolve: r.resolve(r.rejectSignupRequest),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
