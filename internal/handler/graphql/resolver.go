package graphql

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/loader"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

// Resolver binds schema fields to the domain services.
type Resolver struct {
	authService      auth.AuthService
	employeeService  employee.EmployeeService
	signupService    signup.SignupService
	dashboardService dashboard.DashboardService
	errs             errorPresenter
}

type resolveFn func(p graphql.ResolveParams) (interface{}, error)

// resolve maps any error the field returns to its public form.
func (r *Resolver) resolve(fn resolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		v, err := fn(p)
		if err != nil {
			return nil, r.errs.present(p.Context, p.Info.FieldName, err)
		}
		return v, nil
	}
}

// loadEmployee goes through the request loader when one is attached. A miss
// or a malformed id yields nil.
func (r *Resolver) loadEmployee(ctx context.Context, id string) (*employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return nil, nil
	}
	if l, ok := loader.EmployeeLoaderFromContext(ctx); ok {
		return l.Load(ctx, id)
	}
	e, err := r.employeeService.GetByID(ctx, id)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// remember refreshes the request loader after a write.
func remember(ctx context.Context, e employee.Employee) {
	if l, ok := loader.EmployeeLoaderFromContext(ctx); ok {
		l.Prime(e)
	}
}

func forget(ctx context.Context, ids ...string) {
	if l, ok := loader.EmployeeLoaderFromContext(ctx); ok {
		for _, id := range ids {
			l.Clear(id)
		}
	}
}

func (r *Resolver) userEmployee(p graphql.ResolveParams) (interface{}, error) {
	src, _ := p.Source.(map[string]interface{})
	id, _ := src[linkedEmployeeKey].(string)
	if id == "" {
		return nil, nil
	}
	e, err := r.loadEmployee(p.Context, id)
	if err != nil || e == nil {
		return nil, err
	}
	return presentEmployee(*e), nil
}

// Queries

func (r *Resolver) employees(p graphql.ResolveParams) (interface{}, error) {
	resp, err := r.employeeService.List(p.Context, listRequestFrom(p.Args))
	if err != nil {
		return nil, err
	}
	return presentConnection(resp), nil
}

func (r *Resolver) employee(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	e, err := r.loadEmployee(p.Context, id)
	if err != nil || e == nil {
		return nil, err
	}
	return presentEmployee(*e), nil
}

func (r *Resolver) employeeByEmployeeID(p graphql.ResolveParams) (interface{}, error) {
	code, _ := p.Args["employeeId"].(string)
	e, err := r.employeeService.GetByEmployeeCode(p.Context, code)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	remember(p.Context, e)
	return presentEmployee(e), nil
}

func (r *Resolver) dashboardStats(p graphql.ResolveParams) (interface{}, error) {
	stats, err := r.dashboardService.GetStats(p.Context)
	if err != nil {
		return nil, err
	}
	return presentStats(stats), nil
}

func (r *Resolver) me(p graphql.ResolveParams) (interface{}, error) {
	u, err := r.authService.Me(p.Context)
	if errors.Is(err, auth.ErrAuthRequired) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return presentUser(u), nil
}

func (r *Resolver) departments(p graphql.ResolveParams) (interface{}, error) {
	return r.employeeService.Departments(p.Context)
}

func (r *Resolver) positions(p graphql.ResolveParams) (interface{}, error) {
	return r.employeeService.Positions(p.Context)
}

func (r *Resolver) signupRequests(p graphql.ResolveParams) (interface{}, error) {
	var status *signup.Status
	if s, ok := p.Args["status"].(signup.Status); ok {
		status = &s
	}
	list, err := r.signupService.List(p.Context, status)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, 0, len(list))
	for _, req := range list {
		out = append(out, presentSignupRequest(req))
	}
	return out, nil
}

func (r *Resolver) signupRequestCount(p graphql.ResolveParams) (interface{}, error) {
	n, err := r.signupService.PendingCount(p.Context)
	if err != nil {
		return nil, err
	}
	return int(n), nil
}

// Mutations

func (r *Resolver) login(p graphql.ResolveParams) (interface{}, error) {
	payload, err := r.authService.Login(p.Context, loginRequestFrom(args(p.Args).object("input")))
	if err != nil {
		return nil, err
	}
	return presentAuthPayload(payload), nil
}

func (r *Resolver) register(p graphql.ResolveParams) (interface{}, error) {
	payload, err := r.authService.Register(p.Context, registerRequestFrom(args(p.Args).object("input")))
	if err != nil {
		return nil, err
	}
	return presentAuthPayload(payload), nil
}

func (r *Resolver) createEmployee(p graphql.ResolveParams) (interface{}, error) {
	e, err := r.employeeService.Create(p.Context, createRequestFrom(args(p.Args).object("input")))
	if err != nil {
		return nil, err
	}
	remember(p.Context, e)
	return presentEmployee(e), nil
}

func (r *Resolver) updateEmployee(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	e, err := r.employeeService.Update(p.Context, id, updateRequestFrom(args(p.Args).object("input")))
	if err != nil {
		return nil, err
	}
	remember(p.Context, e)
	return presentEmployee(e), nil
}

func (r *Resolver) deleteEmployee(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	if err := r.employeeService.Delete(p.Context, id); err != nil {
		return nil, err
	}
	forget(p.Context, id)
	return true, nil
}

func (r *Resolver) flagEmployee(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	reason, _ := p.Args["reason"].(string)
	e, err := r.employeeService.Flag(p.Context, id, reason)
	if err != nil {
		return nil, err
	}
	remember(p.Context, e)
	return presentEmployee(e), nil
}

func (r *Resolver) unflagEmployee(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	e, err := r.employeeService.Unflag(p.Context, id)
	if err != nil {
		return nil, err
	}
	remember(p.Context, e)
	return presentEmployee(e), nil
}

func (r *Resolver) bulkDeleteEmployees(p graphql.ResolveParams) (interface{}, error) {
	ids := args(p.Args).stringList("ids")
	n, err := r.employeeService.BulkDelete(p.Context, ids)
	if err != nil {
		return nil, err
	}
	forget(p.Context, ids...)
	return int(n), nil
}

func (r *Resolver) bulkUpdateStatus(p graphql.ResolveParams) (interface{}, error) {
	ids := args(p.Args).stringList("ids")
	status, _ := p.Args["status"].(employee.Status)
	n, err := r.employeeService.BulkUpdateStatus(p.Context, ids, status)
	if err != nil {
		return nil, err
	}
	forget(p.Context, ids...)
	return int(n), nil
}

func (r *Resolver) submitSignupRequest(p graphql.ResolveParams) (interface{}, error) {
	req, err := r.signupService.Submit(p.Context, submitRequestFrom(args(p.Args).object("input")))
	if err != nil {
		return nil, err
	}
	return presentSignupRequest(req), nil
}

func (r *Resolver) approveSignupRequest(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	e, err := r.signupService.Approve(p.Context, id, approveRequestFrom(args(p.Args).object("input")))
	if err != nil {
		return nil, err
	}
	remember(p.Context, e)
	return presentEmployee(e), nil
}

func (r *Resolver) rejectSignupRequest(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	reason, _ := p.Args["reason"].(string)
	req, err := r.signupService.Reject(p.Context, id, reason)
	if err != nil {
		return nil, err
	}
	return presentSignupRequest(req), nil
}
