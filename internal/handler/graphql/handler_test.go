package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/repository/memory"
	authservice "github.com/staffhub/staffhub-backend-go/internal/service/auth"
	dashboardservice "github.com/staffhub/staffhub-backend-go/internal/service/dashboard"
	employeeservice "github.com/staffhub/staffhub-backend-go/internal/service/employee"
	signupservice "github.com/staffhub/staffhub-backend-go/internal/service/signup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	handler   *Handler
	users     user.UserRepository
	employees employee.EmployeeRepository
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEnv(t *testing.T, opts Options) testEnv {
	t.Helper()
	store := memory.NewStore()
	tx := memory.NewTransactor(store)
	employees := memory.NewEmployeeRepository(store)
	users := memory.NewUserRepository(store)
	signups := memory.NewSignupRequestRepository(store)

	jwtService, err := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	require.NoError(t, err)

	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	h, err := NewHandler(Services{
		Auth:      authservice.NewAuthService(users, jwtService),
		Employee:  employeeservice.NewEmployeeService(tx, employees, users),
		Signup:    signupservice.NewSignupService(tx, signups, users, employees),
		Dashboard: dashboardservice.NewDashboardService(memory.NewDashboardRepository(store)),
	}, employees, opts)
	require.NoError(t, err)

	return testEnv{handler: h, users: users, employees: employees}
}

func (env testEnv) createUser(t *testing.T, email, password string, role user.Role, employeeID *string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := env.users.Create(context.Background(), user.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		EmployeeID:   employeeID,
	})
	require.NoError(t, err)
	return u
}

func principalCtx(u user.User) context.Context {
	return auth.WithPrincipal(context.Background(), auth.Principal{
		UserID:     u.ID,
		Email:      u.Email,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
	})
}

func adminCtx() context.Context {
	return auth.WithPrincipal(context.Background(), auth.Principal{UserID: uuid.NewString(), Role: user.RoleAdmin})
}

type gqlError struct {
	Message    string                 `json:"message"`
	Path       []interface{}          `json:"path"`
	Extensions map[string]interface{} `json:"extensions"`
}

type gqlResponse struct {
	status int
	Data   map[string]interface{} `json:"data"`
	Errors []gqlError             `json:"errors"`
}

func (r gqlResponse) code() string {
	if len(r.Errors) == 0 {
		return ""
	}
	code, _ := r.Errors[0].Extensions["code"].(string)
	return code
}

func (env testEnv) exec(t *testing.T, ctx context.Context, query string, vars map[string]interface{}) gqlResponse {
	t.Helper()
	status, result := env.handler.Execute(ctx, Request{Query: query, Variables: vars}, false)
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	resp := gqlResponse{status: status}
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

const createEmployeeMutation = `
mutation Create($input: CreateEmployeeInput!) {
  createEmployee(input: $input) {
    id employeeId fullName email gender status avatar subjects salary attendance fullAddress joinDate
  }
}`

func employeeInput(first, email, department string) map[string]interface{} {
	return map[string]interface{}{
		"firstName":  first,
		"lastName":   "Doe",
		"email":      email,
		"age":        30,
		"department": department,
		"position":   "Engineer",
	}
}

func (env testEnv) mustCreateEmployee(t *testing.T, input map[string]interface{}) map[string]interface{} {
	t.Helper()
	resp := env.exec(t, adminCtx(), createEmployeeMutation, map[string]interface{}{"input": input})
	require.Empty(t, resp.Errors)
	return resp.Data["createEmployee"].(map[string]interface{})
}

func TestHandler_CreateEmployee_Defaults(t *testing.T) {
	env := newTestEnv(t, Options{})

	input := employeeInput("Jane", "jane@staffhub.com", "Engineering")
	input["salary"] = 55000.5
	input["city"] = "Austin"
	input["country"] = "USA"
	e := env.mustCreateEmployee(t, input)

	assert.Equal(t, "EMP001", e["employeeId"])
	assert.Equal(t, "Jane Doe", e["fullName"])
	assert.Equal(t, "OTHER", e["gender"])
	assert.Equal(t, "ACTIVE", e["status"])
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=JaneDoe", e["avatar"])
	assert.Equal(t, []interface{}{}, e["subjects"])
	assert.Equal(t, 55000.5, e["salary"])
	assert.Equal(t, "Austin, USA", e["fullAddress"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, e["joinDate"])

	second := env.mustCreateEmployee(t, employeeInput("John", "john@staffhub.com", "Sales"))
	assert.Equal(t, "EMP002", second["employeeId"])
}

func TestHandler_CreateEmployee_Errors(t *testing.T) {
	env := newTestEnv(t, Options{})
	vars := map[string]interface{}{"input": employeeInput("Jane", "jane@staffhub.com", "Engineering")}

	resp := env.exec(t, context.Background(), createEmployeeMutation, vars)
	assert.Equal(t, CodeUnauthenticated, resp.code())
	assert.Equal(t, "Authentication required", resp.Errors[0].Message)

	member := env.createUser(t, "member@staffhub.com", "secret123", user.RoleEmployee, nil)
	resp = env.exec(t, principalCtx(member), createEmployeeMutation, vars)
	assert.Equal(t, CodeForbidden, resp.code())
	assert.Equal(t, "Admin access required", resp.Errors[0].Message)

	env.mustCreateEmployee(t, employeeInput("Jane", "jane@staffhub.com", "Engineering"))
	resp = env.exec(t, adminCtx(), createEmployeeMutation, vars)
	assert.Equal(t, CodeBadUserInput, resp.code())
	assert.Equal(t, "Email already in use", resp.Errors[0].Message)

	bad := employeeInput("Jane", "not-an-email", "Engineering")
	resp = env.exec(t, adminCtx(), createEmployeeMutation, map[string]interface{}{"input": bad})
	assert.Equal(t, CodeBadUserInput, resp.code())
	assert.Contains(t, resp.Errors[0].Extensions["fields"], "email")
}

func TestHandler_EmployeesQuery(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.mustCreateEmployee(t, employeeInput("Alice", "alice@staffhub.com", "Engineering"))
	env.mustCreateEmployee(t, employeeInput("Bob", "bob@staffhub.com", "Marketing"))
	env.mustCreateEmployee(t, employeeInput("Carol", "carol@staffhub.com", "Engineering"))
	env.mustCreateEmployee(t, employeeInput("Dave", "dave@staffhub.com", "Sales"))

	const query = `{
	  employees(filter: {search: "eng"}, pagination: {page: 1, pageSize: 5}, sort: {field: DEPARTMENT, direction: ASC}) {
	    totalCount
	    data { firstName department }
	    pageInfo { currentPage totalPages hasNextPage hasPreviousPage pageSize }
	  }
	}`
	resp := env.exec(t, context.Background(), query, nil)
	require.Empty(t, resp.Errors)

	conn := resp.Data["employees"].(map[string]interface{})
	assert.EqualValues(t, 4, conn["totalCount"], "every seeded position is Engineer")
	data := conn["data"].([]interface{})
	require.Len(t, data, 4)
	assert.Equal(t, "Engineering", data[0].(map[string]interface{})["department"])
	assert.Equal(t, "Sales", data[3].(map[string]interface{})["department"])

	pageInfo := conn["pageInfo"].(map[string]interface{})
	assert.EqualValues(t, 1, pageInfo["totalPages"])
	assert.Equal(t, false, pageInfo["hasNextPage"])
	assert.EqualValues(t, 5, pageInfo["pageSize"])

	t.Run("pagination defaults and clamp", func(t *testing.T) {
		resp := env.exec(t, context.Background(), `{ employees(pagination: {pageSize: 500}) { data { id } pageInfo { pageSize currentPage } } }`, nil)
		require.Empty(t, resp.Errors)
		pageInfo := resp.Data["employees"].(map[string]interface{})["pageInfo"].(map[string]interface{})
		assert.EqualValues(t, 100, pageInfo["pageSize"])
		assert.EqualValues(t, 1, pageInfo["currentPage"])
	})

	t.Run("filter by department and pages", func(t *testing.T) {
		resp := env.exec(t, context.Background(), `
		query List($page: Int) {
		  employees(filter: {department: "Engineering"}, pagination: {page: $page, pageSize: 1}) {
		    totalCount data { firstName } pageInfo { hasNextPage hasPreviousPage }
		  }
		}`, map[string]interface{}{"page": 2})
		require.Empty(t, resp.Errors)
		conn := resp.Data["employees"].(map[string]interface{})
		assert.EqualValues(t, 2, conn["totalCount"])
		assert.Len(t, conn["data"], 1)
		pageInfo := conn["pageInfo"].(map[string]interface{})
		assert.Equal(t, false, pageInfo["hasNextPage"])
		assert.Equal(t, true, pageInfo["hasPreviousPage"])
	})
}

func TestHandler_EmployeeLookups(t *testing.T) {
	env := newTestEnv(t, Options{})
	created := env.mustCreateEmployee(t, employeeInput("Alice", "alice@staffhub.com", "Engineering"))

	resp := env.exec(t, context.Background(), `query($id: ID!) { employee(id: $id) { email } }`,
		map[string]interface{}{"id": created["id"]})
	require.Empty(t, resp.Errors)
	assert.Equal(t, "alice@staffhub.com", resp.Data["employee"].(map[string]interface{})["email"])

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		resp = env.exec(t, context.Background(), `query($id: ID!) { employee(id: $id) { id } }`,
			map[string]interface{}{"id": id})
		assert.Empty(t, resp.Errors, id)
		assert.Nil(t, resp.Data["employee"], id)
	}

	resp = env.exec(t, context.Background(), `{ a: employeeByEmployeeId(employeeId: "EMP001") { firstName } b: employeeByEmployeeId(employeeId: "EMP404") { firstName } }`, nil)
	require.Empty(t, resp.Errors)
	assert.Equal(t, "Alice", resp.Data["a"].(map[string]interface{})["firstName"])
	assert.Nil(t, resp.Data["b"])
}

func TestHandler_Me(t *testing.T) {
	env := newTestEnv(t, Options{})
	created := env.mustCreateEmployee(t, employeeInput("John", "john@staffhub.com", "Engineering"))
	employeeID := created["id"].(string)
	u := env.createUser(t, "john@staffhub.com", "employee123", user.RoleEmployee, &employeeID)

	const query = `{ me { email role employee { employeeId fullName } } }`

	resp := env.exec(t, context.Background(), query, nil)
	require.Empty(t, resp.Errors)
	assert.Nil(t, resp.Data["me"])

	resp = env.exec(t, principalCtx(u), query, nil)
	require.Empty(t, resp.Errors)
	me := resp.Data["me"].(map[string]interface{})
	assert.Equal(t, "EMPLOYEE", me["role"])
	assert.Equal(t, "EMP001", me["employee"].(map[string]interface{})["employeeId"])

	ghost := user.User{ID: uuid.NewString(), Email: "ghost@staffhub.com", Role: user.RoleAdmin}
	resp = env.exec(t, principalCtx(ghost), query, nil)
	require.Empty(t, resp.Errors)
	assert.Nil(t, resp.Data["me"])
}

func TestHandler_Login(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.createUser(t, "admin@staffhub.com", "admin123", user.RoleAdmin, nil)

	const mutation = `mutation($input: LoginInput!) { login(input: $input) { token user { email role } } }`

	resp := env.exec(t, context.Background(), mutation, map[string]interface{}{
		"input": map[string]interface{}{"email": "admin@staffhub.com", "password": "admin123"},
	})
	require.Empty(t, resp.Errors)
	payload := resp.Data["login"].(map[string]interface{})
	assert.NotEmpty(t, payload["token"])
	assert.Equal(t, "ADMIN", payload["user"].(map[string]interface{})["role"])

	wrongPassword := env.exec(t, context.Background(), mutation, map[string]interface{}{
		"input": map[string]interface{}{"email": "admin@staffhub.com", "password": "nope"},
	})
	unknownEmail := env.exec(t, context.Background(), mutation, map[string]interface{}{
		"input": map[string]interface{}{"email": "nobody@staffhub.com", "password": "admin123"},
	})
	require.Len(t, wrongPassword.Errors, 1)
	require.Len(t, unknownEmail.Errors, 1)
	assert.Equal(t, CodeUnauthenticated, wrongPassword.code())
	assert.Equal(t, wrongPassword.Errors[0].Message, unknownEmail.Errors[0].Message)
	assert.Nil(t, wrongPassword.Data)
}

func TestHandler_UpdateEmployee_Ownership(t *testing.T) {
	env := newTestEnv(t, Options{})
	own := env.mustCreateEmployee(t, employeeInput("John", "john@staffhub.com", "Engineering"))
	other := env.mustCreateEmployee(t, employeeInput("Jane", "jane@staffhub.com", "Engineering"))
	ownID := own["id"].(string)
	u := env.createUser(t, "john@staffhub.com", "employee123", user.RoleEmployee, &ownID)

	const mutation = `mutation($id: ID!, $input: UpdateEmployeeInput!) { updateEmployee(id: $id, input: $input) { phone salary } }`

	resp := env.exec(t, principalCtx(u), mutation, map[string]interface{}{
		"id": other["id"], "input": map[string]interface{}{"phone": "555-0100"},
	})
	assert.Equal(t, CodeForbidden, resp.code())
	assert.Equal(t, "You can only update your own profile", resp.Errors[0].Message)

	resp = env.exec(t, principalCtx(u), mutation, map[string]interface{}{
		"id": ownID, "input": map[string]interface{}{"phone": "555-0100", "salary": 99999},
	})
	assert.Equal(t, CodeForbidden, resp.code())
	assert.Equal(t, "You don't have permission to update salary", resp.Errors[0].Message)

	stored, err := env.employees.GetByID(context.Background(), ownID)
	require.NoError(t, err)
	assert.Nil(t, stored.Phone)

	resp = env.exec(t, principalCtx(u), mutation, map[string]interface{}{
		"id": ownID, "input": map[string]interface{}{"phone": "555-0100"},
	})
	require.Empty(t, resp.Errors)
	assert.Equal(t, "555-0100", resp.Data["updateEmployee"].(map[string]interface{})["phone"])
}

func TestHandler_FlagAndBulk(t *testing.T) {
	env := newTestEnv(t, Options{})
	a := env.mustCreateEmployee(t, employeeInput("A", "a@staffhub.com", "Engineering"))
	b := env.mustCreateEmployee(t, employeeInput("B", "b@staffhub.com", "Engineering"))

	resp := env.exec(t, adminCtx(), `mutation($id: ID!) { flagEmployee(id: $id, reason: "late") { isFlagged flagReason } }`,
		map[string]interface{}{"id": a["id"]})
	require.Empty(t, resp.Errors)
	assert.Equal(t, "late", resp.Data["flagEmployee"].(map[string]interface{})["flagReason"])

	resp = env.exec(t, adminCtx(), `mutation($id: ID!) { flagEmployee(id: $id, reason: "  ") { id } }`,
		map[string]interface{}{"id": a["id"]})
	assert.Equal(t, CodeBadUserInput, resp.code())

	resp = env.exec(t, adminCtx(), `mutation($id: ID!) { unflagEmployee(id: $id) { isFlagged flagReason } }`,
		map[string]interface{}{"id": a["id"]})
	require.Empty(t, resp.Errors)
	unflagged := resp.Data["unflagEmployee"].(map[string]interface{})
	assert.Equal(t, false, unflagged["isFlagged"])
	assert.Nil(t, unflagged["flagReason"])

	ids := []interface{}{a["id"], b["id"], uuid.NewString()}
	resp = env.exec(t, adminCtx(), `mutation($ids: [ID!]!) { bulkUpdateStatus(ids: $ids, status: ON_LEAVE) }`,
		map[string]interface{}{"ids": ids})
	require.Empty(t, resp.Errors)
	assert.EqualValues(t, 2, resp.Data["bulkUpdateStatus"])

	resp = env.exec(t, context.Background(), `{ dashboardStats { totalEmployees onLeaveEmployees departmentCounts { department count } } }`, nil)
	require.Empty(t, resp.Errors)
	stats := resp.Data["dashboardStats"].(map[string]interface{})
	assert.EqualValues(t, 2, stats["onLeaveEmployees"])

	resp = env.exec(t, adminCtx(), `mutation($ids: [ID!]!) { bulkDeleteEmployees(ids: $ids) }`,
		map[string]interface{}{"ids": ids})
	require.Empty(t, resp.Errors)
	assert.EqualValues(t, 2, resp.Data["bulkDeleteEmployees"])

	resp = env.exec(t, adminCtx(), `mutation($id: ID!) { deleteEmployee(id: $id) }`,
		map[string]interface{}{"id": a["id"]})
	assert.Equal(t, CodeNotFound, resp.code())
	assert.Equal(t, "Employee not found", resp.Errors[0].Message)
}

func TestHandler_SignupLifecycle(t *testing.T) {
	env := newTestEnv(t, Options{})
	member := env.createUser(t, "member@staffhub.com", "secret123", user.RoleEmployee, nil)

	resp := env.exec(t, context.Background(), `mutation($input: SignupRequestInput!) { submitSignupRequest(input: $input) { id status gender fullName } }`,
		map[string]interface{}{"input": map[string]interface{}{
			"email": "a@x.com", "password": "secret123", "firstName": "Ann", "lastName": "Lee", "age": 28,
		}})
	require.Empty(t, resp.Errors)
	submitted := resp.Data["submitSignupRequest"].(map[string]interface{})
	assert.Equal(t, "PENDING", submitted["status"])
	assert.Equal(t, "OTHER", submitted["gender"])
	assert.Equal(t, "Ann Lee", submitted["fullName"])

	const listQuery = `{ signupRequests(status: PENDING) { email } signupRequestCount }`
	resp = env.exec(t, principalCtx(member), listQuery, nil)
	require.Empty(t, resp.Errors)
	assert.Equal(t, []interface{}{}, resp.Data["signupRequests"])
	assert.EqualValues(t, 0, resp.Data["signupRequestCount"])

	resp = env.exec(t, adminCtx(), listQuery, nil)
	require.Empty(t, resp.Errors)
	assert.Len(t, resp.Data["signupRequests"], 1)
	assert.EqualValues(t, 1, resp.Data["signupRequestCount"])

	const approve = `mutation($id: ID!) { approveSignupRequest(id: $id, input: {department: "Support", position: "Agent", salary: 42000}) { email employeeId department salary } }`
	resp = env.exec(t, adminCtx(), approve, map[string]interface{}{"id": submitted["id"]})
	require.Empty(t, resp.Errors)
	approved := resp.Data["approveSignupRequest"].(map[string]interface{})
	assert.Equal(t, "a@x.com", approved["email"])
	assert.Equal(t, "EMP001", approved["employeeId"])
	assert.EqualValues(t, 42000, approved["salary"])

	linked, err := env.users.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, linked.Role)

	resp = env.exec(t, adminCtx(), approve, map[string]interface{}{"id": submitted["id"]})
	assert.Equal(t, CodeBadUserInput, resp.code())
	assert.Equal(t, "This request has already been processed", resp.Errors[0].Message)

	resp = env.exec(t, adminCtx(), `mutation($id: ID!) { rejectSignupRequest(id: $id, reason: "late") { id } }`,
		map[string]interface{}{"id": uuid.NewString()})
	assert.Equal(t, CodeNotFound, resp.code())
}

type failingDashboardService struct{}

func (failingDashboardService) GetStats(context.Context) (dashboard.Stats, error) {
	return dashboard.Stats{}, errors.New("connection refused")
}

func TestHandler_InternalErrors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		production bool
		message    string
	}{
		{name: "development", production: false, message: "connection refused"},
		{name: "production", production: true, message: "Internal server error"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h, err := NewHandler(Services{Dashboard: failingDashboardService{}}, nil, Options{
				Production: tc.production,
				Logger:     quietLogger(),
			})
			require.NoError(t, err)

			status, result := h.Execute(context.Background(), Request{Query: `{ dashboardStats { totalEmployees } }`}, false)
			assert.Equal(t, http.StatusOK, status)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tc.message, result.Errors[0].Message)
			assert.Equal(t, CodeInternal, result.Errors[0].Extensions["code"])
		})
	}
}

func TestHandler_RequestErrors(t *testing.T) {
	env := newTestEnv(t, Options{MaxDepth: 1})

	resp := env.exec(t, context.Background(), `{ employees {`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, CodeParseFailed, resp.code())

	resp = env.exec(t, context.Background(), `{ employees { nope } }`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, CodeValidationFailed, resp.code())

	resp = env.exec(t, context.Background(), `query Deep { employees { data { id } } }`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, CodeValidationFailed, resp.code())
	assert.Equal(t, "'Deep' exceeds maximum operation depth of 1", resp.Errors[0].Message)

	resp = env.exec(t, context.Background(), `query($id: ID!) { employee(id: $id) { id } }`, nil)
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, CodeBadUserInput, resp.code())

	resp = env.exec(t, context.Background(), "  ", nil)
	assert.Equal(t, http.StatusBadRequest, resp.status)
}

func TestHandler_ServeHTTP(t *testing.T) {
	env := newTestEnv(t, Options{})

	t.Run("post", func(t *testing.T) {
		body := bytes.NewBufferString(`{"query":"{ departments }"}`)
		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", body))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":{"departments":[]}}`, rec.Body.String())
	})

	t.Run("get query", func(t *testing.T) {
		q := url.Values{"query": {"query($s: String) { employees(filter: {search: $s}) { totalCount } }"}, "variables": {`{"s":"x"}`}}
		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"employees":{"totalCount":0}}}`, rec.Body.String())
	})

	t.Run("get mutation is rejected", func(t *testing.T) {
		q := url.Values{"query": {`mutation { deleteEmployee(id: "x") }`}}
		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString("{")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unsupported method", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/graphql", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
	})
}

func TestPlaygroundHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	PlaygroundHandler("StaffHub", "/graphql").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/playground", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>StaffHub</title>")
	assert.Contains(t, rec.Body.String(), "fetch('/graphql'")
}
