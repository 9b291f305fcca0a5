package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/loader"
)

const (
	DefaultMaxDepth      = 7
	DefaultSlowThreshold = 100 * time.Millisecond
)

type Services struct {
	Auth      auth.AuthService
	Employee  employee.EmployeeService
	Signup    signup.SignupService
	Dashboard dashboard.DashboardService
}

type Options struct {
	MaxDepth      int
	SlowThreshold time.Duration
	// Production hides the message of internal errors from clients.
	Production bool
	Logger     *slog.Logger
}

// Handler serves GraphQL over HTTP. POST takes a JSON body, GET takes URL
// parameters and only runs queries.
type Handler struct {
	schema        graphql.Schema
	fetcher       loader.EmployeeFetcher
	errs          errorPresenter
	logger        *slog.Logger
	maxDepth      int
	slowThreshold time.Duration
}

// NewHandler builds the schema. fetcher backs the per-request employee loader.
func NewHandler(services Services, fetcher loader.EmployeeFetcher, opts Options) (*Handler, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxDepth < 1 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.SlowThreshold <= 0 {
		opts.SlowThreshold = DefaultSlowThreshold
	}

	errs := errorPresenter{logger: opts.Logger, production: opts.Production}
	schema, err := NewSchema(&Resolver{
		authService:      services.Auth,
		employeeService:  services.Employee,
		signupService:    services.Signup,
		dashboardService: services.Dashboard,
		errs:             errs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}

	return &Handler{
		schema:        schema,
		fetcher:       fetcher,
		errs:          errs,
		logger:        opts.Logger,
		maxDepth:      opts.MaxDepth,
		slowThreshold: opts.SlowThreshold,
	}, nil
}

type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	switch r.Method {
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			status := http.StatusBadRequest
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			writeResult(w, status, errorResult(CodeBadRequest, "invalid request body: "+err.Error()))
			return
		}
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if v := q.Get("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
				writeResult(w, http.StatusBadRequest, errorResult(CodeBadRequest, "variables must be a JSON object"))
				return
			}
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeResult(w, http.StatusMethodNotAllowed, errorResult(CodeBadRequest, "GraphQL only supports GET and POST requests"))
		return
	}

	status, result := h.Execute(r.Context(), req, r.Method == http.MethodGet)
	writeResult(w, status, result)
}

// Execute runs one request and returns the HTTP status to answer with.
// Parse, validation and depth failures never reach the resolvers.
func (h *Handler) Execute(ctx context.Context, req Request, queryOnly bool) (int, *graphql.Result) {
	if strings.TrimSpace(req.Query) == "" {
		return http.StatusBadRequest, errorResult(CodeBadRequest, "GraphQL operations must contain a non-empty `query`")
	}

	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		return http.StatusBadRequest, &graphql.Result{
			Errors: requestErrors(CodeParseFailed, gqlerrors.FormatError(err)),
		}
	}

	if vr := graphql.ValidateDocument(&h.schema, doc, nil); !vr.IsValid {
		return http.StatusBadRequest, &graphql.Result{
			Errors: requestErrors(CodeValidationFailed, vr.Errors...),
		}
	}
	if errs := checkDepth(doc, h.maxDepth); len(errs) > 0 {
		return http.StatusBadRequest, &graphql.Result{
			Errors: requestErrors(CodeValidationFailed, errs...),
		}
	}

	op := selectOperation(doc, req.OperationName)
	if queryOnly && op != nil && op.Operation != ast.OperationTypeQuery {
		return http.StatusMethodNotAllowed, errorResult(CodeBadRequest, "Can only perform a "+op.Operation+" operation from a POST request")
	}

	name := req.OperationName
	if name == "" && op != nil {
		name = operationLabel(op)
	}

	ctx = loader.WithEmployeeLoader(ctx, loader.NewEmployeeLoader(h.fetcher))

	start := time.Now()
	result := graphql.Execute(graphql.ExecuteParams{
		Schema:        h.schema,
		AST:           doc,
		OperationName: req.OperationName,
		Args:          req.Variables,
		Context:       ctx,
	})
	if elapsed := time.Since(start); elapsed > h.slowThreshold {
		h.logger.WarnContext(ctx, "slow graphql operation",
			slog.String("operation", name),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
		)
	}

	h.errs.finalize(ctx, result.Errors)
	return http.StatusOK, result
}

// selectOperation mirrors the executor's choice: the named operation, or the
// only one in the document.
func selectOperation(doc *ast.Document, name string) *ast.OperationDefinition {
	var found *ast.OperationDefinition
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if name == "" {
			if found != nil {
				return nil
			}
			found = op
			continue
		}
		if op.Name != nil && op.Name.Value == name {
			return op
		}
	}
	return found
}

func errorResult(code, message string) *graphql.Result {
	return &graphql.Result{
		Errors: requestErrors(code, gqlerrors.NewFormattedError(message)),
	}
}

func writeResult(w http.ResponseWriter, status int, result *graphql.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("graphql response encode error", "error", err)
	}
}
