package graphql

import (
	"strconv"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

// dateTimeLayout matches JavaScript's Date.toISOString.
const dateTimeLayout = "2006-01-02T15:04:05.000Z07:00"

var DateTime = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "DateTime",
	Description: "Custom scalar for Date handling",
	Serialize:   serializeDateTime,
	ParseValue:  parseDateTime,
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch v := valueAST.(type) {
		case *ast.StringValue:
			return parseDateTime(v.Value)
		case *ast.IntValue:
			return parseDateTime(v.Value)
		}
		return nil
	},
})

func serializeDateTime(value interface{}) interface{} {
	switch v := value.(type) {
	case time.Time:
		return v.UTC().Format(dateTimeLayout)
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.UTC().Format(dateTimeLayout)
	case string:
		return v
	}
	return nil
}

// parseDateTime accepts RFC 3339 timestamps, plain dates and epoch milliseconds.
// Anything else yields nil, which the executor reports as an invalid value.
func parseDateTime(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		if t, ok := validator.IsValidDateTime(v); ok {
			return t.UTC()
		}
		if t, err := time.Parse(time.DateOnly, v); err == nil {
			return t
		}
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC()
		}
	case int:
		return time.UnixMilli(int64(v)).UTC()
	case int64:
		return time.UnixMilli(v).UTC()
	case float64:
		return time.UnixMilli(int64(v)).UTC()
	case time.Time:
		return v.UTC()
	}
	return nil
}
