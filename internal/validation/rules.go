// Package validation implements the per-operation request rule sets.
// Each operation declares an ordered list of (field, predicate, message)
// rules; evaluation is pure, runs every rule even after failures and
// accumulates one error per failed rule in declaration order.
package validation

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed rule for a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Source tells a rule where to read its value from.
type Source int

const (
	SourceParam Source = iota
	SourceBody
)

// Kind is the JSON type a body rule expects. Values of any other
// dynamic type fail the rule outright, without coercion.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindNumber
	KindBool
)

// Rule is a single entry in an operation's rule set.
type Rule struct {
	Source  Source
	Field   string
	Kind    Kind
	Tag     string // validator/v10 tag, applied once the value matches Kind
	Message string
}

var validate = validator.New()

// IntParam requires the named path parameter to parse as an integer.
func IntParam(field, message string) Rule {
	return Rule{Source: SourceParam, Field: field, Message: message}
}

// Required requires the field to be present in the body, whatever its type.
func Required(field, message string) Rule {
	return Rule{Source: SourceBody, Field: field, Kind: KindAny, Message: message}
}

// RequiredString requires a string value that is non-empty after trimming.
func RequiredString(field, message string) Rule {
	return Rule{Source: SourceBody, Field: field, Kind: KindString, Tag: "required", Message: message}
}

// Number requires a JSON number satisfying the given validator tag.
func Number(field, tag, message string) Rule {
	return Rule{Source: SourceBody, Field: field, Kind: KindNumber, Tag: tag, Message: message}
}

// Bool requires a JSON boolean. The strings "true" and "false" do not
// qualify.
func Bool(field, message string) Rule {
	return Rule{Source: SourceBody, Field: field, Kind: KindBool, Message: message}
}

// Evaluate runs every rule against the request's path parameters and
// decoded JSON body. A nil return means the input is valid.
func Evaluate(rules []Rule, params map[string]string, body map[string]any) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		if !r.check(params, body) {
			errs = append(errs, FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}

func (r Rule) check(params map[string]string, body map[string]any) bool {
	if r.Source == SourceParam {
		_, err := strconv.ParseInt(params[r.Field], 10, 64)
		return err == nil
	}

	value, ok := body[r.Field]
	if !ok || value == nil {
		// A missing field fails every rule declared for it.
		return false
	}

	switch r.Kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return false
		}
		return validate.Var(strings.TrimSpace(s), r.Tag) == nil
	case KindNumber:
		n, ok := value.(float64)
		if !ok {
			return false
		}
		if r.Tag == "" {
			return true
		}
		return validate.Var(n, r.Tag) == nil
	case KindBool:
		_, ok := value.(bool)
		return ok
	default:
		return true
	}
}
