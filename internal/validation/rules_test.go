package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"productstore/internal/validation"
)

func createRules() []validation.Rule {
	return []validation.Rule{
		validation.RequiredString("name", "name is required"),
		validation.Required("price", "price is required"),
		validation.Number("price", "gt=0", "price must be a number greater than 0"),
	}
}

func updateRules() []validation.Rule {
	return []validation.Rule{
		validation.IntParam("id", "id must be an integer"),
		validation.RequiredString("name", "name must not be empty"),
		validation.Required("price", "price must not be empty"),
		validation.Number("price", "gt=0", "price must be a number greater than 0"),
		validation.Bool("availability", "availability must be a boolean"),
	}
}

func TestEvaluateValidInput(t *testing.T) {
	errs := validation.Evaluate(createRules(), nil, map[string]any{
		"name":  "Mouse",
		"price": 100.0,
	})
	assert.Nil(t, errs)

	errs = validation.Evaluate(updateRules(), map[string]string{"id": "7"}, map[string]any{
		"name":         "Mouse",
		"price":        100.0,
		"availability": false,
	})
	assert.Nil(t, errs)
}

func TestEvaluateAccumulatesAllErrors(t *testing.T) {
	errs := validation.Evaluate(createRules(), nil, map[string]any{
		"name":         "",
		"price":        -100.0,
		"availability": true,
	})

	// Both failing fields are reported; no short-circuit after name.
	assert.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "price", errs[1].Field)
}

func TestEvaluateOrderMatchesDeclaration(t *testing.T) {
	errs := validation.Evaluate(updateRules(), map[string]string{"id": "abc"}, map[string]any{})

	assert.Len(t, errs, 5)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"id", "name", "price", "price", "availability"}, fields)
}

func TestEvaluateMissingPriceFailsBothRules(t *testing.T) {
	errs := validation.Evaluate(createRules(), nil, map[string]any{
		"name": "Keyboard",
	})

	assert.Len(t, errs, 2)
	assert.Equal(t, "price", errs[0].Field)
	assert.Equal(t, "price is required", errs[0].Message)
	assert.Equal(t, "price", errs[1].Field)
	assert.Equal(t, "price must be a number greater than 0", errs[1].Message)
}

func TestEvaluateWhitespaceNameFails(t *testing.T) {
	errs := validation.Evaluate(createRules(), nil, map[string]any{
		"name":  "   ",
		"price": 10.0,
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestEvaluateNonStringNameFails(t *testing.T) {
	errs := validation.Evaluate(createRules(), nil, map[string]any{
		"name":  42.0,
		"price": 10.0,
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestEvaluatePriceTypeStrictness(t *testing.T) {
	// A numeric string is not a number.
	errs := validation.Evaluate(createRules(), nil, map[string]any{
		"name":  "Monitor",
		"price": "100",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)

	// Zero fails the gt=0 predicate.
	errs = validation.Evaluate(createRules(), nil, map[string]any{
		"name":  "Monitor",
		"price": 0.0,
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)
}

func TestEvaluateBooleanTypeStrictness(t *testing.T) {
	base := map[string]any{
		"name":  "Webcam",
		"price": 50.0,
	}

	for _, value := range []any{"true", "false", 1.0, "yes"} {
		body := map[string]any{"availability": value}
		for k, v := range base {
			body[k] = v
		}
		errs := validation.Evaluate(updateRules(), map[string]string{"id": "1"}, body)
		assert.Len(t, errs, 1, "availability %v should fail the boolean rule", value)
		assert.Equal(t, "availability", errs[0].Field)
	}

	body := map[string]any{"availability": false}
	for k, v := range base {
		body[k] = v
	}
	errs := validation.Evaluate(updateRules(), map[string]string{"id": "1"}, body)
	assert.Nil(t, errs)
}

func TestEvaluateIntParam(t *testing.T) {
	rules := []validation.Rule{validation.IntParam("id", "id must be an integer")}

	for _, id := range []string{"abc", "1.5", "", "10x"} {
		errs := validation.Evaluate(rules, map[string]string{"id": id}, nil)
		assert.Len(t, errs, 1, "id %q should fail", id)
		assert.Equal(t, "id must be an integer", errs[0].Message)
	}

	for _, id := range []string{"1", "999", "-3"} {
		errs := validation.Evaluate(rules, map[string]string{"id": id}, nil)
		assert.Nil(t, errs, "id %q should pass", id)
	}
}
