// Package filter validates and builds ZeroEntropy metadata filter
// expressions. The expression language is a small JSON object grammar:
// comparison operators ($eq, $ne, $gt, $gte, $lt, $lte, $in) applied to
// metadata fields, combined with $and / $or. Evaluation happens remotely;
// this package only checks that an expression is well-formed before it is
// passed through unmodified.
package filter

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Expr is a parsed filter expression.
type Expr map[string]any

var comparisonOps = map[string]bool{
	"$eq":  true,
	"$ne":  true,
	"$gt":  true,
	"$gte": true,
	"$lt":  true,
	"$lte": true,
	"$in":  true,
}

var combinatorOps = map[string]bool{
	"$and": true,
	"$or":  true,
}

// ParseJSON parses the JSON-encoded string form of a filter, as received
// from tool parameters. An empty string means no filter.
func ParseJSON(raw string) (Expr, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var expr Expr
	if err := json.Unmarshal([]byte(raw), &expr); err != nil {
		return nil, fmt.Errorf("filter is not a valid JSON object: %w", err)
	}

	if err := Validate(expr); err != nil {
		return nil, err
	}
	return expr, nil
}

// Validate checks an expression against the operator grammar. A nil
// expression is valid (no filter).
func Validate(expr Expr) error {
	if expr == nil {
		return nil
	}
	if len(expr) == 0 {
		return fmt.Errorf("filter must not be an empty object")
	}

	for key, value := range expr {
		switch {
		case combinatorOps[key]:
			if err := validateCombinator(key, value); err != nil {
				return err
			}
		case strings.HasPrefix(key, "$"):
			return fmt.Errorf("unknown filter operator %q", key)
		default:
			if err := validateCondition(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCombinator(op string, value any) error {
	clauses, ok := value.([]any)
	if !ok {
		return fmt.Errorf("%s requires an array of filter expressions", op)
	}
	if len(clauses) == 0 {
		return fmt.Errorf("%s requires at least one filter expression", op)
	}

	for _, clause := range clauses {
		sub, ok := clause.(map[string]any)
		if !ok {
			return fmt.Errorf("%s clauses must be filter objects", op)
		}
		if err := Validate(Expr(sub)); err != nil {
			return err
		}
	}
	return nil
}

func validateCondition(field string, value any) error {
	cond, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("condition for field %q must be an operator object", field)
	}
	if len(cond) == 0 {
		return fmt.Errorf("condition for field %q has no operator", field)
	}

	for op, operand := range cond {
		if !comparisonOps[op] {
			return fmt.Errorf("unknown filter operator %q for field %q", op, field)
		}
		if op == "$in" {
			values, ok := operand.([]any)
			if !ok {
				return fmt.Errorf("$in for field %q requires an array", field)
			}
			for _, v := range values {
				if !isScalar(v) {
					return fmt.Errorf("$in values for field %q must be scalars", field)
				}
			}
			continue
		}
		if !isScalar(operand) {
			return fmt.Errorf("%s for field %q requires a scalar value", op, field)
		}
	}
	return nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, float64, bool:
		return true
	default:
		return false
	}
}
