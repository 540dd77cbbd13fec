package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations return a SQL fragment using Spanner named parameters
// (@p0, @p1, ...) starting at paramIndex, and the parameters they bind.
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

// comparison is a binary "field <op> @pN" condition.
type comparison struct {
	field string
	op    string
	value interface{}
}

// Eq creates an equality condition: Eq("category", "Bags") -> "category = @p0".
func Eq(field string, value interface{}) Condition {
	return &comparison{field: field, op: "=", value: value}
}

// Gt creates a greater-than condition: Gt("stock", 0) -> "stock > @p0".
func Gt(field string, value interface{}) Condition {
	return &comparison{field: field, op: ">", value: value}
}

// Lt creates a less-than condition: Lt("occurred_at", cutoff) -> "occurred_at < @p0".
func Lt(field string, value interface{}) Condition {
	return &comparison{field: field, op: "<", value: value}
}

func (c *comparison) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, name), map[string]interface{}{name: c.value}
}

// inCondition matches a column against an array parameter.
type inCondition struct {
	field  string
	values []string
}

// In creates a membership condition over string keys:
// In("product_id", ids) -> "product_id IN UNNEST(@p0)".
func In(field string, values []string) Condition {
	return &inCondition{field: field, values: values}
}

func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s IN UNNEST(@%s)", c.field, name), map[string]interface{}{name: c.values}
}

// IsNotNull creates a NOT NULL check; it binds no parameters.
func IsNotNull(field string) Condition {
	return isNotNull(field)
}

type isNotNull string

func (c isNotNull) SQL(int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NOT NULL", string(c)), map[string]interface{}{}
}
