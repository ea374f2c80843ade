package domain

// Operator is the comparison applied by a Condition.
type Operator string

const (
	// OpEquals compares the stored answer for equality with Value.
	OpEquals Operator = "=="
	// OpNotEquals compares the stored answer for inequality with Value.
	OpNotEquals Operator = "!="
	// OpIn is satisfied when the (scalar) answer is a member of Value,
	// which must be a sequence.
	OpIn Operator = "in"
	// OpContains is satisfied when the (list) answer contains Value.
	// For a scalar answer it falls back to equality.
	OpContains Operator = "contains"
)

// Condition gates a question on a previously collected answer.
// A reference to an answer that has not been collected yet evaluates to
// "not satisfied" (fail-closed).
type Condition struct {
	QuestionID string   `json:"question_id" yaml:"question_id"`
	Operator   Operator `json:"operator" yaml:"operator"`

	// Value is the comparison operand: a string for scalar operators,
	// a []string for OpIn.
	Value any `json:"value" yaml:"value"`
}
