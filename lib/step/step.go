package step

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Kind uint8

const (
	Upsert Kind = iota + 1
	Remove
)

func (k Kind) String() string {
	switch k {
	case Upsert:
		return "upsert"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Step is a single parsed operation against a boxes table.
// Value is only meaningful when Kind is Upsert.
type Step struct {
	Kind  Kind
	Label string
	Value uint64
}

func NewUpsert(label string, value uint64) Step {
	return Step{Kind: Upsert, Label: label, Value: value}
}

func NewRemove(label string) Step {
	return Step{Kind: Remove, Label: label}
}

// String renders the step back as a canonical token
func (s Step) String() string {
	if s.Kind == Upsert {
		return s.Label + "=" + strconv.FormatUint(s.Value, 10)
	}
	return s.Label + "-"
}

// Parse turns a single token into a Step. Tokens containing '=' are upserts
// and are split on the first '='. Every other token is a remove, with all
// trailing '-' stripped from the label.
func Parse(token string) (Step, error) {
	if label, raw, ok := strings.Cut(token, "="); ok {
		if len(label) == 0 {
			return Step{}, &FormatError{Token: token, Reason: "missing label"}
		}
		v, err := strconv.ParseUint(trimPlus(raw), 10, 64)
		if err != nil {
			return Step{}, &FormatError{Token: token, Reason: "invalid focal value", Err: err}
		}
		return NewUpsert(label, v), nil
	}
	label := strings.TrimRight(token, "-")
	if len(label) == 0 {
		return Step{}, &FormatError{Token: token, Reason: "missing label"}
	}
	return NewRemove(label), nil
}

// trimPlus drops a single leading '+' when a digit follows it
func trimPlus(raw string) string {
	if len(raw) > 1 && raw[0] == '+' && raw[1] >= '0' && raw[1] <= '9' {
		return raw[1:]
	}
	return raw
}

// ParseAll parses tokens in order and stops at the first one that fails
func ParseAll(tokens []string) ([]Step, error) {
	steps := make([]Step, 0, len(tokens))
	for i, token := range tokens {
		s, err := Parse(token)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d", i)
		}
		steps = append(steps, s)
	}
	return steps, nil
}
