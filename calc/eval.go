package calc

import (
	"fmt"

	"github.com/ZhukDmitryOlegovich/compgen/table"
)

// ZeroDivisionError reports a division whose evaluated denominator
// expression was exactly zero.
type ZeroDivisionError struct{}

func (e *ZeroDivisionError) Error() string { return "calc: division by zero" }

// Evaluate lexes, parses, and evaluates an arithmetic expression.
func Evaluate(expr string) (float64, error) {
	tokens, err := Lex(expr)
	if err != nil {
		return 0, err
	}

	tables, err := Tables()
	if err != nil {
		return 0, fmt.Errorf("calc: building tables: %w", err)
	}

	tree, err := table.Parse(tables, tokens)
	if err != nil {
		return 0, fmt.Errorf("calc: parsing expression: %w", err)
	}

	return evaluateE(tree)
}

type tree = table.Tree[Attribute]

// evaluateE implements E -> T E'.
func evaluateE(t *tree) (float64, error) {
	res1, err := evaluateT(t.Children[0])
	if err != nil {
		return 0, err
	}
	res2, err := evaluateEPrime(t.Children[1])
	if err != nil {
		return 0, err
	}
	return res1 + res2, nil
}

// evaluateEPrime implements E' -> + T E' | - T E' | ε. The sum of the
// term and the recursive tail is negated as a whole when the leading
// operator is "-", rather than negating just the term: this matches the
// original evaluator exactly, so 1-2+3 evaluates as 1-(2+3).
func evaluateEPrime(t *tree) (float64, error) {
	if len(t.Children) == 0 {
		return 0, nil
	}
	sign := t.Children[0].Leaf.Tag.String()
	res1, err := evaluateT(t.Children[1])
	if err != nil {
		return 0, err
	}
	res2, err := evaluateEPrime(t.Children[2])
	if err != nil {
		return 0, err
	}
	res := res1 + res2
	if sign == "-" {
		return -res, nil
	}
	return res, nil
}

// evaluateT implements T -> F T'.
func evaluateT(t *tree) (float64, error) {
	res1, err := evaluateF(t.Children[0])
	if err != nil {
		return 0, err
	}
	res2, err := evaluateTPrime(t.Children[1])
	if err != nil {
		return 0, err
	}
	return res1 * res2, nil
}

// evaluateTPrime implements T' -> * F T' | / F T' | ε. As with
// evaluateEPrime, the whole product of the factor and the recursive
// tail is inverted when the leading operator is "/", not just the
// factor; a zero product under "/" is reported as ZeroDivisionError.
func evaluateTPrime(t *tree) (float64, error) {
	if len(t.Children) == 0 {
		return 1, nil
	}
	sign := t.Children[0].Leaf.Tag.String()
	res1, err := evaluateF(t.Children[1])
	if err != nil {
		return 0, err
	}
	res2, err := evaluateTPrime(t.Children[2])
	if err != nil {
		return 0, err
	}
	res := res1 * res2
	if sign == "/" {
		if res == 0 {
			return 0, &ZeroDivisionError{}
		}
		return 1 / res, nil
	}
	return res, nil
}

// evaluateF implements F -> n | ( E ).
func evaluateF(t *tree) (float64, error) {
	if len(t.Children) == 1 {
		return float64(t.Children[0].Leaf.Attribute.Number), nil
	}
	return evaluateE(t.Children[1])
}
