package universe

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//Rule calculates the new value of a cell from its value and the values of its neighbours
//the set of rules is closed: EEFFRule and BSRule
type Rule interface {
	NewValue(cellValue int, neighbourValues []int) int
	isRule()
}

var (
	ErrRuleConversion = errors.New("rule can not be converted")
	ErrRuleSyntax     = errors.New("invalid rule notation")
)

//EEFFRule is the threshold-range rule
//a living cell survives with SurviveLower..SurviveUpper living neighbours
//a dead cell is born with BirthLower..BirthUpper living neighbours
type EEFFRule struct {
	SurviveLower int
	SurviveUpper int
	BirthLower   int
	BirthUpper   int
}

//BSRule is the birth/survival-set rule
type BSRule struct {
	Born []int
	Stay []int
}

func (EEFFRule) isRule() {}
func (BSRule) isRule()   {}

//Conway returns the B3/S23 rule
func Conway() BSRule {
	return BSRule{Born: []int{3}, Stay: []int{2, 3}}
}

//NormalizeToOneOrZero maps every value > 0 to 1 and everything else to 0
func NormalizeToOneOrZero(values []int) []int {
	n := make([]int, len(values))
	for i, v := range values {
		if v > 0 {
			n[i] = 1
		}
	}
	return n
}

//LivingNeighbours counts the values > 0
func LivingNeighbours(values []int) int {
	living := 0
	for _, v := range values {
		if v > 0 {
			living++
		}
	}
	return living
}

//NewValue kills a living cell outside the survival range, gives birth inside the birth range
//otherwise the value is kept, including non binary values of living cells
func (r EEFFRule) NewValue(cellValue int, neighbourValues []int) int {
	living := LivingNeighbours(neighbourValues)
	if cellValue > 0 && (living < r.SurviveLower || living > r.SurviveUpper) {
		return 0
	} else if cellValue == 0 && living >= r.BirthLower && living <= r.BirthUpper {
		return 1
	}
	return cellValue
}

func (r EEFFRule) String() string {
	return fmt.Sprintf("EEFF %d%d%d%d", r.SurviveLower, r.SurviveUpper, r.BirthLower, r.BirthUpper)
}

//NewValue keeps a living cell if the count is in Stay, gives birth if the count is in Born
//every other cell becomes 0
func (r BSRule) NewValue(cellValue int, neighbourValues []int) int {
	living := LivingNeighbours(neighbourValues)
	if cellValue > 0 && contains(r.Stay, living) {
		return cellValue
	} else if cellValue == 0 && contains(r.Born, living) {
		return 1
	}
	return 0
}

//String returns the rule in B/S notation, e.g. B3/S23
func (r BSRule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range sortedCopy(r.Born) {
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteString("/S")
	for _, n := range sortedCopy(r.Stay) {
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

//ToBS converts the rule to the set form
//the threshold-range form converts to contiguous ranges, the set form is returned as is
func ToBS(r Rule) (BSRule, error) {
	switch rule := r.(type) {
	case BSRule:
		return rule, nil
	case *BSRule:
		if rule != nil {
			return *rule, nil
		}
	case EEFFRule:
		return BSRule{
			Born: intRange(rule.BirthLower, rule.BirthUpper),
			Stay: intRange(rule.SurviveLower, rule.SurviveUpper),
		}, nil
	case *EEFFRule:
		if rule != nil {
			return ToBS(*rule)
		}
	}
	return BSRule{}, fmt.Errorf("%w: %T to BS", ErrRuleConversion, r)
}

//ParseBS parses the B/S notation, e.g. "B3/S23", case insensitive
//the digits are the neighbour counts 0..8
func ParseBS(s string) (BSRule, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return BSRule{}, fmt.Errorf("%w: %q", ErrRuleSyntax, s)
	}
	born, err := parseCounts(parts[0], 'B')
	if err != nil {
		return BSRule{}, fmt.Errorf("%w: %q", err, s)
	}
	stay, err := parseCounts(parts[1], 'S')
	if err != nil {
		return BSRule{}, fmt.Errorf("%w: %q", err, s)
	}
	return BSRule{Born: born, Stay: stay}, nil
}

func parseCounts(part string, prefix byte) ([]int, error) {
	if len(part) == 0 || (part[0] != prefix && part[0] != prefix+'a'-'A') {
		return nil, ErrRuleSyntax
	}
	counts := make([]int, 0, len(part)-1)
	for _, ch := range part[1:] {
		if ch < '0' || ch > '8' {
			return nil, ErrRuleSyntax
		}
		n := int(ch - '0')
		if !contains(counts, n) {
			counts = append(counts, n)
		}
	}
	sort.Ints(counts)
	return counts, nil
}

func intRange(lower int, upper int) []int {
	r := make([]int, 0)
	for i := lower; i <= upper; i++ {
		r = append(r, i)
	}
	return r
}

func contains(values []int, v int) bool {
	for _, e := range values {
		if e == v {
			return true
		}
	}
	return false
}

func sortedCopy(values []int) []int {
	c := append([]int(nil), values...)
	sort.Ints(c)
	return c
}
