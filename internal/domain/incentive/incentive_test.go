package incentive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateFixed(t *testing.T) {
	rule := Rule{RuleType: RuleFixed, Amount: 100, Active: true}

	assert.Equal(t, 100.0, Evaluate(rule, 1, 0))
	assert.Equal(t, 0.0, Evaluate(rule, 0, 0), "no days worked, nothing fires")
}

func TestEvaluateDaysWorked(t *testing.T) {
	rule := Rule{RuleType: RuleDaysWorked, Threshold: 26, Amount: 150, Active: true}

	assert.Equal(t, 0.0, Evaluate(rule, 25, 0))
	assert.Equal(t, 150.0, Evaluate(rule, 26, 0))
	assert.Equal(t, 150.0, Evaluate(rule, 31, 0), "one-shot rule pays once")

	perOcc := rule
	perOcc.PerOccurrence = true
	perOcc.Threshold = 10
	assert.Equal(t, 300.0, Evaluate(perOcc, 26, 0), "two full blocks of 10 days")
}

func TestEvaluateSundayCount(t *testing.T) {
	rule := Rule{RuleType: RuleSundayCount, Threshold: 2, Amount: 50, Active: true}

	assert.Equal(t, 0.0, Evaluate(rule, 20, 1))
	assert.Equal(t, 50.0, Evaluate(rule, 20, 2))

	perOcc := rule
	perOcc.PerOccurrence = true
	perOcc.Threshold = 1
	assert.Equal(t, 200.0, Evaluate(perOcc, 20, 4), "paid per Sunday worked")
}

func TestEvaluateInactiveRule(t *testing.T) {
	rule := Rule{RuleType: RuleFixed, Amount: 100}
	assert.Equal(t, 0.0, Evaluate(rule, 30, 4))
}
