package quiz

import "github.com/shopspring/decimal"

const (
	PassThreshold     = 80
	TestQuestionCount = 40
)

// Score is 100*correct/total rounded half away from zero to two decimals.
func Score(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	d := decimal.NewFromInt(int64(correct)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(total)), 2)
	f, _ := d.Float64()
	return f
}

// Passed is decided on the rounded score, the one stored on the session.
func Passed(correct, total int) bool {
	if total <= 0 {
		return false
	}
	return Score(correct, total) >= PassThreshold
}

func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
