package fees

import "github.com/LavaJover/shvark-payment-service/internal/domain"

// Grade is a contractor tier. Levels 1-5 discount the platform's cut.
type Grade struct {
	Level int
	Name  string
}

// gradeMultipliers is part of the external contract: any level outside the
// table falls back to 1.0, which is a default, not an error.
var gradeMultipliers = map[int]float64{
	1: 1.0,
	2: 0.9,
	3: 0.8,
	4: 0.7,
	5: 0.6,
}

func GradeMultiplier(level int) float64 {
	if m, ok := gradeMultipliers[level]; ok {
		return m
	}
	return 1.0
}

// GradeAdjustedBreakdown carries the original breakdown plus the grade-discounted
// platform fee and the grade itself for audit display.
type GradeAdjustedBreakdown struct {
	domain.FeeBreakdown
	GradeLevel            int
	GradeName             string
	GradeMultiplier       float64
	AdjustedPlatformFee   float64
	AdjustedWorkerPayment float64
}

// AdjustForGrade applies the contractor-grade multiplier to the platform fee.
// All other breakdown fields pass through unchanged.
func AdjustForGrade(breakdown *domain.FeeBreakdown, grade Grade) *GradeAdjustedBreakdown {
	multiplier := GradeMultiplier(grade.Level)
	adjustedPlatformFee := breakdown.PlatformFee * multiplier

	return &GradeAdjustedBreakdown{
		FeeBreakdown:          *breakdown,
		GradeLevel:            grade.Level,
		GradeName:             grade.Name,
		GradeMultiplier:       multiplier,
		AdjustedPlatformFee:   adjustedPlatformFee,
		AdjustedWorkerPayment: breakdown.TotalFee - adjustedPlatformFee,
	}
}
