package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Advisory adjustment bounds. Values outside this range are clamped
// before use; missing or unparseable adjustments default to 0.
const (
	MinAdjustment = -15
	MaxAdjustment = 15
)

// Bucket labels derived from final score thresholds.
const (
	BucketHot  = "hot"
	BucketWarm = "warm"
	BucketCold = "cold"
)

// ClampAdjustment bounds an advisory adjustment to [-15, 15].
func ClampAdjustment(adjustment int) int {
	if adjustment < MinAdjustment {
		return MinAdjustment
	}
	if adjustment > MaxAdjustment {
		return MaxAdjustment
	}
	return adjustment
}

// FinalScore applies a clamped advisory adjustment to the rule-based score
// and rounds to an integer in [0, 100].
func FinalScore(ruleBasedScore float64, adjustment int) int {
	adjusted := ruleBasedScore + float64(ClampAdjustment(adjustment))
	if adjusted < 0 {
		adjusted = 0
	}
	if adjusted > 100 {
		adjusted = 100
	}
	return int(math.Round(adjusted))
}

// BucketFor labels a final score: >=80 hot, >=60 warm, else cold.
func BucketFor(finalScore int) string {
	switch {
	case finalScore >= 80:
		return BucketHot
	case finalScore >= 60:
		return BucketWarm
	default:
		return BucketCold
	}
}

// Summary aggregates bucket counts and the mean final score for a batch.
type Summary struct {
	TotalLeads   int     `json:"total_leads"`
	HotLeads     int     `json:"hot_leads"`
	WarmLeads    int     `json:"warm_leads"`
	ColdLeads    int     `json:"cold_leads"`
	AverageScore float64 `json:"average_score"`
}

// Summarize computes the batch summary over final scores.
// An empty batch yields an all-zero summary.
func Summarize(finalScores []int) Summary {
	summary := Summary{TotalLeads: len(finalScores)}
	if len(finalScores) == 0 {
		return summary
	}

	sum := 0
	for _, score := range finalScores {
		sum += score
		switch BucketFor(score) {
		case BucketHot:
			summary.HotLeads++
		case BucketWarm:
			summary.WarmLeads++
		default:
			summary.ColdLeads++
		}
	}
	summary.AverageScore = round1(float64(sum) / float64(len(finalScores)))

	return summary
}

func trimJoin(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func placeholderName(position int) string {
	return fmt.Sprintf("Lead %d", position)
}
