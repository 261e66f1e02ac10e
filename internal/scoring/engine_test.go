package scoring

import (
	"math"
	"testing"
)

func TestNewEngine_RejectsBadWeights(t *testing.T) {
	w := DefaultWeights()
	w.Engagement = 0.5
	if _, err := NewEngine(w); err == nil {
		t.Fatal("expected error for weights not summing to 1.0")
	}

	w = Weights{CompanySize: 1.2, Engagement: -0.2}
	if _, err := NewEngine(w); err == nil {
		t.Fatal("expected error for negative weight")
	}
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	if sum := DefaultWeights().Sum(); math.Abs(sum-1.0) > 0.001 {
		t.Fatalf("default weights sum to %v", sum)
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultWeights())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func TestScore_EmptyLeadUsesDefaults(t *testing.T) {
	engine := newTestEngine(t)

	score, breakdown := engine.Score(Lead{})

	want := Breakdown{
		ComponentCompanySize:       15,
		ComponentEngagement:        0,
		ComponentBudgetFit:         25,
		ComponentDecisionAuthority: 40,
		ComponentTimeline:          25,
		ComponentDataQuality:       0,
		ComponentBehavioral:        0,
	}
	for name, wantScore := range want {
		if breakdown[name] != wantScore {
			t.Fatalf("component %s = %v, want %v", name, breakdown[name], wantScore)
		}
	}

	// 15*.20 + 25*.15 + 40*.15 + 25*.10 = 15.25, rounded to 15.3
	if score != 15.3 {
		t.Fatalf("empty lead score = %v, want 15.3", score)
	}
}

func TestScore_HandComputedExample(t *testing.T) {
	engine := newTestEngine(t)

	lead := Lead{
		BudgetRange:       "$10K - $50K",
		DecisionAuthority: "Evaluator",
		JobTitle:          "Analyst",
		PurchaseTimeline:  "Just researching",
	}

	score, breakdown := engine.Score(lead)

	wantComponents := map[string]float64{
		ComponentCompanySize:       15,
		ComponentEngagement:        0,
		ComponentBudgetFit:         35,
		ComponentDecisionAuthority: 50,
		ComponentTimeline:          10,
		ComponentDataQuality:       10,
		ComponentBehavioral:        0,
	}
	for name, wantScore := range wantComponents {
		if breakdown[name] != wantScore {
			t.Fatalf("component %s = %v, want %v", name, breakdown[name], wantScore)
		}
	}

	// 15*.20 + 35*.15 + 50*.15 + 10*.10 + 10*.10 = 17.75, rounded to 17.8
	if score != 17.8 {
		t.Fatalf("score = %v, want 17.8", score)
	}
}

func TestScore_AllComponentsAlwaysPresent(t *testing.T) {
	engine := newTestEngine(t)

	_, breakdown := engine.Score(Lead{})
	if len(breakdown) != len(ComponentNames) {
		t.Fatalf("breakdown has %d components, want %d", len(breakdown), len(ComponentNames))
	}
	for _, name := range ComponentNames {
		if _, ok := breakdown[name]; !ok {
			t.Fatalf("breakdown missing component %q", name)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	engine := newTestEngine(t)

	lead := Lead{
		CompanyName:       "Acme",
		EmployeeCount:     350,
		AnnualRevenueUSD:  8_000_000,
		WebsiteVisits:     12,
		EmailsOpened:      6,
		ContentDownloads:  1,
		BudgetRange:       "$100K - $500K",
		DecisionAuthority: "Key Influencer",
		JobTitle:          "VP of Sales",
		PurchaseTimeline:  "Short-term (1-3 months)",
		DemoRequested:     true,
	}

	firstScore, firstBreakdown := engine.Score(lead)
	for i := 0; i < 50; i++ {
		score, breakdown := engine.Score(lead)
		if score != firstScore {
			t.Fatalf("run %d: score %v, want %v", i, score, firstScore)
		}
		for name, v := range firstBreakdown {
			if breakdown[name] != v {
				t.Fatalf("run %d: component %s = %v, want %v", i, name, breakdown[name], v)
			}
		}
	}
}

func TestScore_StaysWithinBounds(t *testing.T) {
	engine := newTestEngine(t)

	maxed := Lead{
		CompanyName:        "Acme",
		ContactEmail:       "ceo@acme.com",
		JobTitle:           "CEO",
		Industry:           "Software",
		EmployeeCount:      10_000,
		AnnualRevenueUSD:   500_000_000,
		WebsiteVisits:      100,
		EmailsOpened:       100,
		ContentDownloads:   100,
		BudgetRange:        "Over $1M",
		DecisionAuthority:  "Final Decision Maker",
		PurchaseTimeline:   "Immediate (< 1 month)",
		EmailVerified:      true,
		HasLinkedInProfile: true,
		DemoRequested:      true,
		FreeTrialSignup:    true,
	}

	if score, _ := engine.Score(maxed); score != 100 {
		t.Fatalf("fully maxed lead score = %v, want 100", score)
	}
	if score, _ := engine.Score(Lead{}); score < 0 || score > 100 {
		t.Fatalf("empty lead score out of bounds: %v", score)
	}
}
