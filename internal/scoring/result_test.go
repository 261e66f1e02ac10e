package scoring

import "testing"

func TestClampAdjustment(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{15, 15},
		{-15, -15},
		{16, 15},
		{100, 15},
		{-16, -15},
		{-100, -15},
	}

	for _, tt := range tests {
		if got := ClampAdjustment(tt.in); got != tt.want {
			t.Fatalf("ClampAdjustment(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		name       string
		ruleScore  float64
		adjustment int
		want       int
	}{
		{"no adjustment rounds", 72.5, 0, 73},
		{"positive adjustment", 50.4, 10, 60},
		{"negative adjustment", 50.4, -10, 40},
		{"clamped at 100", 100, 15, 100},
		{"clamped at 0", 0, -15, 0},
		{"near-top stays bounded", 95.5, 15, 100},
		{"oversized adjustment is clamped first", 50, 40, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FinalScore(tt.ruleScore, tt.adjustment); got != tt.want {
				t.Fatalf("FinalScore(%v, %d) = %d, want %d", tt.ruleScore, tt.adjustment, got, tt.want)
			}
		})
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, BucketHot},
		{80, BucketHot},
		{79, BucketWarm},
		{60, BucketWarm},
		{59, BucketCold},
		{0, BucketCold},
	}

	for _, tt := range tests {
		if got := BucketFor(tt.score); got != tt.want {
			t.Fatalf("BucketFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]int{95, 80, 60, 59, 10})

	if summary.TotalLeads != 5 {
		t.Fatalf("total = %d, want 5", summary.TotalLeads)
	}
	if summary.HotLeads != 2 || summary.WarmLeads != 1 || summary.ColdLeads != 2 {
		t.Fatalf("buckets = %d/%d/%d, want 2/1/2", summary.HotLeads, summary.WarmLeads, summary.ColdLeads)
	}
	// (95+80+60+59+10)/5 = 60.8
	if summary.AverageScore != 60.8 {
		t.Fatalf("average = %v, want 60.8", summary.AverageScore)
	}
}

func TestSummarize_EmptyBatch(t *testing.T) {
	summary := Summarize(nil)
	if summary != (Summary{}) {
		t.Fatalf("empty batch summary = %+v, want zero value", summary)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		lead Lead
		pos  int
		want string
	}{
		{"company wins", Lead{CompanyName: "Acme", ContactFirstName: "Jane"}, 1, "Acme"},
		{"contact name next", Lead{ContactFirstName: "Jane", ContactLastName: "Doe"}, 1, "Jane Doe"},
		{"first name only", Lead{ContactFirstName: "Jane"}, 1, "Jane"},
		{"placeholder last", Lead{}, 3, "Lead 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lead.DisplayName(tt.pos); got != tt.want {
				t.Fatalf("DisplayName = %q, want %q", got, tt.want)
			}
		})
	}
}
