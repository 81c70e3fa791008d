package services

import "testing"

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		pct  float64
		want NutrientStatus
	}{
		{0, StatusDeficient},
		{49.9, StatusDeficient},
		{50, StatusSuboptimal},
		{79.9, StatusSuboptimal},
		{80, StatusAdequate},
		{89.9, StatusAdequate},
		{90, StatusOptimal},
		{100, StatusOptimal},
		{110, StatusOptimal},
		{110.1, StatusAdequate},
		{120, StatusAdequate},
		{150, StatusAdequate}, // high-normal, not yet excessive
		{150.1, StatusExcessive},
		{400, StatusExcessive},
	}
	for _, tt := range tests {
		if got := ClassifyStatus(tt.pct); got != tt.want {
			t.Errorf("ClassifyStatus(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestDeficiencySeverityBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want Severity
	}{
		{79, SeverityMild},
		{70, SeverityMild},
		{69.9, SeverityModerate},
		{40, SeverityModerate},
		{39.9, SeveritySevere},
		{20, SeveritySevere},
		{19.9, SeverityCritical},
		{0, SeverityCritical},
	}
	for _, tt := range tests {
		if got := DeficiencySeverity(tt.pct); got != tt.want {
			t.Errorf("DeficiencySeverity(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

// Severity must only worsen as intake falls. Walk the percentage down from
// target and assert the grade never improves.
func TestDeficiencySeverityMonotonic(t *testing.T) {
	rank := map[Severity]int{
		SeverityMild:     0,
		SeverityModerate: 1,
		SeveritySevere:   2,
		SeverityCritical: 3,
	}
	prev := -1
	for pct := 79.0; pct >= 0; pct -= 0.5 {
		r := rank[DeficiencySeverity(pct)]
		if r < prev {
			t.Fatalf("severity improved as pct dropped to %v", pct)
		}
		prev = r
	}
}

func TestAnalyzeProducesSortedDeficiencies(t *testing.T) {
	a := NewDeficiencyAnalyzer()
	reqs := DailyRequirements{
		Calories: 2000, Protein: 60, Carbs: 250, Fiber: 28, Fat: 65,
		VitaminD: 15, VitaminB12: 2.4, Iron: 13, Calcium: 1000, Zinc: 9.5, Omega3: 1.35,
	}
	intake := Nutrients{
		Calories: 1500,  // 75% mild
		Protein:  12,    // 20% severe
		Carbs:    250,   // 100% fine
		Fiber:    2.8,   // 10% critical
		Fat:      39,    // 60% moderate
		Iron:     26,    // 200% excess
		Calcium:  1000,  // 100%
		VitaminD: 15, VitaminB12: 2.4, Zinc: 9.5, Omega3: 1.35,
	}

	defs, excesses, levels := a.Analyze(intake, reqs)

	if len(defs) != 4 {
		t.Fatalf("got %d deficiencies, want 4: %+v", len(defs), defs)
	}
	// worst first
	wantOrder := []string{"fiber", "protein", "fat", "calories"}
	for i, want := range wantOrder {
		if defs[i].Nutrient != want {
			t.Errorf("deficiency[%d] = %s, want %s", i, defs[i].Nutrient, want)
		}
	}
	if defs[0].Severity != SeverityCritical || defs[3].Severity != SeverityMild {
		t.Errorf("severity grading off: worst %v, best %v", defs[0].Severity, defs[3].Severity)
	}

	if len(excesses) != 1 || excesses[0].Nutrient != "iron" {
		t.Fatalf("excesses = %+v, want iron only", excesses)
	}
	if excesses[0].Severity != SeverityMild {
		t.Errorf("200%% iron severity = %v, want mild", excesses[0].Severity)
	}

	if len(levels) != 11 {
		t.Errorf("got %d levels, want 11", len(levels))
	}
}

func TestAnalyzeSkipsNonPositiveRequirements(t *testing.T) {
	a := NewDeficiencyAnalyzer()

	// zero requirements everywhere: nothing to divide by, nothing reported
	defs, excesses, levels := a.Analyze(Nutrients{Calories: 2000}, DailyRequirements{})
	if len(defs) != 0 || len(excesses) != 0 || len(levels) != 0 {
		t.Errorf("zero requirements produced output: %d defs, %d excesses, %d levels",
			len(defs), len(excesses), len(levels))
	}
}

func TestExcessSeverityBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want Severity
	}{
		{160, SeverityMild},
		{200, SeverityMild},
		{201, SeverityModerate},
		{300, SeverityModerate},
		{301, SeveritySevere},
		{500, SeveritySevere},
		{501, SeverityCritical},
	}
	for _, tt := range tests {
		if got := ExcessSeverity(tt.pct); got != tt.want {
			t.Errorf("ExcessSeverity(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestAnalyzeMicronutrientsFiltersAndActs(t *testing.T) {
	a := NewDeficiencyAnalyzer()
	reqs := NewRequirementCalculator().DailyRequirements(nil)

	// macro deficiencies present but only micros may surface in the report
	intake := Nutrients{
		Calories: 500, Protein: 10,
		VitaminD: 1, Iron: 2, Calcium: 100, // all well under target
		VitaminB12: 2.4, Zinc: 9.5, Omega3: 1.35,
	}
	out := a.AnalyzeMicronutrients(intake, reqs, nil)

	for _, def := range out.Deficiencies {
		switch def.Nutrient {
		case "calories", "protein", "carbs", "fiber", "fat":
			t.Errorf("macro %s leaked into micronutrient report", def.Nutrient)
		}
	}
	if len(out.IBDSpecificNutrients) != 6 {
		t.Errorf("got %d tracked micronutrients, want 6", len(out.IBDSpecificNutrients))
	}

	actions := out.Recommendations.ImmediateActions
	if len(actions) == 0 || len(actions) > 3 {
		t.Fatalf("got %d immediate actions, want 1–3", len(actions))
	}
	for _, act := range actions {
		if act.Action == "" || act.Priority == "" || act.Timeframe == "" {
			t.Errorf("incomplete action: %+v", act)
		}
	}
	// worst deficiency drives the first action
	if actions[0].Nutrient != out.Deficiencies[0].Nutrient {
		t.Errorf("first action targets %s, worst deficiency is %s",
			actions[0].Nutrient, out.Deficiencies[0].Nutrient)
	}
}

func TestImmediateActionsCapsAtThree(t *testing.T) {
	defs := []Deficiency{
		{Nutrient: "iron", Severity: SeverityCritical},
		{Nutrient: "vitaminD", Severity: SeveritySevere},
		{Nutrient: "calcium", Severity: SeverityModerate},
		{Nutrient: "zinc", Severity: SeverityMild},
	}
	actions := ImmediateActions(defs)
	if len(actions) != 3 {
		t.Fatalf("got %d actions, want 3", len(actions))
	}
	if actions[0].Priority != "critical" || actions[0].Timeframe != "within 1 week" {
		t.Errorf("critical action mapped to %s / %s", actions[0].Priority, actions[0].Timeframe)
	}
}
