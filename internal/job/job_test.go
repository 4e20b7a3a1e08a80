package job

import (
	"reflect"
	"testing"

	"github.com/jfaraday/bookforge/internal/config"
	"github.com/jfaraday/bookforge/internal/plan"
)

func TestEncodeID(t *testing.T) {
	got := EncodeID("Complex Analysis", "Residue Calculus", 2)
	want := "example::complex-analysis::residue-calculus::2"
	if got != want {
		t.Fatalf("EncodeID = %q, want %q", got, want)
	}
}

func TestParseID_RoundTrip(t *testing.T) {
	id := EncodeID("Fourier Analysis", "Gibbs Phenomenon", 5)
	ch, sec, idx, err := ParseID(id)
	if err != nil {
		t.Fatal(err)
	}
	if ch != "fourier-analysis" || sec != "gibbs-phenomenon" || idx != 5 {
		t.Fatalf("ParseID = %q %q %d", ch, sec, idx)
	}
}

func TestParseID_Malformed(t *testing.T) {
	for _, id := range []string{"", "example::a::b", "other::a::b::1", "example::a::b::x"} {
		if _, _, _, err := ParseID(id); err == nil {
			t.Fatalf("ParseID(%q) should fail", id)
		}
	}
}

func TestAppend_StrictGrowth(t *testing.T) {
	j := &Job{}
	j.Append("first segment\n")
	if j.Text != "first segment" {
		t.Fatalf("Text = %q", j.Text)
	}
	j.Append("second segment")
	if j.Text != "first segment\nsecond segment" {
		t.Fatalf("Text = %q", j.Text)
	}
}

func testPlans() ([]config.Chapter, map[plan.Key]*plan.SectionPlan) {
	chapters := []config.Chapter{
		{Title: "Complex Analysis", Sections: []string{"Residue Calculus", "Saddle Points"}},
		{Title: "Fourier Analysis", Sections: []string{"Laplace Transform"}},
	}
	plans := map[plan.Key]*plan.SectionPlan{
		{Chapter: "Complex Analysis", Section: "Residue Calculus"}: {
			Narrative: "n1",
			Examples: []plan.ExampleSpec{
				{Title: "E0", Summary: "s0"},
				{Title: "E1", Summary: "s1"},
			},
		},
		{Chapter: "Fourier Analysis", Section: "Laplace Transform"}: {
			Narrative: "n2",
			Examples:  []plan.ExampleSpec{{Title: "E2", Summary: "s2"}},
		},
	}
	return chapters, plans
}

func TestNewRegistry_OrderAndKeys(t *testing.T) {
	chapters, plans := testPlans()
	r := NewRegistry(chapters, plans)

	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	wantIDs := []string{
		"example::complex-analysis::residue-calculus::0",
		"example::complex-analysis::residue-calculus::1",
		"example::fourier-analysis::laplace-transform::0",
	}
	if !reflect.DeepEqual(r.IDs(), wantIDs) {
		t.Fatalf("IDs = %v", r.IDs())
	}

	j := r.Get(wantIDs[1])
	if j == nil || j.Title != "E1" || j.Index != 1 || j.Status != StatusPending {
		t.Fatalf("job = %+v", j)
	}
	if r.Get("example::nope::nope::0") != nil {
		t.Fatal("unknown id should return nil")
	}
}

func TestNewRegistry_Deterministic(t *testing.T) {
	chapters, plans := testPlans()
	a := NewRegistry(chapters, plans)
	b := NewRegistry(chapters, plans)
	if !reflect.DeepEqual(a.IDs(), b.IDs()) {
		t.Fatal("registry enumeration is not deterministic")
	}
}

func TestNewRegistry_SkipsUnplannedSections(t *testing.T) {
	chapters, plans := testPlans()
	delete(plans, plan.Key{Chapter: "Fourier Analysis", Section: "Laplace Transform"})
	r := NewRegistry(chapters, plans)
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
}
