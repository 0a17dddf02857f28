package muscles

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestTrackedSet verifies the catalog holds exactly 14 distinct muscles, each
// with a default threshold and a display region.
func TestTrackedSet(t *testing.T) {
	if len(Tracked) != 14 {
		t.Fatalf("len(Tracked) = %d, want 14", len(Tracked))
	}
	seen := map[Muscle]bool{}
	defaults := DefaultThresholds()
	for _, m := range Tracked {
		if seen[m] {
			t.Errorf("duplicate muscle %q", m)
		}
		seen[m] = true
		th, ok := defaults[m]
		if !ok {
			t.Errorf("no default threshold for %q", m)
		}
		if !th.Valid() {
			t.Errorf("default threshold for %q invalid: %+v", m, th)
		}
		if _, ok := RegionOf(m); !ok {
			t.Errorf("%q has no region", m)
		}
	}
}

// TestParse verifies case-insensitive matching against the tracked names.
func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Muscle
		ok   bool
	}{
		{"Chest", Chest, true},
		{"front delts", FrontDelts, true},
		{"  REAR DELTS ", RearDelts, true},
		{"Inner Thigh", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

// TestBuiltinUnknown verifies that unknown ids resolve to no contributions.
func TestBuiltinUnknown(t *testing.T) {
	if got := Builtin("nope-99"); len(got) != 0 {
		t.Errorf("Builtin(unknown) = %v, want empty", got)
	}
	if got := Resolve("nope-99", false, nil); len(got) != 0 {
		t.Errorf("Resolve(unknown) = %v, want empty", got)
	}
}

// TestBuiltinTable verifies every entry uses tracked muscles with weights in (0,1].
func TestBuiltinTable(t *testing.T) {
	for id, ex := range builtins {
		if ex.name == "" {
			t.Errorf("%s has no name", id)
		}
		for _, c := range ex.contributions {
			if _, ok := Parse(string(c.Muscle)); !ok {
				t.Errorf("%s: untracked muscle %q", id, c.Muscle)
			}
			if c.Weight <= 0 || c.Weight > 1 {
				t.Errorf("%s: weight %v out of range", id, c.Weight)
			}
		}
	}
}

// TestBuiltinReturnsCopy verifies callers can't mutate the static table.
func TestBuiltinReturnsCopy(t *testing.T) {
	got := Builtin("chest-01")
	got[0].Weight = 0.01
	if again := Builtin("chest-01"); again[0].Weight != 1.0 {
		t.Errorf("static table mutated: %v", again)
	}
}

// TestParseCustom verifies suffix weights and silent dropping of unknown names.
func TestParseCustom(t *testing.T) {
	got := ParseCustom([]string{"Chest:secondary", "Unknown Muscle"})
	if len(got) != 1 || got[0].Muscle != Chest || got[0].Weight != 0.5 {
		t.Fatalf("ParseCustom = %v, want [{Chest 0.5}]", got)
	}

	got = ParseCustom([]string{"biceps", "Forearms:tertiary", "Lats:primary", "Inner Thigh:secondary"})
	want := []Contribution{{Biceps, 1.0}, {Forearms, 0.25}, {Lats, 1.0}}
	if len(got) != len(want) {
		t.Fatalf("ParseCustom = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseCustom[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := ParseCustom(nil); len(got) != 0 {
		t.Errorf("ParseCustom(nil) = %v, want empty", got)
	}
}

// TestResolveFallback verifies custom exercises fall back to the built-in table
// only when nothing parses.
func TestResolveFallback(t *testing.T) {
	// Empty list falls back.
	got := Resolve("chest-01", true, nil)
	if len(got) != 3 || got[0].Muscle != Chest {
		t.Errorf("Resolve(empty custom) = %v, want chest-01 built-in", got)
	}

	// Only unknown names also falls back.
	got = Resolve("chest-01", true, []string{"Inner Thigh"})
	if len(got) != 3 {
		t.Errorf("Resolve(unparseable custom) = %v, want chest-01 built-in", got)
	}

	// A partial parse is used as-is, not merged with the built-in.
	got = Resolve("chest-01", true, []string{"Abs"})
	if len(got) != 1 || got[0].Muscle != Abs {
		t.Errorf("Resolve(partial custom) = %v, want [{Abs 1}]", got)
	}

	// Non-custom ignores the groups.
	got = Resolve("chest-01", false, []string{"Abs"})
	if len(got) != 3 {
		t.Errorf("Resolve(builtin) = %v, want chest-01 built-in", got)
	}
}

// TestEffectiveSetsLinear verifies doubling completed sets doubles every muscle.
func TestEffectiveSetsLinear(t *testing.T) {
	c := Builtin("chest-01")
	for _, n := range []int{1, 3, 7} {
		single := EffectiveSets(n, c)
		double := EffectiveSets(2*n, c)
		for m, v := range single {
			if !approx(double[m], 2*v) {
				t.Errorf("n=%d %s: %v != 2*%v", n, m, double[m], v)
			}
		}
		if len(single) != len(double) {
			t.Errorf("n=%d: muscle sets differ", n)
		}
	}
}

// TestEffectiveSetsAbsent verifies uncontributed muscles are absent, not zero.
func TestEffectiveSetsAbsent(t *testing.T) {
	got := EffectiveSets(3, Builtin("chest-01"))
	if _, ok := got[Quads]; ok {
		t.Error("Quads present in chest-01 effective sets")
	}
	if !approx(got[Chest], 3) || !approx(got[Triceps], 1.5) || !approx(got[FrontDelts], 0.9) {
		t.Errorf("EffectiveSets = %v", got)
	}
}

// TestMergeThresholds verifies overrides replace the whole pair and later layers win.
func TestMergeThresholds(t *testing.T) {
	merged := MergeThresholds(
		map[Muscle]Threshold{Chest: {MEV: 10, MRV: 30}, Abs: {MEV: 1, MRV: 2}},
		map[Muscle]Threshold{Abs: {MEV: 4, MRV: 5}},
	)
	if merged[Chest] != (Threshold{10, 30}) {
		t.Errorf("Chest = %+v", merged[Chest])
	}
	if merged[Abs] != (Threshold{4, 5}) {
		t.Errorf("Abs = %+v", merged[Abs])
	}
	if merged[Lats] != (Threshold{10, 25}) {
		t.Errorf("Lats = %+v, want default", merged[Lats])
	}
	if got := ThresholdFor(map[Muscle]Threshold{}, Chest); got != FallbackThreshold {
		t.Errorf("ThresholdFor(missing) = %+v, want %+v", got, FallbackThreshold)
	}
}

// TestEntries verifies the catalog listing keeps display order and reports
// overrides next to the defaults.
func TestEntries(t *testing.T) {
	table := MergeThresholds(map[Muscle]Threshold{Chest: {MEV: 10, MRV: 30}})
	entries := Entries(table)
	if len(entries) != len(Tracked) {
		t.Fatalf("len = %d, want %d", len(entries), len(Tracked))
	}
	first := entries[0]
	if first.Muscle != Chest || first.Region != RegionPush {
		t.Errorf("first = %+v, want Chest in Push", first)
	}
	if first.Threshold != (Threshold{MEV: 10, MRV: 30}) {
		t.Errorf("Chest threshold = %+v, want {10 30}", first.Threshold)
	}
	if first.Default != (Threshold{MEV: 6, MRV: 22}) {
		t.Errorf("Chest default = %+v, want {6 22}", first.Default)
	}
	if last := entries[len(entries)-1]; last.Muscle != Abs || last.Region != RegionCore {
		t.Errorf("last = %+v, want Abs in Core", last)
	}
}

// TestBuiltinByName verifies name lookup ignores case and surrounding space.
func TestBuiltinByName(t *testing.T) {
	tests := []struct {
		name   string
		wantID string
		wantOK bool
	}{
		{"Barbell Bench Press", "chest-01", true},
		{"  hack squat ", "legs-07", true},
		{"Bench Press", "", false},
	}
	for _, tt := range tests {
		id, ok := BuiltinByName(tt.name)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("BuiltinByName(%q) = %q, %v, want %q, %v", tt.name, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

// TestBuiltinNamesUnique verifies no two built-ins share a display name.
func TestBuiltinNamesUnique(t *testing.T) {
	if len(builtinByName) != len(builtins) {
		t.Errorf("%d names for %d exercises", len(builtinByName), len(builtins))
	}
}
