package muscles

import "strings"

// Contribution is the fraction of a completed set credited to one muscle.
type Contribution struct {
	Muscle Muscle  `json:"muscle"`
	Weight float64 `json:"weight"`
}

// Contribution weights for the custom-exercise suffixes.
const (
	WeightPrimary   = 1.0
	WeightSecondary = 0.5
	WeightTertiary  = 0.25
)

type builtinExercise struct {
	name          string
	contributions []Contribution
}

// builtins is the static exercise table. It is never written after init.
var builtins = map[string]builtinExercise{
	// chest
	"chest-01": {"Barbell Bench Press", []Contribution{{Chest, 1.0}, {Triceps, 0.5}, {FrontDelts, 0.3}}},
	"chest-02": {"Incline Barbell Bench Press", []Contribution{{Chest, 1.0}, {Triceps, 0.5}, {FrontDelts, 0.4}}},
	"chest-03": {"Decline Barbell Bench Press", []Contribution{{Chest, 1.0}, {Triceps, 0.5}}},
	"chest-04": {"Dumbbell Bench Press", []Contribution{{Chest, 1.0}, {Triceps, 0.5}, {FrontDelts, 0.3}}},
	"chest-05": {"Incline Dumbbell Press", []Contribution{{Chest, 1.0}, {Triceps, 0.5}, {FrontDelts, 0.4}}},
	"chest-06": {"Dumbbell Fly", []Contribution{{Chest, 1.0}}},
	"chest-07": {"Cable Fly", []Contribution{{Chest, 1.0}}},
	"chest-08": {"Pec Deck Machine", []Contribution{{Chest, 1.0}}},
	"chest-09": {"Machine Chest Press", []Contribution{{Chest, 1.0}, {Triceps, 0.5}, {FrontDelts, 0.3}}},
	"chest-10": {"Push-ups", []Contribution{{Chest, 1.0}, {Triceps, 0.5}, {FrontDelts, 0.3}, {Abs, 0.25}}},
	"chest-11": {"Dips (Chest)", []Contribution{{Chest, 1.0}, {Triceps, 0.5}, {FrontDelts, 0.3}}},
	"chest-12": {"Cable Crossover", []Contribution{{Chest, 1.0}}},
	"chest-13": {"Smith Machine Bench Press", []Contribution{{Chest, 1.0}, {Triceps, 0.5}, {FrontDelts, 0.3}}},
	"chest-14": {"Decline Dumbbell Press", []Contribution{{Chest, 1.0}, {Triceps, 0.5}}},

	// back
	"back-01": {"Lat Pulldown", []Contribution{{Lats, 1.0}, {Biceps, 0.5}, {RearDelts, 0.25}}},
	"back-02": {"Seated Cable Row", []Contribution{{Lats, 0.7}, {Traps, 0.5}, {Biceps, 0.5}, {RearDelts, 0.3}}},
	"back-03": {"Barbell Bent-over Row", []Contribution{{Lats, 0.7}, {Traps, 0.5}, {Biceps, 0.5}, {RearDelts, 0.3}}},
	"back-04": {"Dumbbell Row", []Contribution{{Lats, 1.0}, {Traps, 0.3}, {Biceps, 0.5}}},
	"back-05": {"Deadlift", []Contribution{{Hamstrings, 0.5}, {Glutes, 0.5}, {Traps, 0.5}}},
	"back-06": {"Romanian Deadlift", []Contribution{{Hamstrings, 1.0}, {Glutes, 0.5}}},
	"back-07": {"Pull-ups", []Contribution{{Lats, 1.0}, {Biceps, 0.5}, {RearDelts, 0.25}}},
	"back-08": {"Chin-ups", []Contribution{{Lats, 1.0}, {Biceps, 0.7}}},
	"back-09": {"T-Bar Row", []Contribution{{Lats, 0.7}, {Traps, 0.5}, {Biceps, 0.5}}},
	"back-10": {"Cable Pullover", []Contribution{{Lats, 1.0}}},
	"back-11": {"Machine Row", []Contribution{{Lats, 0.7}, {Traps, 0.5}, {Biceps, 0.5}}},
	"back-12": {"Hyperextension", []Contribution{{Glutes, 0.5}, {Hamstrings, 0.5}}},
	"back-13": {"Vertical Traction", []Contribution{{Lats, 1.0}, {Biceps, 0.5}, {RearDelts, 0.25}}},
	"back-14": {"Seated Back Extension", []Contribution{{Glutes, 0.25}}},
	"back-15": {"Assisted Chin/Dip", []Contribution{{Lats, 0.7}, {Biceps, 0.5}}},
	"back-16": {"Dumbbell Pullover", []Contribution{{Lats, 0.7}, {Chest, 0.3}}},
	"back-17": {"Straight Arm Pulldown", []Contribution{{Lats, 1.0}}},

	// legs
	"legs-01": {"Barbell Squat", []Contribution{{Quads, 1.0}, {Glutes, 0.5}, {Hamstrings, 0.25}, {Abs, 0.25}}},
	"legs-02": {"Front Squat", []Contribution{{Quads, 1.0}, {Glutes, 0.5}, {Abs, 0.3}}},
	"legs-03": {"Leg Press", []Contribution{{Quads, 1.0}, {Glutes, 0.5}, {Hamstrings, 0.25}}},
	"legs-04": {"Leg Extension", []Contribution{{Quads, 1.0}}},
	"legs-05": {"Leg Curl (Lying)", []Contribution{{Hamstrings, 1.0}}},
	"legs-06": {"Leg Curl (Seated)", []Contribution{{Hamstrings, 1.0}}},
	"legs-07": {"Hack Squat", []Contribution{{Quads, 1.0}, {Glutes, 0.5}}},
	"legs-08": {"Bulgarian Split Squat", []Contribution{{Quads, 1.0}, {Glutes, 0.5}, {Hamstrings, 0.25}}},
	"legs-09": {"Walking Lunges", []Contribution{{Quads, 1.0}, {Glutes, 0.5}, {Hamstrings, 0.25}}},
	"legs-10": {"Calf Raise (Standing)", []Contribution{{Calves, 1.0}}},
	"legs-11": {"Calf Raise (Seated)", []Contribution{{Calves, 1.0}}},
	"legs-12": {"Goblet Squat", []Contribution{{Quads, 1.0}, {Glutes, 0.5}, {Abs, 0.25}}},
	"legs-13": {"Hip Thrust", []Contribution{{Glutes, 1.0}, {Hamstrings, 0.3}}},
	"legs-14": {"Leg Press Calf Raise", []Contribution{{Calves, 1.0}}},
	"legs-15": {"Smith Machine Squat", []Contribution{{Quads, 1.0}, {Glutes, 0.5}}},
	"legs-16": {"Hip Abductor", []Contribution{{Glutes, 0.5}}},
	"legs-17": {"Hip Adductor", nil},
	"legs-18": {"Multi Hip", []Contribution{{Glutes, 0.5}}},
	"legs-19": {"Hip Thrust Machine", []Contribution{{Glutes, 1.0}, {Hamstrings, 0.3}}},
	"legs-20": {"Sumo Deadlift", []Contribution{{Quads, 0.5}, {Glutes, 0.7}, {Hamstrings, 0.5}}},
	"legs-21": {"Reverse Lunge", []Contribution{{Quads, 1.0}, {Glutes, 0.5}, {Hamstrings, 0.25}}},
	"legs-22": {"Step-ups", []Contribution{{Quads, 1.0}, {Glutes, 0.5}}},
	"legs-23": {"Nordic Hamstring Curl", []Contribution{{Hamstrings, 1.0}}},
	"legs-24": {"Glute Kickback Machine", []Contribution{{Glutes, 1.0}, {Hamstrings, 0.25}}},
	"legs-25": {"Pendulum Squat", []Contribution{{Quads, 1.0}, {Glutes, 0.5}}},
	"legs-26": {"Belt Squat", []Contribution{{Quads, 1.0}, {Glutes, 0.5}, {Hamstrings, 0.25}}},

	// shoulders
	"shldr-01": {"Overhead Press (Barbell)", []Contribution{{FrontDelts, 1.0}, {SideDelts, 0.5}, {Triceps, 0.5}}},
	"shldr-02": {"Dumbbell Shoulder Press", []Contribution{{FrontDelts, 1.0}, {SideDelts, 0.5}, {Triceps, 0.5}}},
	"shldr-03": {"Lateral Raise", []Contribution{{SideDelts, 1.0}}},
	"shldr-04": {"Front Raise", []Contribution{{FrontDelts, 1.0}}},
	"shldr-05": {"Face Pull", []Contribution{{RearDelts, 1.0}, {Traps, 0.3}}},
	"shldr-06": {"Rear Delt Fly", []Contribution{{RearDelts, 1.0}}},
	"shldr-07": {"Machine Shoulder Press", []Contribution{{FrontDelts, 1.0}, {SideDelts, 0.5}, {Triceps, 0.5}}},
	"shldr-08": {"Cable Lateral Raise", []Contribution{{SideDelts, 1.0}}},
	"shldr-09": {"Arnold Press", []Contribution{{FrontDelts, 1.0}, {SideDelts, 0.5}, {Triceps, 0.3}}},
	"shldr-10": {"Upright Row", []Contribution{{SideDelts, 1.0}, {Traps, 0.5}}},
	"shldr-11": {"Reverse Pec Deck", []Contribution{{RearDelts, 1.0}}},
	"shldr-12": {"Shrugs (Barbell)", []Contribution{{Traps, 1.0}}},
	"shldr-13": {"Shrugs (Dumbbell)", []Contribution{{Traps, 1.0}}},
	"shldr-14": {"Machine Lateral Raise", []Contribution{{SideDelts, 1.0}}},
	"shldr-15": {"Landmine Press", []Contribution{{FrontDelts, 1.0}, {Chest, 0.3}, {Triceps, 0.3}}},

	// arms
	"arms-01": {"Barbell Curl", []Contribution{{Biceps, 1.0}}},
	"arms-02": {"Dumbbell Curl", []Contribution{{Biceps, 1.0}}},
	"arms-03": {"Hammer Curl", []Contribution{{Biceps, 0.7}, {Forearms, 0.5}}},
	"arms-04": {"Preacher Curl", []Contribution{{Biceps, 1.0}}},
	"arms-05": {"Cable Curl", []Contribution{{Biceps, 1.0}}},
	"arms-06": {"Concentration Curl", []Contribution{{Biceps, 1.0}}},
	"arms-07": {"Tricep Pushdown", []Contribution{{Triceps, 1.0}}},
	"arms-08": {"Overhead Tricep Extension", []Contribution{{Triceps, 1.0}}},
	"arms-09": {"Skull Crushers", []Contribution{{Triceps, 1.0}}},
	"arms-10": {"Tricep Dips", []Contribution{{Triceps, 1.0}, {Chest, 0.3}, {FrontDelts, 0.25}}},
	"arms-11": {"Cable Overhead Extension", []Contribution{{Triceps, 1.0}}},
	"arms-12": {"Close-Grip Bench Press", []Contribution{{Triceps, 1.0}, {Chest, 0.5}}},
	"arms-13": {"Wrist Curl", []Contribution{{Forearms, 1.0}}},
	"arms-14": {"Reverse Curl", []Contribution{{Forearms, 0.7}, {Biceps, 0.5}}},
	"arms-15": {"Machine Bicep Curl", []Contribution{{Biceps, 1.0}}},
	"arms-16": {"Machine Tricep Extension", []Contribution{{Triceps, 1.0}}},
	"arms-17": {"Incline Dumbbell Curl", []Contribution{{Biceps, 1.0}}},
	"arms-18": {"EZ Bar Curl", []Contribution{{Biceps, 1.0}}},
	"arms-19": {"Tricep Kickback", []Contribution{{Triceps, 1.0}}},
	"arms-20": {"Spider Curl", []Contribution{{Biceps, 1.0}}},

	// core
	"core-01": {"Plank", []Contribution{{Abs, 1.0}}},
	"core-02": {"Crunches", []Contribution{{Abs, 1.0}}},
	"core-03": {"Hanging Leg Raise", []Contribution{{Abs, 1.0}}},
	"core-04": {"Cable Crunch", []Contribution{{Abs, 1.0}}},
	"core-05": {"Russian Twist", []Contribution{{Abs, 1.0}}},
	"core-06": {"Ab Wheel Rollout", []Contribution{{Abs, 1.0}}},
	"core-07": {"Mountain Climbers", []Contribution{{Abs, 0.5}}},
	"core-08": {"Side Plank", []Contribution{{Abs, 0.7}}},
	"core-09": {"Bicycle Crunch", []Contribution{{Abs, 1.0}}},
	"core-10": {"Dead Bug", []Contribution{{Abs, 1.0}}},
	"core-11": {"Decline Sit-up", []Contribution{{Abs, 1.0}}},
	"core-12": {"Abdominal Crunch Machine", []Contribution{{Abs, 1.0}}},
	"core-13": {"Total Abdominal Machine", []Contribution{{Abs, 1.0}}},
	"core-14": {"Rotary Torso Machine", []Contribution{{Abs, 0.7}}},
	"core-15": {"Cable Woodchop", []Contribution{{Abs, 0.7}}},
	"core-16": {"Pallof Press", []Contribution{{Abs, 0.7}}},
	"core-17": {"Lying Leg Raise", []Contribution{{Abs, 1.0}}},
	"core-18": {"Farmer's Walk", []Contribution{{Traps, 0.5}, {Forearms, 0.5}, {Abs, 0.3}}},

	// cardio
	"cardio-01": {"Treadmill", nil},
	"cardio-02": {"Elliptical", nil},
	"cardio-03": {"Bike", nil},
	"cardio-04": {"Rowing Machine", []Contribution{{Lats, 0.3}, {Biceps, 0.25}}},
	"cardio-05": {"Stair Climber", nil},
	"cardio-06": {"Jump Rope", nil},
	"cardio-07": {"Battle Ropes", nil},
	"cardio-08": {"Burpees", nil},
	"cardio-09": {"Air Bike", nil},
	"cardio-10": {"Ski Erg", []Contribution{{Lats, 0.3}, {Abs, 0.25}}},
	"cardio-11": {"Kettlebell Swing", []Contribution{{Glutes, 0.7}, {Hamstrings, 0.5}, {Abs, 0.25}}},
}

// Builtin returns the contributions of a built-in exercise. Unknown ids yield nil.
func Builtin(exerciseID string) []Contribution {
	ex, ok := builtins[exerciseID]
	if !ok || len(ex.contributions) == 0 {
		return nil
	}
	out := make([]Contribution, len(ex.contributions))
	copy(out, ex.contributions)
	return out
}

// BuiltinName returns the display name of a built-in exercise.
func BuiltinName(exerciseID string) (string, bool) {
	ex, ok := builtins[exerciseID]
	return ex.name, ok
}

// builtinByName maps lowercased display names to built-in ids.
var builtinByName = func() map[string]string {
	m := make(map[string]string, len(builtins))
	for id, ex := range builtins {
		m[strings.ToLower(ex.name)] = id
	}
	return m
}()

// BuiltinByName finds a built-in exercise by display name, ignoring case.
func BuiltinByName(name string) (string, bool) {
	id, ok := builtinByName[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// IsBuiltin reports whether exerciseID is in the static table.
func IsBuiltin(exerciseID string) bool {
	_, ok := builtins[exerciseID]
	return ok
}

// ParseCustom reads muscle-group strings of a custom exercise. Each entry may
// end in ":primary", ":secondary" or ":tertiary"; no suffix counts as primary.
// Entries that don't name a tracked muscle are dropped.
func ParseCustom(groups []string) []Contribution {
	var out []Contribution
	for _, g := range groups {
		name, weight := splitSuffix(g)
		m, ok := Parse(name)
		if !ok {
			continue
		}
		out = append(out, Contribution{Muscle: m, Weight: weight})
	}
	return out
}

func splitSuffix(g string) (string, float64) {
	if base, ok := strings.CutSuffix(g, ":secondary"); ok {
		return base, WeightSecondary
	}
	if base, ok := strings.CutSuffix(g, ":tertiary"); ok {
		return base, WeightTertiary
	}
	if base, ok := strings.CutSuffix(g, ":primary"); ok {
		return base, WeightPrimary
	}
	return g, WeightPrimary
}

// Resolve returns the contributions for an exercise. Custom exercises are
// parsed from their muscle groups on every call and fall back to the built-in
// table when nothing parses.
func Resolve(exerciseID string, isCustom bool, groups []string) []Contribution {
	if isCustom {
		if parsed := ParseCustom(groups); len(parsed) > 0 {
			return parsed
		}
	}
	return Builtin(exerciseID)
}

// EffectiveSets credits completed sets to each contributing muscle.
// Muscles without a contribution are absent from the result.
func EffectiveSets(completed int, contributions []Contribution) map[Muscle]float64 {
	out := make(map[Muscle]float64, len(contributions))
	AddEffectiveSets(out, completed, contributions)
	return out
}

// AddEffectiveSets adds completed*weight for each contribution into acc.
func AddEffectiveSets(acc map[Muscle]float64, completed int, contributions []Contribution) {
	for _, c := range contributions {
		acc[c.Muscle] += float64(completed) * c.Weight
	}
}
