package alpha

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/claude/trainload/internal/backup"
	"github.com/claude/trainload/internal/models"
	"github.com/claude/trainload/internal/muscles"
)

var (
	// "1:02 hr"
	hoursDurationRe = regexp.MustCompile(`^(\d+):(\d{2})`)
	// "45 min"
	minutesDurationRe = regexp.MustCompile(`^(\d+)\s*min`)

	nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// IsExportFile reports whether name looks like an Alpha Progression export.
func IsExportFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}

// ReadFile parses and converts an export file.
func ReadFile(path string) (*backup.AppData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	sessions, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}
	return Convert(sessions), nil
}

// Convert turns sessions into backup data. Exercises are matched against the
// built-in table by name; unmatched ones become custom exercises without
// muscle groups. Warm-up sets are dropped and every working set counts as
// completed.
func Convert(sessions []Session) *backup.AppData {
	data := &backup.AppData{}
	custom := make(map[string]bool)

	for _, s := range sessions {
		w := models.Workout{
			ID:           fmt.Sprintf("alpha:%s:%s", s.Start.Format("2006-01-02T15:04"), s.Name),
			Date:         s.Start.Format(models.DateLayout),
			Name:         s.Name,
			DurationMins: parseDuration(s.Duration),
		}
		for _, ex := range s.Exercises {
			id, builtin := matchBuiltin(ex.Name, ex.Equipment)
			if !builtin {
				id = customID(ex.Name, ex.Equipment)
				if !custom[id] {
					custom[id] = true
					data.CustomExercises = append(data.CustomExercises, models.Exercise{
						ID:           id,
						Name:         ex.Name,
						Equipment:    models.Equipment(ex.Equipment),
						IsCustom:     true,
						TrackingType: models.TrackingStrength,
					})
				}
			}

			we := models.WorkoutExercise{ExerciseID: id}
			for _, set := range ex.Sets {
				if set.Warmup {
					continue
				}
				note := setNote(set)
				we.Sets = append(we.Sets, models.WorkoutSet{
					Weight:    set.WeightKg,
					Reps:      set.Reps,
					Completed: true,
					Note:      &note,
				})
			}
			if len(we.Sets) > 0 {
				w.Exercises = append(w.Exercises, we)
			}
		}
		data.Workouts = append(data.Workouts, w)
	}
	return data
}

// matchBuiltin tries the name as written, singularized, and prefixed with the
// equipment: "Hack Squats" on a machine finds "Hack Squat".
func matchBuiltin(name, equipment string) (string, bool) {
	names := []string{name, strings.TrimSuffix(name, "s")}
	equipments := []string{"", equipment, strings.TrimSuffix(equipment, "s")}
	for _, e := range equipments {
		for _, n := range names {
			if id, ok := muscles.BuiltinByName(strings.TrimSpace(e + " " + n)); ok {
				return id, true
			}
		}
	}
	return "", false
}

func customID(name, equipment string) string {
	slug := nonSlugRe.ReplaceAllString(strings.ToLower(name+" "+equipment), "-")
	return "alpha-" + strings.Trim(slug, "-")
}

func parseDuration(s string) int {
	s = strings.TrimSpace(s)
	if m := hoursDurationRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return h*60 + min
	}
	if m := minutesDurationRe.FindStringSubmatch(s); m != nil {
		min, _ := strconv.Atoi(m[1])
		return min
	}
	return 0
}

func setNote(s Set) string {
	note := "RIR " + strconv.FormatFloat(s.RIR, 'f', -1, 64)
	if s.BodyweightPlus {
		note += ", bodyweight"
	}
	return note
}
