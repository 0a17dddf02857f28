package models

// Category is the library section an exercise is listed under.
type Category string

const (
	CategoryChest     Category = "Chest"
	CategoryBack      Category = "Back"
	CategoryLegs      Category = "Legs"
	CategoryShoulders Category = "Shoulders"
	CategoryArms      Category = "Arms"
	CategoryCore      Category = "Core"
	CategoryCardio    Category = "Cardio"
)

// Equipment is the implement an exercise is performed with.
type Equipment string

const (
	EquipmentBarbell    Equipment = "Barbell"
	EquipmentDumbbell   Equipment = "Dumbbell"
	EquipmentMachine    Equipment = "Machine"
	EquipmentCable      Equipment = "Cable"
	EquipmentBodyweight Equipment = "Bodyweight"
	EquipmentKettlebell Equipment = "Kettlebell"
	EquipmentBand       Equipment = "Band"
	EquipmentOther      Equipment = "Other"
)

// TrackingType says which set fields an exercise records.
type TrackingType string

const (
	TrackingStrength   TrackingType = "Strength"
	TrackingCardio     TrackingType = "Cardio"
	TrackingDuration   TrackingType = "Duration"
	TrackingBodyweight TrackingType = "Bodyweight"
)

// Exercise is an exercise catalog entry. For custom exercises MuscleGroups
// holds free-text names with optional ":primary"/":secondary"/":tertiary"
// suffixes.
type Exercise struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     Category     `json:"category"`
	Equipment    Equipment    `json:"equipment"`
	MuscleGroups []string     `json:"muscle_groups"`
	Description  string       `json:"description"`
	IsCustom     bool         `json:"is_custom"`
	Image        *string      `json:"image,omitempty"`
	TrackingType TrackingType `json:"tracking_type,omitempty"`
}
