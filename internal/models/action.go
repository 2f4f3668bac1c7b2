package models

// ActionType classifies an eco-action kind.
type ActionType string

const (
	ActionRecycle         ActionType = "recycle"
	ActionBike            ActionType = "bike"
	ActionPublicTransport ActionType = "public_transport"
	ActionPlantTree       ActionType = "plant_tree"
	ActionReusableBottle  ActionType = "reusable_bottle"
	ActionMeatlessMeal    ActionType = "meatless_meal"
)

// ActionSpec describes the fixed display attributes and point value of an
// action type.
type ActionSpec struct {
	Action ActionType
	Label  string
	Icon   string
	Points int
}

// Catalog lists every loggable action in display order. Labels, icons and
// point values are fixed per action type.
var Catalog = []ActionSpec{
	{Action: ActionRecycle, Label: "Recycle", Icon: "♻️", Points: 10},
	{Action: ActionBike, Label: "Bike to Work", Icon: "🚲", Points: 15},
	{Action: ActionPublicTransport, Label: "Public Transport", Icon: "🚌", Points: 10},
	{Action: ActionPlantTree, Label: "Plant a Tree", Icon: "🌳", Points: 25},
	{Action: ActionReusableBottle, Label: "Reusable Bottle", Icon: "🥤", Points: 5},
	{Action: ActionMeatlessMeal, Label: "Meatless Meal", Icon: "🥗", Points: 10},
}

// LookupAction returns the catalog spec for the given key, or false if the
// key is not a known action.
func LookupAction(key ActionType) (ActionSpec, bool) {
	for _, spec := range Catalog {
		if spec.Action == key {
			return spec, true
		}
	}
	return ActionSpec{}, false
}
