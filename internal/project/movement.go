package project

// MovementType classifies an object event's movement behavior. Values are
// the MOVEMENT_TYPE_* identifiers from the decomp's map JSON.
type MovementType string

// MovementTypeInvisible never renders, stationary or not.
const MovementTypeInvisible MovementType = "MOVEMENT_TYPE_INVISIBLE"

// stationaryMovementTypes is the closed set of movement types that keep an
// entity visually fixed in place. It excludes the WANDER_*, WALK_*, JOG/RUN,
// COPY_PLAYER_* and INVISIBLE categories.
var stationaryMovementTypes = map[MovementType]struct{}{
	"MOVEMENT_TYPE_FACE_DOWN":                  {},
	"MOVEMENT_TYPE_FACE_UP":                    {},
	"MOVEMENT_TYPE_FACE_LEFT":                  {},
	"MOVEMENT_TYPE_FACE_RIGHT":                 {},
	"MOVEMENT_TYPE_LOOK_AROUND":                {},
	"MOVEMENT_TYPE_FACE_DOWN_AND_LEFT":         {},
	"MOVEMENT_TYPE_FACE_DOWN_AND_RIGHT":        {},
	"MOVEMENT_TYPE_FACE_UP_AND_LEFT":           {},
	"MOVEMENT_TYPE_FACE_UP_AND_RIGHT":          {},
	"MOVEMENT_TYPE_FACE_LEFT_AND_RIGHT":        {},
	"MOVEMENT_TYPE_FACE_DOWN_AND_UP":           {},
	"MOVEMENT_TYPE_FACE_DOWN_UP_AND_RIGHT":     {},
	"MOVEMENT_TYPE_FACE_UP_LEFT_AND_RIGHT":     {},
	"MOVEMENT_TYPE_FACE_DOWN_LEFT_AND_RIGHT":   {},
	"MOVEMENT_TYPE_ROTATE_CLOCKWISE":           {},
	"MOVEMENT_TYPE_ROTATE_COUNTERCLOCKWISE":    {},
	"MOVEMENT_TYPE_WALK_IN_PLACE_DOWN":         {},
	"MOVEMENT_TYPE_WALK_IN_PLACE_UP":           {},
	"MOVEMENT_TYPE_WALK_IN_PLACE_LEFT":         {},
	"MOVEMENT_TYPE_WALK_IN_PLACE_RIGHT":        {},
	"MOVEMENT_TYPE_WALK_SLOWLY_IN_PLACE_LEFT":  {},
	"MOVEMENT_TYPE_WALK_SLOWLY_IN_PLACE_RIGHT": {},
	"MOVEMENT_TYPE_JOG_IN_PLACE_LEFT":          {},
	"MOVEMENT_TYPE_JOG_IN_PLACE_RIGHT":         {},
	"MOVEMENT_TYPE_TREE_DISGUISE":              {},
	"MOVEMENT_TYPE_MOUNTAIN_DISGUISE":          {},
	"MOVEMENT_TYPE_BERRY_TREE_GROWTH":          {},
	"MOVEMENT_TYPE_BURIED":                     {},
}

// IsStationary reports whether the movement type keeps the entity fixed in
// place, qualifying it for static sprite overlay.
func (m MovementType) IsStationary() bool {
	if m == MovementTypeInvisible {
		return false
	}
	_, ok := stationaryMovementTypes[m]
	return ok
}
