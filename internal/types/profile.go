package types

// ProfileType classifies a user's sustainability engagement level.
type ProfileType string

const (
	ProfileBeginner     ProfileType = "BEGINNER"
	ProfileIntermediate ProfileType = "INTERMEDIATE"
	ProfileExpert       ProfileType = "EXPERT"
)

// Valid reports whether p is one of the three known profile types.
func (p ProfileType) Valid() bool {
	switch p {
	case ProfileBeginner, ProfileIntermediate, ProfileExpert:
		return true
	}
	return false
}
