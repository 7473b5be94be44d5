package models

// LocalizedText is an English/Tamil label pair.
// The engine treats the pair as opaque; only the UI picks a language.
type LocalizedText struct {
	En string `bson:"en" json:"en"`
	Ta string `bson:"ta" json:"ta"`
}

// Display returns the English variant, falling back to Tamil.
func (t LocalizedText) Display() string {
	if t.En != "" {
		return t.En
	}
	return t.Ta
}
