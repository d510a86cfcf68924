package models

// ProfileModel is the user's document in the "users" collection, keyed by the
// same id as their login record.
type ProfileModel struct {
	LoginId           string                 `bson:"_id" json:"loginId"`
	Name              string                 `bson:"name,omitempty" json:"name"`
	PhotoUrl          string                 `bson:"photoUrl" json:"photoUrl"`
	Bio               string                 `bson:"bio" json:"bio"`
	PreferredLanguage string                 `bson:"preferredLanguage" json:"preferredLanguage"`
	MetadataMap       map[string]interface{} `bson:"metadata"`
	CreatedOn         int64                  `bson:"createdOn,omitempty" json:"createdOn"`
}

func (m *ProfileModel) Id() string {
	return m.LoginId
}
