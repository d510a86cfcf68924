package models

type LoginModel struct {
	UserId    string `bson:"_id"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
	UserType  string `bson:"userType"`
	CreatedOn int64  `bson:"createdOn,omitempty"`
}

func (m *LoginModel) Id() string {
	return m.UserId
}
