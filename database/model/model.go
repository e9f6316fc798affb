package model

// User is an account that can authenticate against the API. The password
// column stores a bcrypt hash, never plaintext, and is never serialized.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Password string `json:"-" gorm:"size:256;not null"`
}

func (User) TableName() string {
	return "users"
}

// Specialization is the parent catalog entity. Its id is a generated opaque
// hex string and is immutable after creation.
type Specialization struct {
	Id   string `json:"id" gorm:"primaryKey;size:32"`
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`

	// CourseItems are owned by the specialization; deleting it must leave
	// no orphaned items.
	CourseItems []CourseItem `json:"course_items,omitempty" gorm:"foreignKey:SpecializationId;constraint:OnDelete:CASCADE"`
}

func (Specialization) TableName() string {
	return "specializations"
}

// CourseItem belongs to exactly one specialization. The (name,
// specialization_id) pair is unique within that specialization.
type CourseItem struct {
	Id               string `json:"id" gorm:"primaryKey;size:32"`
	Name             string `json:"name" gorm:"size:100;not null;uniqueIndex:idx_course_items_name_spec"`
	Type             string `json:"type" gorm:"size:50;not null"`
	SpecializationId string `json:"specialization_id" gorm:"size:32;not null;uniqueIndex:idx_course_items_name_spec"`

	Specialization *Specialization `json:"specialization,omitempty" gorm:"foreignKey:SpecializationId"`
}

func (CourseItem) TableName() string {
	return "course_items"
}
