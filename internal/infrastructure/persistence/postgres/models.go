package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                string       `gorm:"type:uuid;primaryKey"`
	FullName          string       `gorm:"type:varchar(500);not null"`
	Username          string       `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email             string       `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash      string       `gorm:"type:varchar(255);not null"`
	Role              string       `gorm:"type:varchar(50);not null;index"`
	AvatarURL         *string      `gorm:"type:varchar(500)"`
	About             string       `gorm:"type:text"`
	Experience        string       `gorm:"type:text"`
	YearsOfExperience int          `gorm:"not null;default:0"`
	Availability      string       `gorm:"type:varchar(50)"`
	WorkStartDate     *int64       ``
	WorkEndDate       *int64       ``
	GoogleID          *string      `gorm:"type:varchar(255);index"`
	Skills            []SkillModel `gorm:"many2many:user_skills;joinForeignKey:UserID;joinReferences:SkillID"`
	CreatedAt         int64        `gorm:"autoCreateTime;index"`
	UpdatedAt         int64        `gorm:"autoUpdateTime"`
	DeletedAt         *int64       `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// SkillModel é o model GORM para o catálogo de skills
type SkillModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (SkillModel) TableName() string {
	return "skills"
}

// BoardModel é o model GORM para boards (workspaces)
type BoardModel struct {
	ID          string      `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"type:varchar(200);not null"`
	Description string      `gorm:"type:text"`
	OwnerID     string      `gorm:"type:uuid;not null;index"`
	Members     []UserModel `gorm:"many2many:board_members;joinForeignKey:BoardID;joinReferences:UserID"`
	CreatedAt   int64       `gorm:"autoCreateTime;index"`
	UpdatedAt   int64       `gorm:"autoUpdateTime"`
	DeletedAt   *int64      `gorm:"index"` // Soft delete
}

func (BoardModel) TableName() string {
	return "boards"
}
