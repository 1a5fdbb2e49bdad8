package dto

type CreateProjectDTO struct {
	Title       string   `json:"title" form:"title" binding:"required" example:"Web application development"`
	Description *string  `json:"description,omitempty" form:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" form:"price,omitempty" example:"500000"`
	Deadline    *string  `json:"deadline,omitempty" form:"deadline,omitempty" example:"2025-04-01T00:00:00Z"`
	SkillNames  []string `json:"skill_names" form:"skill_names"`
}

type UpdateProjectDTO struct {
	Title       *string  `json:"title,omitempty" form:"title,omitempty"`
	Description *string  `json:"description,omitempty" form:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" form:"price,omitempty"`
	Deadline    *string  `json:"deadline,omitempty" form:"deadline,omitempty"`
	SkillNames  []string `json:"skill_names" form:"skill_names"`
}

type UpdateProjectSkillsDTO struct {
	SkillNames []string `json:"skill_names" form:"skill_names"`
}
