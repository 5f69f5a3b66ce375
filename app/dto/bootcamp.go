package dto

type BootcampRequest struct {
	Name          string   `json:"name" validate:"required,max=50"`
	Description   string   `json:"description" validate:"required,max=500"`
	Website       string   `json:"website" validate:"omitempty,url"`
	Phone         string   `json:"phone" validate:"omitempty,max=20"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Address       string   `json:"address"`
	Careers       []string `json:"careers" validate:"required,min=1"`
	AverageCost   float64  `json:"averageCost" validate:"omitempty,gte=0"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"jobAssistance"`
	JobGuarantee  bool     `json:"jobGuarantee"`
	AcceptGi      bool     `json:"acceptGi"`
}

type CourseRequest struct {
	Title        string  `json:"title" validate:"required,max=100"`
	Description  string  `json:"description" validate:"required"`
	Weeks        int     `json:"weeks" validate:"required,gt=0"`
	Tuition      float64 `json:"tuition" validate:"required,gte=0"`
	MinimumSkill string  `json:"minimumSkill" validate:"required,oneof=beginner intermediate advanced"`
	Scholarship  bool    `json:"scholarshipAvailable"`
}

type ReviewRequest struct {
	Title  string `json:"title" validate:"required,max=100"`
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=10"`
}
