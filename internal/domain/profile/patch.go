package profile

// ProfilePatch carries only the fields present in an update request.
// A nil pointer means "leave unchanged"; slices and the social block
// replace the previous value wholesale when present.
type ProfilePatch struct {
	Name           *string          `json:"name"`
	Title          *string          `json:"title"`
	Tagline        *string          `json:"tagline"`
	Email          *string          `json:"email"`
	Phone          *string          `json:"phone"`
	Location       *string          `json:"location"`
	Avatar         *string          `json:"avatar"`
	ProfilePhoto   *string          `json:"profilePhoto"`
	ResumeFile     *string          `json:"resumeFile"`
	Social         *Social          `json:"social"`
	Summary        *string          `json:"summary"`
	Skills         *[]Skill         `json:"skills"`
	Experience     *[]Experience    `json:"experience"`
	Projects       *[]Project       `json:"projects"`
	Education      *[]Education     `json:"education"`
	Certifications *[]Certification `json:"certifications"`
}

type SettingsPatch struct {
	Theme            *string `json:"theme"`
	AccentColor      *string `json:"accentColor"`
	ShowEmail        *bool   `json:"showEmail"`
	ShowPhone        *bool   `json:"showPhone"`
	ShowInstagram    *bool   `json:"showInstagram"`
	EnableAnimations *bool   `json:"enableAnimations"`
	ParticleCount    *int    `json:"particleCount"`
}

func (p *Profile) Apply(patch *ProfilePatch) {
	if patch == nil {
		return
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Tagline != nil {
		p.Tagline = *patch.Tagline
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	if patch.ProfilePhoto != nil {
		p.ProfilePhoto = patch.ProfilePhoto
	}
	if patch.ResumeFile != nil {
		p.ResumeFile = patch.ResumeFile
	}
	if patch.Social != nil {
		p.Social = *patch.Social
	}
	if patch.Summary != nil {
		p.Summary = *patch.Summary
	}
	if patch.Skills != nil {
		p.Skills = *patch.Skills
	}
	if patch.Experience != nil {
		p.Experience = *patch.Experience
	}
	if patch.Projects != nil {
		p.Projects = *patch.Projects
	}
	if patch.Education != nil {
		p.Education = *patch.Education
	}
	if patch.Certifications != nil {
		p.Certifications = *patch.Certifications
	}
}

func (s *Settings) Apply(patch *SettingsPatch) {
	if patch == nil {
		return
	}
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.AccentColor != nil {
		s.AccentColor = *patch.AccentColor
	}
	if patch.ShowEmail != nil {
		s.ShowEmail = *patch.ShowEmail
	}
	if patch.ShowPhone != nil {
		s.ShowPhone = *patch.ShowPhone
	}
	if patch.ShowInstagram != nil {
		s.ShowInstagram = *patch.ShowInstagram
	}
	if patch.EnableAnimations != nil {
		s.EnableAnimations = *patch.EnableAnimations
	}
	if patch.ParticleCount != nil {
		s.ParticleCount = *patch.ParticleCount
	}
}
