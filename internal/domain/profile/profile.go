package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	Image        *string  `json:"image"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link"`
}

type Social struct {
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Website   string `json:"website"`
}

type Profile struct {
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	Tagline        string          `json:"tagline"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Location       string          `json:"location"`
	Avatar         string          `json:"avatar"`
	ProfilePhoto   *string         `json:"profilePhoto"`
	ResumeFile     *string         `json:"resumeFile"`
	Social         Social          `json:"social"`
	Summary        string          `json:"summary"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
}

type Settings struct {
	Theme            string `json:"theme"`
	AccentColor      string `json:"accentColor"`
	ShowEmail        bool   `json:"showEmail"`
	ShowPhone        bool   `json:"showPhone"`
	ShowInstagram    bool   `json:"showInstagram"`
	EnableAnimations bool   `json:"enableAnimations"`
	ParticleCount    int    `json:"particleCount"`
}

// ProfileData is the persisted envelope: exactly one exists per deployment.
type ProfileData struct {
	Profile  Profile  `json:"profile"`
	Settings Settings `json:"settings"`
}

// Store is the singleton envelope store. Update serializes the whole
// read-modify-write cycle so concurrent patches touching disjoint fields
// both survive.
type Store interface {
	Read(ctx context.Context) (*ProfileData, error)
	Update(ctx context.Context, mutate func(*ProfileData) error) (*ProfileData, error)
}

func DefaultProfileData() *ProfileData {
	data := &ProfileData{
		Profile: Profile{
			Name:           "Your Name",
			Title:          "Your Title",
			Tagline:        "Your tagline here",
			Email:          "email@example.com",
			Avatar:         "/avatar.png",
			Skills:         []Skill{},
			Experience:     []Experience{},
			Projects:       []Project{},
			Education:      []Education{},
			Certifications: []Certification{},
		},
		Settings: Settings{
			Theme:            "dark",
			AccentColor:      "#0ea5e9",
			ShowEmail:        true,
			ShowPhone:        false,
			ShowInstagram:    true,
			EnableAnimations: true,
			ParticleCount:    100,
		},
	}
	return data
}

// NewItemID generates the identifier assigned once at item creation and
// used as the sole match key afterwards.
func NewItemID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
