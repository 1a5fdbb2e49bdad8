package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/fumiya-dev/entrymarket-go/config"
	"github.com/fumiya-dev/entrymarket-go/db"
	"github.com/fumiya-dev/entrymarket-go/models"
	"github.com/fumiya-dev/entrymarket-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

type seedUser struct {
	Username string  `yaml:"username"`
	Password string  `yaml:"password"`
	Role     string  `yaml:"role"`
	Email    *string `yaml:"email"`
	FullName *string `yaml:"full_name"`
}

type seedProject struct {
	Title       string   `yaml:"title"`
	Description *string  `yaml:"description"`
	Price       *float64 `yaml:"price"`
	Deadline    *string  `yaml:"deadline"`
	Creator     string   `yaml:"creator"`
	Skills      []string `yaml:"skills"`
}

type seedEntry struct {
	Project   string  `yaml:"project"`
	User      string  `yaml:"user"`
	Status    string  `yaml:"status"`
	EntryDate *string `yaml:"entry_date"`
}

type seedData struct {
	Users    []seedUser    `yaml:"users"`
	Skills   []string      `yaml:"skills"`
	Projects []seedProject `yaml:"projects"`
	Entries  []seedEntry   `yaml:"entries"`
}

// The seeder is idempotent: users and projects are matched by name and
// skipped when present, skills and entries are upserted.
func main() {
	config.LoadConfig()
	db.Init()

	raw, err := os.ReadFile(config.SeedFile)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", config.SeedFile, err)
	}

	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	repos := repositories.NewRepositories(db.DB)

	users := seedUsers(repos, data.Users)
	seedSkills(repos, data.Skills)
	projects := seedProjects(repos, data.Projects, users)
	seedEntries(repos, data.Entries, users, projects)

	log.Println("Seed complete")
}

func seedUsers(repos *repositories.Repos, input []seedUser) map[string]uint {
	ids := make(map[string]uint, len(input))
	for _, su := range input {
		existing, err := repos.User.GetUserByUsername(su.Username)
		if err == nil {
			ids[su.Username] = existing.UID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to look up user %s: %v", su.Username, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.Username, err)
		}

		role := su.Role
		if role == "" {
			role = string(models.UserRoleUser)
		}
		user := models.User{
			Username: su.Username,
			Password: string(hashed),
			Email:    su.Email,
			FullName: su.FullName,
			Role:     role,
		}
		if err := repos.User.CreateUser(&user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.Username, err)
		}
		ids[su.Username] = user.UID
		log.Printf("Created user %s (%s)", user.Username, user.Role)
	}
	return ids
}

func seedSkills(repos *repositories.Repos, names []string) {
	for _, name := range names {
		if err := repos.Skill.CreateSkill(&models.Skill{Name: name}); err != nil {
			log.Fatalf("Failed to create skill %s: %v", name, err)
		}
	}
	log.Printf("Seeded %d skills", len(names))
}

func seedProjects(repos *repositories.Repos, input []seedProject, users map[string]uint) map[string]uint {
	existing, err := repos.Project.ListProjects()
	if err != nil {
		log.Fatalf("Failed to list projects: %v", err)
	}
	ids := make(map[string]uint, len(input))
	for _, p := range existing {
		ids[p.Title] = p.PID
	}

	for _, sp := range input {
		if _, ok := ids[sp.Title]; ok {
			continue
		}

		creatorID, ok := users[sp.Creator]
		if !ok {
			log.Fatalf("Project %q references unknown creator %q", sp.Title, sp.Creator)
		}

		var deadline *time.Time
		if sp.Deadline != nil {
			t, err := time.Parse(time.RFC3339, *sp.Deadline)
			if err != nil {
				log.Fatalf("Project %q has invalid deadline: %v", sp.Title, err)
			}
			deadline = &t
		}

		skillIDs := make([]uint, 0, len(sp.Skills))
		for _, name := range sp.Skills {
			skill, err := repos.Skill.GetSkillByName(name)
			if err != nil {
				log.Fatalf("Project %q references unknown skill %q", sp.Title, name)
			}
			skillIDs = append(skillIDs, skill.SID)
		}

		project := models.Project{
			Title:       sp.Title,
			Description: sp.Description,
			Price:       sp.Price,
			Deadline:    deadline,
			CreatorID:   creatorID,
		}
		err := repos.ExecTx(func(tx *repositories.Repos) error {
			if err := tx.Project.CreateProject(&project); err != nil {
				return err
			}
			return tx.Project.AddProjectSkills(project.PID, skillIDs)
		})
		if err != nil {
			log.Fatalf("Failed to create project %q: %v", sp.Title, err)
		}
		ids[sp.Title] = project.PID
		log.Printf("Created project %q", sp.Title)
	}
	return ids
}

func seedEntries(repos *repositories.Repos, input []seedEntry, users, projects map[string]uint) {
	for _, se := range input {
		pid, ok := projects[se.Project]
		if !ok {
			log.Fatalf("Entry references unknown project %q", se.Project)
		}
		uid, ok := users[se.User]
		if !ok {
			log.Fatalf("Entry references unknown user %q", se.User)
		}

		status := models.EntryStatus(se.Status)
		if se.Status == "" {
			status = models.EntryStatusPending
		}
		if !models.ValidEntryStatus(status) {
			log.Fatalf("Entry for %q/%q has invalid status %q", se.Project, se.User, se.Status)
		}

		entryDate := time.Now()
		if se.EntryDate != nil {
			t, err := time.Parse(time.RFC3339, *se.EntryDate)
			if err != nil {
				log.Fatalf("Entry for %q/%q has invalid entry_date: %v", se.Project, se.User, err)
			}
			entryDate = t
		}

		entry := models.Entry{
			PID:       pid,
			UID:       uid,
			Status:    string(status),
			EntryDate: entryDate,
		}
		created, err := repos.Entry.CreateEntry(&entry)
		if err != nil {
			log.Fatalf("Failed to create entry for %q/%q: %v", se.Project, se.User, err)
		}
		if !created {
			if err := repos.Entry.UpdateEntryStatus(pid, uid, status); err != nil {
				log.Fatalf("Failed to update entry for %q/%q: %v", se.Project, se.User, err)
			}
		}
	}
	log.Printf("Seeded %d entries", len(input))
}
