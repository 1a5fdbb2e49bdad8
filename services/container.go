package services

import "github.com/fumiya-dev/entrymarket-go/repositories"

type Services struct {
	Audit   *AuditService
	Entry   *EntryService
	Project *ProjectService
	Skill   *SkillService
	User    *UserService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Audit:   NewAuditService(repos),
		Entry:   NewEntryService(repos),
		Project: NewProjectService(repos),
		Skill:   NewSkillService(repos),
		User:    NewUserService(repos),
	}
}
