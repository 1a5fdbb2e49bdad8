package handlers

import "github.com/fumiya-dev/entrymarket-go/services"

type Handlers struct {
	Audit   *AuditHandler
	Entry   *EntryHandler
	Project *ProjectHandler
	Skill   *SkillHandler
	User    *UserHandler
	WS      *WSHandler
}

func New(svcs *services.Services) *Handlers {
	return &Handlers{
		Audit:   NewAuditHandler(svcs.Audit),
		Entry:   NewEntryHandler(svcs.Entry),
		Project: NewProjectHandler(svcs.Project),
		Skill:   NewSkillHandler(svcs.Skill),
		User:    NewUserHandler(svcs.User),
		WS:      NewWSHandler(svcs.Entry),
	}
}
