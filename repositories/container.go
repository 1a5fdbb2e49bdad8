package repositories

import (
	"gorm.io/gorm"
)

type Repos struct {
	User    UserRepo
	Project ProjectRepo
	Skill   SkillRepo
	Entry   EntryRepo
	Audit   AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:    NewUserRepo(db),
		Project: NewProjectRepo(db),
		Skill:   NewSkillRepo(db),
		Entry:   NewEntryRepo(db),
		Audit:   NewAuditRepo(db),
		db:      db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:    r.User.WithTx(tx),
		Project: r.Project.WithTx(tx),
		Skill:   r.Skill.WithTx(tx),
		Entry:   r.Entry.WithTx(tx),
		Audit:   r.Audit.WithTx(tx),
		db:      tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	// Mock-backed containers carry no db handle; run the callback directly.
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
