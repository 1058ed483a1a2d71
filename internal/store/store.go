// Package store is the persistence layer for all portfolio entities.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wnjuguna/portfolio/internal/errs"
	"github.com/wnjuguna/portfolio/models"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// AboutGet returns the about record, or nil when none has been saved yet.
func (s *Store) AboutGet(ctx context.Context) (*models.About, error) {
	var about models.About
	err := s.db.WithContext(ctx).Order("id asc").First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "query about")
	}
	return &about, nil
}

// AboutSave creates the about record on first save and overwrites it in
// place afterwards. Every field is always written; there is no partial
// update.
func (s *Store) AboutSave(ctx context.Context, about *models.About) error {
	if err := s.db.WithContext(ctx).Save(about).Error; err != nil {
		return errs.Wrap(err, "save about")
	}
	return nil
}

// SkillList returns all skills in display order.
func (s *Store) SkillList(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := s.db.WithContext(ctx).Order("sort_order asc, id asc").Find(&skills).Error; err != nil {
		return nil, errs.Wrap(err, "query skills")
	}
	return skills, nil
}

func (s *Store) SkillGet(ctx context.Context, id uint) (models.Skill, error) {
	var skill models.Skill
	if err := s.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		return models.Skill{}, translate(err)
	}
	return skill, nil
}

func (s *Store) SkillCreate(ctx context.Context, skill *models.Skill) error {
	if err := s.db.WithContext(ctx).Create(skill).Error; err != nil {
		return errs.Wrap(err, "create skill")
	}
	return nil
}

func (s *Store) SkillUpdate(ctx context.Context, skill *models.Skill) error {
	if err := s.db.WithContext(ctx).Save(skill).Error; err != nil {
		return errs.Wrap(err, "update skill")
	}
	return nil
}

func (s *Store) SkillDelete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Skill{}, id)
	if result.Error != nil {
		return errs.Wrap(result.Error, "delete skill")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ProjectList returns all projects in default order: explicit sort order
// first, newest first within the same order value.
func (s *Store) ProjectList(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Order("sort_order asc, created_at desc").Find(&projects).Error; err != nil {
		return nil, errs.Wrap(err, "query projects")
	}
	return projects, nil
}

func (s *Store) ProjectGet(ctx context.Context, id uint) (models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return models.Project{}, translate(err)
	}
	return project, nil
}

// ProjectOthers returns up to limit projects excluding the given one, in
// default order. Used for the "other projects" strip on the detail page.
func (s *Store) ProjectOthers(ctx context.Context, excludeID uint, limit int) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Order("sort_order asc, created_at desc").
		Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, errs.Wrap(err, "query other projects")
	}
	return projects, nil
}

func (s *Store) ProjectCreate(ctx context.Context, project *models.Project) error {
	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return errs.Wrap(err, "create project")
	}
	return nil
}

func (s *Store) ProjectUpdate(ctx context.Context, project *models.Project) error {
	if err := s.db.WithContext(ctx).Save(project).Error; err != nil {
		return errs.Wrap(err, "update project")
	}
	return nil
}

func (s *Store) ProjectDelete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return errs.Wrap(result.Error, "delete project")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
