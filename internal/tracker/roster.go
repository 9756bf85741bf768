package tracker

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/protomem/timeclock/internal/model"
	"github.com/protomem/timeclock/internal/validator"
)

const (
	_maxNameLen = 50
	_maxTagLen  = 20
)

func (in *PersonInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.TagNum = strings.TrimSpace(in.TagNum)
	in.Email = strings.TrimSpace(in.Email)
	if in.Role == 0 {
		in.Role = model.RoleUser
	}
}

func (in PersonInput) validate() error {
	var v validator.Validator
	checkName(&v, "firstName", in.FirstName)
	checkName(&v, "lastName", in.LastName)
	v.CheckField(validator.NotBlank(in.TagNum), "tagNum", "cannot be blank")
	v.CheckField(validator.MaxRunes(in.TagNum, _maxTagLen), "tagNum", "is too long")
	v.CheckField(validator.IsEmail(in.Email), "email", "must be a valid email address")
	v.CheckField(in.Role.Valid(), "role", "is unknown")
	return v.Err("person")
}

func (p PersonPatch) validate() error {
	if p.Empty() {
		return model.NewDetailedError("person", model.ErrValidation, "no fields to update")
	}

	var v validator.Validator
	if p.FirstName != nil {
		checkName(&v, "firstName", *p.FirstName)
	}
	if p.LastName != nil {
		checkName(&v, "lastName", *p.LastName)
	}
	if p.Email != nil {
		v.CheckField(validator.IsEmail(*p.Email), "email", "must be a valid email address")
	}
	if p.Role != nil {
		v.CheckField(p.Role.Valid(), "role", "is unknown")
	}
	return v.Err("person")
}

func checkName(v *validator.Validator, key, value string) {
	v.CheckField(validator.NotBlank(value), key, "cannot be blank")
	v.CheckField(validator.MaxRunes(value, _maxNameLen), key, "is too long")
}

// CreatePerson adds a person together with their zeroed total.
func (s *Service) CreatePerson(ctx context.Context, in PersonInput) (model.Person, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		observe(opCreatePerson, time.Now(), err)
		return model.Person{}, err
	}

	var person model.Person
	err := s.run(ctx, opCreatePerson, 0, func(ctx context.Context, tx Tx) error {
		id, err := tx.InsertPerson(ctx, in)
		if err != nil {
			return err
		}

		if err := tx.UpsertTotalTime(ctx, model.NewTotalTime(id)); err != nil {
			return err
		}

		person, err = tx.GetPerson(ctx, id)
		return err
	})
	if err != nil {
		return model.Person{}, err
	}

	s.logger.Info("person created", "personId", person.ID)

	return person, nil
}

func (s *Service) GetPerson(ctx context.Context, id model.ID) (model.Person, error) {
	var person model.Person
	err := s.run(ctx, opGetPerson, id, func(ctx context.Context, tx Tx) error {
		var err error
		person, err = tx.GetPerson(ctx, id)
		return err
	})
	return person, err
}

func (s *Service) FindPersons(ctx context.Context, filter PersonFilter) ([]model.Person, error) {
	var persons []model.Person
	err := s.run(ctx, opFindPersons, 0, func(ctx context.Context, tx Tx) error {
		var err error
		persons, err = tx.FindPersons(ctx, filter)
		return err
	})
	return persons, err
}

func (s *Service) UpdatePerson(ctx context.Context, id model.ID, patch PersonPatch) (model.Person, error) {
	if patch.FirstName != nil {
		trimmed := strings.TrimSpace(*patch.FirstName)
		patch.FirstName = &trimmed
	}
	if patch.LastName != nil {
		trimmed := strings.TrimSpace(*patch.LastName)
		patch.LastName = &trimmed
	}
	if patch.Email != nil {
		trimmed := strings.TrimSpace(*patch.Email)
		patch.Email = &trimmed
	}
	if err := patch.validate(); err != nil {
		observe(opUpdatePerson, time.Now(), err)
		return model.Person{}, err
	}

	var person model.Person
	err := s.run(ctx, opUpdatePerson, id, func(ctx context.Context, tx Tx) error {
		if err := tx.UpdatePerson(ctx, id, patch); err != nil {
			return err
		}

		var err error
		person, err = tx.GetPerson(ctx, id)
		return err
	})
	return person, err
}

// DeletePerson removes the person with all their sessions and their total.
func (s *Service) DeletePerson(ctx context.Context, id model.ID) error {
	err := s.run(ctx, opDeletePerson, id, func(ctx context.Context, tx Tx) error {
		if _, err := tx.LockPerson(ctx, id); err != nil {
			return err
		}

		if err := tx.DeleteSessions(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteTotalTime(ctx, id); err != nil {
			return err
		}
		return tx.DeletePerson(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("person deleted", "personId", id)

	return nil
}

// GetSummary returns the stored total. A person without a total row reports
// zeros.
func (s *Service) GetSummary(ctx context.Context, person model.ID) (model.TotalTime, error) {
	var total model.TotalTime
	err := s.run(ctx, opGetSummary, person, func(ctx context.Context, tx Tx) error {
		if _, err := tx.GetPerson(ctx, person); err != nil {
			return err
		}

		var err error
		total, err = tx.GetTotalTime(ctx, person)
		if errors.Is(err, model.ErrNotFound) {
			total, err = model.NewTotalTime(person), nil
		}
		return err
	})
	return total, err
}

func (s *Service) ListSummaries(ctx context.Context) ([]model.PersonTotalTime, error) {
	var totals []model.PersonTotalTime
	err := s.run(ctx, opListSummaries, 0, func(ctx context.Context, tx Tx) error {
		var err error
		totals, err = tx.ListTotalTimes(ctx)
		return err
	})
	return totals, err
}
