package editor

import (
	"fmt"

	"resume-ats/resume/model"
)

// SetPersonal sets one personal-info field by name.
func SetPersonal(field, value string) Op {
	return func(r model.Resume) (model.Resume, error) {
		f, err := model.ParsePersonalField(field)
		if err != nil {
			return r, err
		}
		return model.WithPersonal(r, f, value), nil
	}
}

// AddExperience appends a blank experience entry.
func AddExperience() Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.AddExperience(r, model.NewExperience()), nil
	}
}

// UpdateExperience sets a field of the experience with id. Unknown ids are ignored.
func UpdateExperience(id, field string, value any) Op {
	return func(r model.Resume) (model.Resume, error) {
		f, err := model.ParseExperienceField(field)
		if err != nil {
			return r, err
		}
		return model.UpdateExperience(r, id, f, value), nil
	}
}

func RemoveExperience(id string) Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.RemoveExperience(r, id), nil
	}
}

// AddEducation appends a blank education entry.
func AddEducation() Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.AddEducation(r, model.NewEducation()), nil
	}
}

func UpdateEducation(id, field, value string) Op {
	return func(r model.Resume) (model.Resume, error) {
		f, err := model.ParseEducationField(field)
		if err != nil {
			return r, err
		}
		return model.UpdateEducation(r, id, f, value), nil
	}
}

func RemoveEducation(id string) Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.RemoveEducation(r, id), nil
	}
}

// AddSkill appends a skill named name with level Intermediate. An empty category means technical.
func AddSkill(name string, category model.SkillCategory) Op {
	return func(r model.Resume) (model.Resume, error) {
		s := model.NewSkill(name)
		if category != model.CategoryNone {
			s.Category = category
		}
		return model.AddSkill(r, s), nil
	}
}

// AddSuggestedSkill adds a catalog skill unless the résumé already lists it.
func AddSuggestedSkill(name string, category model.SkillCategory) Op {
	return func(r model.Resume) (model.Resume, error) {
		if HasSkill(r, name) {
			return r, fmt.Errorf("skill %q already listed", name)
		}
		return AddSkill(name, category)(r)
	}
}

func UpdateSkill(id, field, value string) Op {
	return func(r model.Resume) (model.Resume, error) {
		f, err := model.ParseSkillField(field)
		if err != nil {
			return r, err
		}
		return model.UpdateSkill(r, id, f, value), nil
	}
}

func RemoveSkill(id string) Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.RemoveSkill(r, id), nil
	}
}

func AddCertification(value string) Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.AddCertification(r, value), nil
	}
}

func SetCertification(i int, value string) Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.SetCertification(r, i, value), nil
	}
}

func RemoveCertification(i int) Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.RemoveCertification(r, i), nil
	}
}

func AddLanguage(value string) Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.AddLanguage(r, value), nil
	}
}

func SetLanguage(i int, value string) Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.SetLanguage(r, i, value), nil
	}
}

func RemoveLanguage(i int) Op {
	return func(r model.Resume) (model.Resume, error) {
		return model.RemoveLanguage(r, i), nil
	}
}

// LoadSample replaces the résumé with the built-in sample.
func LoadSample() Op {
	return func(model.Resume) (model.Resume, error) {
		return model.Sample(), nil
	}
}

// Reset clears the résumé.
func Reset() Op {
	return func(model.Resume) (model.Resume, error) {
		return model.Empty(), nil
	}
}
