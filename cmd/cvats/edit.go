package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"resume-ats/internal/editor"
	"resume-ats/internal/i18n"
	"resume-ats/resume/model"
)

var editCmd = &cobra.Command{
	Use:   "edit [FILE]",
	Short: "Edit a CV interactively with a live ATS score",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEdit,
}

var editSave string

func init() {
	editCmd.Flags().StringVarP(&editSave, "save", "s", "", "write the edited CV to this file (default FILE)")

	rootCmd.AddCommand(editCmd)
}

// ui is the terminal surface of the editor.
type ui interface {
	Select(label string, items []string) (int, string, error)
	Prompt(label, def string) (string, error)
}

type promptUI struct{}

func (promptUI) Select(label string, items []string) (int, string, error) {
	p := promptui.Select{Label: label, Items: items, Size: 12}
	return p.Run()
}

func (promptUI) Prompt(label, def string) (string, error) {
	p := promptui.Prompt{Label: label, Default: def, AllowEdit: true}
	return p.Run()
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r := model.Empty()
	if len(args) == 1 {
		if r, err = readResume(args[0]); err != nil {
			return err
		}
	}
	target := editSave
	if target == "" && len(args) == 1 {
		target = args[0]
	}

	sess := editor.NewSession(r, resolveLocale(cfg))
	e := &editLoop{ui: promptUI{}, sess: sess, out: cmd.OutOrStdout()}
	if err := e.run(); err != nil {
		return err
	}
	if target == "" {
		return nil
	}
	return saveResume(target, sess.Resume())
}

func saveResume(path string, r model.Resume) error {
	payload, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

type editLoop struct {
	ui   ui
	sess *editor.Session
	out  io.Writer
}

func (e *editLoop) t(key i18n.Key) string {
	return i18n.T(e.sess.Locale(), key)
}

func (e *editLoop) run() error {
	for {
		e.printScore()
		items := []string{
			e.t(i18n.EditorPersonal),
			e.t(i18n.EditorExperience),
			e.t(i18n.EditorEducation),
			e.t(i18n.EditorSkills),
			e.t(i18n.EditorCertifications),
			e.t(i18n.EditorLanguages),
			e.t(i18n.EditorSample),
			e.t(i18n.EditorClear),
			e.t(i18n.EditorDone),
		}
		idx, _, err := e.ui.Select(e.t(i18n.EditorMenu), items)
		if err != nil {
			return promptErr(err)
		}
		switch idx {
		case 0:
			err = e.editPersonal()
		case 1:
			err = e.editExperiences()
		case 2:
			err = e.editEducation()
		case 3:
			err = e.editSkills()
		case 4:
			err = e.editStrings(e.t(i18n.EditorCertifications), func(r model.Resume) []string { return r.Certifications },
				editor.AddCertification, editor.SetCertification, editor.RemoveCertification)
		case 5:
			err = e.editStrings(e.t(i18n.EditorLanguages), func(r model.Resume) []string { return r.Languages },
				editor.AddLanguage, editor.SetLanguage, editor.RemoveLanguage)
		case 6:
			err = e.sess.Apply(editor.LoadSample())
		case 7:
			err = e.sess.Apply(editor.Reset())
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (e *editLoop) printScore() {
	res := e.sess.Result()
	fmt.Fprintf(e.out, "\n%s: %d/100\n", e.t(i18n.ScoreTitle), res.Score)
	for _, issue := range res.Issues {
		fmt.Fprintf(e.out, "  - %s\n", issue)
	}
}

func (e *editLoop) editPersonal() error {
	for {
		p := e.sess.Resume().PersonalInfo
		items := make([]string, 0, len(model.PersonalFields)+1)
		for _, f := range model.PersonalFields {
			items = append(items, fmt.Sprintf("%s: %s", f, personalValue(p, f)))
		}
		items = append(items, e.t(i18n.EditorBack))
		idx, _, err := e.ui.Select(e.t(i18n.EditorPersonal), items)
		if err != nil {
			return promptErr(err)
		}
		if idx >= len(model.PersonalFields) {
			return nil
		}
		field := model.PersonalFields[idx]
		value, err := e.ui.Prompt(string(field), personalValue(p, field))
		if err != nil {
			return promptErr(err)
		}
		if err := e.sess.Apply(editor.SetPersonal(string(field), value)); err != nil {
			return err
		}
	}
}

func (e *editLoop) editExperiences() error {
	for {
		exps := e.sess.Resume().Experiences
		items := make([]string, 0, len(exps)+2)
		for _, exp := range exps {
			items = append(items, entryLabel(exp.JobTitle, exp.Company))
		}
		items = append(items, e.t(i18n.EditorAdd), e.t(i18n.EditorBack))
		idx, _, err := e.ui.Select(e.t(i18n.EditorExperience), items)
		if err != nil {
			return promptErr(err)
		}
		switch {
		case idx < len(exps):
			if err := e.editExperience(exps[idx]); err != nil {
				return err
			}
		case idx == len(exps):
			if err := e.sess.Apply(editor.AddExperience()); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (e *editLoop) editExperience(exp model.Experience) error {
	values := map[model.ExperienceField]string{
		model.ExpJobTitle:    exp.JobTitle,
		model.ExpCompany:     exp.Company,
		model.ExpLocation:    exp.Location,
		model.ExpStartDate:   exp.StartDate,
		model.ExpEndDate:     exp.EndDate,
		model.ExpCurrent:     strconv.FormatBool(exp.Current),
		model.ExpDescription: exp.Description,
	}
	items := make([]string, 0, len(model.ExperienceFields)+2)
	for _, f := range model.ExperienceFields {
		items = append(items, fmt.Sprintf("%s: %s", f, values[f]))
	}
	items = append(items, e.t(i18n.EditorRemove), e.t(i18n.EditorBack))
	idx, _, err := e.ui.Select(entryLabel(exp.JobTitle, exp.Company), items)
	if err != nil {
		return promptErr(err)
	}
	switch {
	case idx < len(model.ExperienceFields):
		field := model.ExperienceFields[idx]
		if field == model.ExpCurrent {
			return e.sess.Apply(editor.UpdateExperience(exp.ID, string(field), !exp.Current))
		}
		value, err := e.ui.Prompt(string(field), values[field])
		if err != nil {
			return promptErr(err)
		}
		return e.sess.Apply(editor.UpdateExperience(exp.ID, string(field), value))
	case idx == len(model.ExperienceFields):
		return e.sess.Apply(editor.RemoveExperience(exp.ID))
	default:
		return nil
	}
}

func (e *editLoop) editEducation() error {
	for {
		edus := e.sess.Resume().Education
		items := make([]string, 0, len(edus)+2)
		for _, edu := range edus {
			items = append(items, entryLabel(edu.Degree, edu.Institution))
		}
		items = append(items, e.t(i18n.EditorAdd), e.t(i18n.EditorBack))
		idx, _, err := e.ui.Select(e.t(i18n.EditorEducation), items)
		if err != nil {
			return promptErr(err)
		}
		switch {
		case idx < len(edus):
			edu := edus[idx]
			values := map[model.EducationField]string{
				model.EduDegree:         edu.Degree,
				model.EduInstitution:    edu.Institution,
				model.EduLocation:       edu.Location,
				model.EduGraduationDate: edu.GraduationDate,
				model.EduGPA:            edu.GPA,
				model.EduDescription:    edu.Description,
			}
			fields := make([]string, 0, len(model.EducationFields)+2)
			for _, f := range model.EducationFields {
				fields = append(fields, fmt.Sprintf("%s: %s", f, values[f]))
			}
			fields = append(fields, e.t(i18n.EditorRemove), e.t(i18n.EditorBack))
			fi, _, err := e.ui.Select(entryLabel(edu.Degree, edu.Institution), fields)
			if err != nil {
				return promptErr(err)
			}
			switch {
			case fi < len(model.EducationFields):
				field := model.EducationFields[fi]
				value, err := e.ui.Prompt(string(field), values[field])
				if err != nil {
					return promptErr(err)
				}
				err = e.sess.Apply(editor.UpdateEducation(edu.ID, string(field), value))
				if err != nil {
					return err
				}
			case fi == len(model.EducationFields):
				if err := e.sess.Apply(editor.RemoveEducation(edu.ID)); err != nil {
					return err
				}
			}
		case idx == len(edus):
			if err := e.sess.Apply(editor.AddEducation()); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

var skillCategories = []model.SkillCategory{model.CategoryTechnical, model.CategoryHard, model.CategorySoft}

func (e *editLoop) editSkills() error {
	for {
		skills := e.sess.Resume().Skills
		items := make([]string, 0, len(skills)+3)
		for _, s := range skills {
			items = append(items, fmt.Sprintf("%s (%s, %s)", s.Name, s.Category, s.Level))
		}
		items = append(items, e.t(i18n.EditorSearchSkills), e.t(i18n.EditorAdd), e.t(i18n.EditorBack))
		idx, _, err := e.ui.Select(e.t(i18n.EditorSkills), items)
		if err != nil {
			return promptErr(err)
		}
		switch {
		case idx < len(skills):
			fi, _, err := e.ui.Select(skills[idx].Name, []string{e.t(i18n.EditorRemove), e.t(i18n.EditorBack)})
			if err != nil {
				return promptErr(err)
			}
			if fi == 0 {
				if err := e.sess.Apply(editor.RemoveSkill(skills[idx].ID)); err != nil {
					return err
				}
			}
		case idx == len(skills):
			if err := e.searchSkills(); err != nil {
				return err
			}
		case idx == len(skills)+1:
			name, err := e.ui.Prompt(string(model.SkillName), "")
			if err != nil {
				return promptErr(err)
			}
			cat, err := e.pickCategory()
			if err != nil {
				return err
			}
			if err := e.sess.Apply(editor.AddSkill(name, cat)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (e *editLoop) pickCategory() (model.SkillCategory, error) {
	items := make([]string, len(skillCategories))
	for i, c := range skillCategories {
		items[i] = string(c)
	}
	idx, _, err := e.ui.Select("category", items)
	if err != nil {
		return "", promptErr(err)
	}
	return skillCategories[idx], nil
}

func (e *editLoop) searchSkills() error {
	cat, err := e.pickCategory()
	if err != nil {
		return err
	}
	query, err := e.ui.Prompt(e.t(i18n.EditorSearchSkills), "")
	if err != nil {
		return promptErr(err)
	}
	suggestions := e.sess.Suggestions(cat, query)
	if len(suggestions) == 0 {
		fmt.Fprintln(e.out, e.t(i18n.EditorNoSkills))
		return nil
	}
	idx, _, err := e.ui.Select(e.t(i18n.EditorSkills), append(suggestions, e.t(i18n.EditorBack)))
	if err != nil {
		return promptErr(err)
	}
	if idx >= len(suggestions) {
		return nil
	}
	return e.sess.Apply(editor.AddSuggestedSkill(suggestions[idx], cat))
}

func (e *editLoop) editStrings(
	label string,
	list func(model.Resume) []string,
	add func(string) editor.Op,
	set func(int, string) editor.Op,
	remove func(int) editor.Op,
) error {
	for {
		values := list(e.sess.Resume())
		items := append(append([]string{}, values...), e.t(i18n.EditorAdd), e.t(i18n.EditorBack))
		idx, _, err := e.ui.Select(label, items)
		if err != nil {
			return promptErr(err)
		}
		switch {
		case idx < len(values):
			fi, _, err := e.ui.Select(values[idx], []string{"edit", e.t(i18n.EditorRemove), e.t(i18n.EditorBack)})
			if err != nil {
				return promptErr(err)
			}
			switch fi {
			case 0:
				value, err := e.ui.Prompt(label, values[idx])
				if err != nil {
					return promptErr(err)
				}
				err = e.sess.Apply(set(idx, value))
				if err != nil {
					return err
				}
			case 1:
				if err := e.sess.Apply(remove(idx)); err != nil {
					return err
				}
			}
		case idx == len(values):
			value, err := e.ui.Prompt(label, "")
			if err != nil {
				return promptErr(err)
			}
			if err := e.sess.Apply(add(value)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func personalValue(p model.PersonalInfo, f model.PersonalField) string {
	switch f {
	case model.FieldFullName:
		return p.FullName
	case model.FieldEmail:
		return p.Email
	case model.FieldPhone:
		return p.Phone
	case model.FieldLocation:
		return p.Location
	case model.FieldLinkedIn:
		return p.LinkedIn
	case model.FieldInstagram:
		return p.Instagram
	case model.FieldSummary:
		return p.Summary
	default:
		return ""
	}
}

func entryLabel(title, place string) string {
	switch {
	case title == "" && place == "":
		return "(untitled)"
	case place == "":
		return title
	case title == "":
		return place
	default:
		return title + " - " + place
	}
}

// promptErr turns Ctrl-C into a plain cancellation error.
func promptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return errors.New("edit cancelled")
	}
	return err
}
