package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-ats/internal/analyses"
	"resume-ats/internal/editor"
	"resume-ats/internal/extract"
	"resume-ats/internal/extract/extracttest"
	"resume-ats/internal/i18n"
	"resume-ats/internal/uploads"
	"resume-ats/resume/model"
	"resume-ats/resume/render"
)

func writeJSON(t *testing.T, dir, name string, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestScoreFilesKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	sample := writeJSON(t, dir, "sample.json", model.Sample())
	empty := writeJSON(t, dir, "empty.json", map[string]any{})

	results, err := scoreFiles(context.Background(), analyses.NewService(nil), i18n.EN, []string{empty, sample, empty}, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, empty, results[0].File)
	assert.Equal(t, 10, results[0].Report.Score)
	assert.Equal(t, sample, results[1].File)
	assert.Equal(t, analyses.Analyze(model.Sample()).Score, results[1].Report.Score)
	assert.Equal(t, results[0].Report.Score, results[2].Report.Score)
}

func TestScoreFilesRejectsInvalidInput(t *testing.T) {
	dir := t.TempDir()
	bad := writeJSON(t, dir, "bad.json", map[string]any{"skills": []map[string]any{{"name": "Go", "level": "Guru"}}})

	_, err := scoreFiles(context.Background(), analyses.NewService(nil), i18n.EN, []string{bad}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")

	_, err = scoreFiles(context.Background(), analyses.NewService(nil), i18n.EN, []string{filepath.Join(dir, "missing.json")}, 1)
	assert.Error(t, err)
}

func TestWriteReportText(t *testing.T) {
	report := analyses.NewService(nil).Score(model.Empty(), i18n.EN)
	var buf bytes.Buffer
	writeReport(&buf, scoredFile{File: "cv.json", Report: report})

	out := buf.String()
	assert.Contains(t, out, "cv.json\n")
	assert.Contains(t, out, "ATS Compatibility Score: 10/100")
	assert.Contains(t, out, "Issues Found:\n  - Missing full name")
	assert.Contains(t, out, "No common keywords found.")
}

func TestInspectReadsExports(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	docx, err := render.RenderDOCX(model.Sample(), i18n.EN)
	require.NoError(t, err)
	res, err := uploads.Inspect(cmd.Context(), "cv.docx", docx)
	require.NoError(t, err)
	assert.Equal(t, extract.MimeDOCX, res.MimeType)
	assert.Contains(t, res.Text, "Ronald Gunawan")
	assert.Greater(t, res.Chars, 0)

	pdf := extracttest.MinimalPDF("leadership and training")
	res, err = uploads.Inspect(cmd.Context(), "cv.pdf", pdf)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, []string{"leadership", "training"}, res.Coverage.Found)
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "cv.pdf", outputPath("", "cv.pdf"))
	assert.Equal(t, filepath.Join(dir, "cv.pdf"), outputPath(dir, "cv.pdf"))
	assert.Equal(t, filepath.Join(dir, "x.pdf"), outputPath(filepath.Join(dir, "x.pdf"), "cv.pdf"))
}

type scriptedUI struct {
	selects []int
	prompts []string
}

func (s *scriptedUI) Select(_ string, items []string) (int, string, error) {
	if len(s.selects) == 0 {
		return 0, "", errors.New("script exhausted")
	}
	idx := s.selects[0]
	s.selects = s.selects[1:]
	return idx, items[idx], nil
}

func (s *scriptedUI) Prompt(_ string, _ string) (string, error) {
	if len(s.prompts) == 0 {
		return "", errors.New("script exhausted")
	}
	v := s.prompts[0]
	s.prompts = s.prompts[1:]
	return v, nil
}

func TestEditLoopSetsPersonalField(t *testing.T) {
	sess := editor.NewSession(model.Empty(), i18n.EN)
	var out bytes.Buffer
	e := &editLoop{
		ui:   &scriptedUI{selects: []int{0, 1, 7, 8}, prompts: []string{"ronald@example.com"}},
		sess: sess,
		out:  &out,
	}

	require.NoError(t, e.run())
	assert.Equal(t, "ronald@example.com", sess.Resume().PersonalInfo.Email)
	assert.Equal(t, 20, sess.Result().Score)
	assert.Contains(t, out.String(), "ATS Compatibility Score: 10/100")
	assert.Contains(t, out.String(), "ATS Compatibility Score: 20/100")
}

func TestEditLoopAddsSuggestedSkill(t *testing.T) {
	sess := editor.NewSession(model.Empty(), i18n.EN)
	e := &editLoop{
		// skills menu, search, technical, first suggestion, back, done
		ui:   &scriptedUI{selects: []int{3, 0, 0, 0, 3, 8}, prompts: []string{"sql"}},
		sess: sess,
		out:  &bytes.Buffer{},
	}

	require.NoError(t, e.run())
	skills := sess.Resume().Skills
	require.Len(t, skills, 1)
	assert.Equal(t, "SQL", skills[0].Name)
	assert.Equal(t, model.CategoryTechnical, skills[0].Category)
}

func TestEditLoopCertificationsAndSample(t *testing.T) {
	sess := editor.NewSession(model.Empty(), i18n.EN)
	e := &editLoop{
		// certifications, add, back, sample, done
		ui:   &scriptedUI{selects: []int{4, 0, 2, 6, 8}, prompts: []string{"Brevet A"}},
		sess: sess,
		out:  &bytes.Buffer{},
	}

	require.NoError(t, e.run())
	assert.Equal(t, model.Sample(), sess.Resume())
	assert.Equal(t, 2, sess.Revision())
}

func TestEditLoopClearAfterSample(t *testing.T) {
	sess := editor.NewSession(model.Empty(), i18n.EN)
	e := &editLoop{
		// sample, clear, done
		ui:   &scriptedUI{selects: []int{6, 7, 8}},
		sess: sess,
		out:  &bytes.Buffer{},
	}

	require.NoError(t, e.run())
	assert.Equal(t, model.Empty(), sess.Resume())
	assert.Equal(t, 10, sess.Result().Score)
	assert.Equal(t, 2, sess.Revision())
}

func TestSaveResumeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, saveResume(path, model.Sample()))

	r, err := readResume(path)
	require.NoError(t, err)
	assert.Equal(t, model.Sample().PersonalInfo, r.PersonalInfo)
}
