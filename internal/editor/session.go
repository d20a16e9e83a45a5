// Package editor holds the in-memory editing session: one résumé, its locale and its
// current score, recomputed after every mutation.
package editor

import (
	"sync"

	"resume-ats/internal/analyses"
	"resume-ats/internal/i18n"
	"resume-ats/resume/model"
)

// Op is one edit. It returns the replacement résumé and never mutates its input.
type Op func(model.Resume) (model.Resume, error)

// Session is safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	resume   model.Resume
	locale   i18n.Locale
	result   analyses.Result
	revision int
}

// NewSession starts a session on r and scores it once.
func NewSession(r model.Resume, loc i18n.Locale) *Session {
	if !loc.Valid() {
		loc = i18n.Default
	}
	return &Session{
		resume: r.Clone(),
		locale: loc,
		result: analyses.Analyze(r),
	}
}

// Apply runs op and, when it succeeds, replaces the résumé and its score.
// A failing op leaves the session untouched.
func (s *Session) Apply(op Op) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := op(s.resume.Clone())
	if err != nil {
		return err
	}
	s.resume = next
	s.result = analyses.Analyze(next)
	s.revision++
	return nil
}

// Resume returns a copy of the current résumé.
func (s *Session) Resume() model.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resume.Clone()
}

// Result returns the score for the current résumé.
func (s *Session) Result() analyses.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Revision counts successful mutations.
func (s *Session) Revision() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Session) Locale() i18n.Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// SetLocale switches the display language. The score does not depend on it.
func (s *Session) SetLocale(loc i18n.Locale) {
	if !loc.Valid() {
		return
	}
	s.mu.Lock()
	s.locale = loc
	s.mu.Unlock()
}

// Suggestions lists catalog skills for category matching query in the session locale.
func (s *Session) Suggestions(category model.SkillCategory, query string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SuggestSkills(s.resume, s.locale, category, query)
}
