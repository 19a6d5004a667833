package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/npillmayer/sarf"
	"github.com/npillmayer/sarf/patterns"
	"github.com/npillmayer/sarf/roots"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type generateRequest struct {
	Root    string `json:"root"`
	Pattern string `json:"pattern"`
	Store   *bool  `json:"store,omitempty"` // defaults to true
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	store := req.Store == nil || *req.Store
	s.mu.Lock()
	res := s.engine.Generate(req.Root, req.Pattern, store)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) generateFamily(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Root string `json:"root"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.mu.Lock()
	results := s.engine.GenerateFamily(req.Root)
	s.mu.Unlock()
	if results == nil {
		results = []sarf.Result{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Root string `json:"root"`
		Word string `json:"word"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.mu.Lock()
	verdict := s.engine.Validate(req.Root, req.Word)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, verdict)
}

func (s *Server) addRoot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Root string `json:"root"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.mu.Lock()
	dashed, err := s.engine.AddRoot(req.Root)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "root": dashed})
}

func (s *Server) addPattern(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pattern string `json:"pattern"`
		Rule    string `json:"rule,omitempty"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.mu.Lock()
	err := s.engine.AddPattern(req.Pattern, req.Rule)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	p, _ := patterns.Normalize("pattern", req.Pattern)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "pattern": p})
}

func (s *Server) listRoots(w http.ResponseWriter, r *http.Request) {
	var dashed bool
	switch format := r.URL.Query().Get("format"); format {
	case "", "dashed":
		dashed = true
	case "compact":
	default:
		writeError(w, fmt.Errorf("unknown format %q: %w", format, errBadRequest))
		return
	}
	s.mu.RLock()
	list := s.engine.Roots().ListRoots(dashed)
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, nonNil(list))
}

type rootResponse struct {
	Root    string              `json:"root"`
	Compact string              `json:"compact"`
	Derived []roots.DerivedWord `json:"derived"`
}

func (s *Server) getRoot(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["root"]
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.engine.Roots().Search(raw)
	if n == nil {
		writeError(w, fmt.Errorf("root %q: %w", raw, errNotFound))
		return
	}
	writeJSON(w, http.StatusOK, rootResponse{Root: n.Dashed(), Compact: n.Root, Derived: n.Derived.Items()})
}

func (s *Server) deleteRoot(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["root"]
	s.mu.Lock()
	ok := s.engine.DeleteRoot(raw)
	s.mu.Unlock()
	if !ok {
		writeError(w, fmt.Errorf("root %q: %w", raw, errNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addDerivative(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["root"]
	var req struct {
		Word string `json:"word"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Word == "" {
		writeError(w, fmt.Errorf("missing word: %w", errBadRequest))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.engine.AddDerivedWord(raw, req.Word) {
		writeError(w, fmt.Errorf("root %q: %w", raw, errNotFound))
		return
	}
	count := s.engine.Roots().Search(raw).Derived.Count(req.Word)
	writeJSON(w, http.StatusOK, map[string]any{"added": true, "word": req.Word, "count": count})
}

func (s *Server) listPatterns(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	list := s.engine.Patterns().Patterns()
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, nonNil(list))
}

type patternResponse struct {
	Pattern string `json:"pattern"`
	Rule    string `json:"rule"`
}

func (s *Server) getPattern(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["pattern"]
	s.mu.RLock()
	rule, ok := s.engine.Patterns().Rule(raw)
	s.mu.RUnlock()
	if !ok {
		writeError(w, fmt.Errorf("pattern %q: %w", raw, patterns.ErrPatternNotFound))
		return
	}
	p, _ := patterns.Normalize("pattern", raw)
	writeJSON(w, http.StatusOK, patternResponse{Pattern: p, Rule: rule})
}

func (s *Server) updatePattern(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["pattern"]
	var req struct {
		Rule string `json:"rule"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.engine.UpdatePattern(raw, req.Rule); err != nil {
		writeError(w, err)
		return
	}
	p, _ := patterns.Normalize("pattern", raw)
	rule, _ := s.engine.Patterns().Rule(p)
	writeJSON(w, http.StatusOK, patternResponse{Pattern: p, Rule: rule})
}

func (s *Server) deletePattern(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.engine.RemovePattern(mux.Vars(r)["pattern"])
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) completeWords(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	words := s.engine.Lexicon().Complete(r.URL.Query().Get("prefix"))
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, nonNil(words))
}

func (s *Server) wordRoots(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	s.mu.RLock()
	rr := s.engine.Lexicon().Roots(word)
	s.mu.RUnlock()
	if len(rr) == 0 {
		writeError(w, fmt.Errorf("word %q: %w", word, errNotFound))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"word": word, "roots": rr})
}

type statsResponse struct {
	Identifier string `json:"identifier,omitempty"`
	sarf.EngineStats
	LoadFactor float64 `json:"load_factor"`
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	st := s.engine.Stats()
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, statsResponse{
		Identifier:  s.engine.Identifier,
		EngineStats: st,
		LoadFactor:  st.Patterns.LoadFactor(),
	})
}
