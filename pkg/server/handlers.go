package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/lottiedoc/pkg/buildinfo"
	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/pipeline"
	"github.com/matzehuels/lottiedoc/pkg/render"
	"github.com/matzehuels/lottiedoc/pkg/snapshot"
)

// Response headers set on converted documents and snapshots.
const (
	HeaderSceneHash  = "X-Scene-Hash"
	HeaderCache      = "X-Cache"
	HeaderSnapshotID = "X-Snapshot-ID"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type snapshotList struct {
	Snapshots []*snapshot.Snapshot `json:"snapshots"`
}

type verifyResponse struct {
	Name  string `json:"name"`
	Match bool   `json:"match"`
}

type difference struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
	Want string `json:"want,omitempty"`
	Got  string `json:"got,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	result, err := s.convert(r, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	f := opts.Formats[0]
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set(HeaderSceneHash, result.SceneHash)
	if result.CacheInfo.RenderHit {
		w.Header().Set(HeaderCache, "HIT")
	} else {
		w.Header().Set(HeaderCache, "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[f])
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	store, err := s.store()
	if err != nil {
		writeError(w, r, err)
		return
	}
	snaps, err := store.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if snaps == nil {
		snaps = []*snapshot.Snapshot{}
	}
	writeJSON(w, http.StatusOK, snapshotList{Snapshots: snaps})
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	store, err := s.store()
	if err != nil {
		writeError(w, r, err)
		return
	}
	name := chi.URLParam(r, "name")
	if err := snapshot.ValidateName(name); err != nil {
		writeError(w, r, err)
		return
	}
	snap, err := store.Get(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", render.FormatXML.ContentType())
	w.Header().Set(HeaderSceneHash, snap.SceneHash)
	w.Header().Set(HeaderSnapshotID, snap.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(snap.Data)
}

func (s *Server) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	store, err := s.store()
	if err != nil {
		writeError(w, r, err)
		return
	}
	name := chi.URLParam(r, "name")
	if err := snapshot.ValidateName(name); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := s.convert(r, s.xmlOptions())
	if err != nil {
		writeError(w, r, err)
		return
	}
	snap, err := snapshot.Save(r.Context(), store, name, result)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.cfg.Logger.Info("snapshot saved", "name", name, "scene", result.SceneHash, "request_id", RequestIDFrom(r.Context()))
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleVerifySnapshot(w http.ResponseWriter, r *http.Request) {
	store, err := s.store()
	if err != nil {
		writeError(w, r, err)
		return
	}
	name := chi.URLParam(r, "name")
	if err := snapshot.ValidateName(name); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := s.convert(r, s.xmlOptions())
	if err != nil {
		writeError(w, r, err)
		return
	}
	d, err := result.XMLDocument()
	if err != nil {
		writeError(w, r, err)
		return
	}
	diffs, err := snapshot.Verify(r.Context(), store, name, d)
	if err != nil {
		writeErrorWithDiffs(w, r, err, diffs)
		return
	}
	writeJSON(w, http.StatusOK, verifyResponse{Name: name, Match: true})
}

// requestOptions applies the format, indent, validate and refresh query
// parameters over the configured options.
func (s *Server) requestOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.cfg.Options
	q := r.URL.Query()

	format := render.FormatXML
	if len(opts.Formats) > 0 {
		format = opts.Formats[0]
	}
	if v := q.Get("format"); v != "" {
		f, err := render.ParseFormat(v)
		if err != nil {
			return opts, err
		}
		format = f
	}
	opts.Formats = []render.Format{format}

	if v := q.Get("indent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "indent %q is not a number", v)
		}
		opts.Indent = n
		opts.Compact = n == 0
	}
	if v := q.Get("validate"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "validate %q is not a boolean", v)
		}
		opts.SkipValidation = !b
	}
	if v := q.Get("refresh"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "refresh %q is not a boolean", v)
		}
		opts.Refresh = b
	}
	return opts, nil
}

func (s *Server) xmlOptions() pipeline.Options {
	opts := s.cfg.Options
	opts.Formats = []render.Format{render.FormatXML}
	return opts
}

func (s *Server) convert(r *http.Request, opts pipeline.Options) (*pipeline.Result, error) {
	scene, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(scene) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "request body is empty")
	}
	return s.cfg.Runner.Convert(r.Context(), scene, opts)
}

func (s *Server) store() (snapshot.Store, error) {
	if s.cfg.Store == nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "snapshot store is not configured")
	}
	return s.cfg.Store, nil
}

func toDifferences(diffs []doc.Difference) []difference {
	out := make([]difference, len(diffs))
	for i, d := range diffs {
		out[i] = difference{Path: d.Path, Kind: string(d.Kind), Want: d.Want, Got: d.Got}
	}
	return out
}
