package domain

import (
	"fmt"
	"path"
	"strings"
)

// PathKind represents the collection a document path belongs to
type PathKind int

const (
	PathKindUnknown PathKind = iota
	PathKindRegulation
	PathKindNotice
	PathKindLayer
	PathKindDiff
)

func (k PathKind) String() string {
	switch k {
	case PathKindRegulation:
		return "Regulation"
	case PathKindNotice:
		return "Notice"
	case PathKindLayer:
		return "Layer"
	case PathKindDiff:
		return "Diff"
	default:
		return "Unknown"
	}
}

// Layers lists every layer collection served by regulations-core, in the
// order documents are fetched.
var Layers = []string{
	"analyses",
	"external-citations",
	"formatting",
	"graphics",
	"internal-citations",
	"interpretations",
	"keyterms",
	"meta",
	"paragraph-markers",
	"terms",
	"toc",
}

// Regulation is a numbered body of rules tracked by regulations-core,
// together with the notice versions that make it up.
type Regulation struct {
	Part    string
	Notices []string
}

// DocumentPath is a relative slash-separated path identifying one JSON
// document. The same string is appended to the API base URL to fetch the
// document and to the stub base directory to store it.
type DocumentPath struct {
	Path       string
	Kind       PathKind
	Regulation string
	Notice     string
	Layer      string
	CompareTo  string // second notice of a diff pair
}

// ValidatePart checks that a string is usable as a regulation part number
func ValidatePart(part string) error {
	part = strings.TrimSpace(part)
	if part == "" {
		return fmt.Errorf("regulation part is required")
	}
	if strings.ContainsAny(part, "/ \t") {
		return fmt.Errorf("invalid regulation part: %q", part)
	}
	return nil
}

// RegulationPaths enumerates every document path belonging to a regulation.
// The result is deterministic: regulation versions first, then notices, then
// each layer for each notice, then a diff for every ordered notice pair.
// Diff pairs include a notice against itself; regulations-core serves these
// identity diffs and the stub mirrors whatever the API serves.
func RegulationPaths(reg Regulation) []DocumentPath {
	paths := make([]DocumentPath, 0, pathCount(len(reg.Notices)))
	paths = append(paths, regulationVersionPaths(reg)...)
	paths = append(paths, noticePaths(reg)...)
	paths = append(paths, layerPaths(reg)...)
	paths = append(paths, diffPaths(reg)...)
	return paths
}

// pathCount returns the size of the enumerated set for n notices:
// n regulation versions + n notices + len(Layers)*n layers + n*n diffs.
func pathCount(n int) int {
	return n + n + len(Layers)*n + n*n
}

func regulationVersionPaths(reg Regulation) []DocumentPath {
	paths := make([]DocumentPath, 0, len(reg.Notices))
	for _, n := range reg.Notices {
		paths = append(paths, DocumentPath{
			Path:       path.Join("regulation", reg.Part, n),
			Kind:       PathKindRegulation,
			Regulation: reg.Part,
			Notice:     n,
		})
	}
	return paths
}

func noticePaths(reg Regulation) []DocumentPath {
	paths := make([]DocumentPath, 0, len(reg.Notices))
	for _, n := range reg.Notices {
		paths = append(paths, DocumentPath{
			Path:       path.Join("notice", n),
			Kind:       PathKindNotice,
			Regulation: reg.Part,
			Notice:     n,
		})
	}
	return paths
}

func layerPaths(reg Regulation) []DocumentPath {
	paths := make([]DocumentPath, 0, len(Layers)*len(reg.Notices))
	for _, layer := range Layers {
		for _, n := range reg.Notices {
			paths = append(paths, DocumentPath{
				Path:       path.Join("layer", layer, reg.Part, n),
				Kind:       PathKindLayer,
				Regulation: reg.Part,
				Notice:     n,
				Layer:      layer,
			})
		}
	}
	return paths
}

func diffPaths(reg Regulation) []DocumentPath {
	paths := make([]DocumentPath, 0, len(reg.Notices)*len(reg.Notices))
	for _, from := range reg.Notices {
		for _, to := range reg.Notices {
			paths = append(paths, DocumentPath{
				Path:       path.Join("diff", reg.Part, from, to),
				Kind:       PathKindDiff,
				Regulation: reg.Part,
				Notice:     from,
				CompareTo:  to,
			})
		}
	}
	return paths
}

// ParseDocumentPath classifies a relative path back into its collection and
// identifier fields. Paths that do not match any known collection layout get
// PathKindUnknown with only Path set.
func ParseDocumentPath(p string) DocumentPath {
	p = strings.Trim(path.Clean(strings.TrimSpace(p)), "/")
	dp := DocumentPath{Path: p}

	segments := strings.Split(p, "/")
	switch {
	case len(segments) == 3 && segments[0] == "regulation":
		dp.Kind = PathKindRegulation
		dp.Regulation = segments[1]
		dp.Notice = segments[2]
	case len(segments) == 2 && segments[0] == "notice":
		dp.Kind = PathKindNotice
		dp.Notice = segments[1]
	case len(segments) == 4 && segments[0] == "layer":
		dp.Kind = PathKindLayer
		dp.Layer = segments[1]
		dp.Regulation = segments[2]
		dp.Notice = segments[3]
	case len(segments) == 4 && segments[0] == "diff":
		dp.Kind = PathKindDiff
		dp.Regulation = segments[1]
		dp.Notice = segments[2]
		dp.CompareTo = segments[3]
	}
	return dp
}
