package intelligence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/eduplan/internal/domain"
)

// ErrUnsupportedDocument indicates a document whose media type the
// extractor does not accept.
var ErrUnsupportedDocument = errors.New("unsupported document type")

// supportedMediaTypes maps accepted file extensions to their media type.
var supportedMediaTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// Document describes an uploaded course plan.
type Document struct {
	Name      string
	MediaType string
	Size      int64
}

// IsImage reports whether the document needs the OCR stage.
func (d Document) IsImage() bool {
	return strings.HasPrefix(d.MediaType, "image/")
}

// Supported reports whether the media type is one the extractor accepts.
func (d Document) Supported() bool {
	for _, mt := range supportedMediaTypes {
		if mt == d.MediaType {
			return true
		}
	}
	return false
}

// DocumentFromPath builds a Document from a file on disk, deriving the media
// type from its extension.
func DocumentFromPath(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, err
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("%s is a directory", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	mt, ok := supportedMediaTypes[ext]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q (use PDF, Word, TXT, PNG or JPG)", ErrUnsupportedDocument, ext)
	}
	return Document{Name: filepath.Base(path), MediaType: mt, Size: info.Size()}, nil
}

// Stage is one step of the staged extraction progress.
type Stage struct {
	Label   string
	Percent int
}

// ProgressNotifier receives extraction progress. Implementations must not
// block for long; they run on the extraction goroutine.
type ProgressNotifier interface {
	Stage(s Stage)
}

// NotifierFunc adapts a function to ProgressNotifier.
type NotifierFunc func(Stage)

func (f NotifierFunc) Stage(s Stage) { f(s) }

type noopNotifier struct{}

func (noopNotifier) Stage(Stage) {}

type notifierKey struct{}

// WithProgress returns a context carrying n. Extractors report to it in
// preference to their own notifier.
func WithProgress(ctx context.Context, n ProgressNotifier) context.Context {
	if n == nil {
		return ctx
	}
	return context.WithValue(ctx, notifierKey{}, n)
}

// ProgressFromContext returns the notifier set by WithProgress, or fallback.
func ProgressFromContext(ctx context.Context, fallback ProgressNotifier) ProgressNotifier {
	if n, ok := ctx.Value(notifierKey{}).(ProgressNotifier); ok {
		return n
	}
	return fallback
}

// Extractor turns a course-plan document into course drafts awaiting review.
type Extractor interface {
	Extract(ctx context.Context, doc Document) ([]domain.CourseDraft, error)
}

const (
	StageOCR      = "OCR - Reconnaissance de texte"
	StageRead     = "Lecture du document"
	StageExtract  = "Extraction des informations"
	StageIdentify = "Identification des cours"
	StageOrganize = "Organisation des horaires"
	StageDone     = "Analyse terminée"
)

// StagesFor returns the progress sequence reported for doc.
func StagesFor(doc Document) []Stage {
	if doc.IsImage() {
		return []Stage{
			{StageOCR, 15},
			{StageRead, 15},
			{StageExtract, 35},
			{StageIdentify, 60},
			{StageOrganize, 85},
			{StageDone, 100},
		}
	}
	return []Stage{
		{StageRead, 20},
		{StageExtract, 45},
		{StageIdentify, 70},
		{StageOrganize, 90},
		{StageDone, 100},
	}
}

// StubExtractor simulates document analysis. It walks the staged progress
// sequence and returns a fixed set of drafts whatever the document contains.
type StubExtractor struct {
	notifier   ProgressNotifier
	stageDelay time.Duration
}

// StubOption configures a StubExtractor.
type StubOption func(*StubExtractor)

// WithNotifier sets the receiver of stage updates.
func WithNotifier(n ProgressNotifier) StubOption {
	return func(s *StubExtractor) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithStageDelay sets the simulated latency before each stage.
func WithStageDelay(d time.Duration) StubOption {
	return func(s *StubExtractor) {
		s.stageDelay = d
	}
}

// NewStubExtractor returns a stub with no delay and no progress receiver.
func NewStubExtractor(opts ...StubOption) *StubExtractor {
	s := &StubExtractor{notifier: noopNotifier{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StubExtractor) Extract(ctx context.Context, doc Document) ([]domain.CourseDraft, error) {
	if !doc.Supported() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDocument, doc.MediaType)
	}
	notifier := ProgressFromContext(ctx, s.notifier)
	for _, st := range StagesFor(doc) {
		if err := wait(ctx, s.stageDelay); err != nil {
			return nil, err
		}
		notifier.Stage(st)
	}
	return StubDrafts(), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// StubDrafts is the fixed extraction result.
func StubDrafts() []domain.CourseDraft {
	return []domain.CourseDraft{
		{
			Title:       "Analyse de Données",
			Professor:   "Prof. Lefebvre",
			Location:    "Salle C105",
			StartTime:   "09:00",
			EndTime:     "11:00",
			DayOfWeek:   2,
			Color:       "#3b82f6",
			Description: "Extrait du plan de cours - Statistiques et visualisation",
			Credits:     domain.IntPtr(4),
		},
		{
			Title:       "Intelligence Artificielle",
			Professor:   "Dr. Zhang",
			Location:    "Lab IA B301",
			StartTime:   "14:00",
			EndTime:     "17:00",
			DayOfWeek:   3,
			Color:       "#8b5cf6",
			Description: "Extrait du plan de cours - Machine Learning et réseaux neuronaux",
			Credits:     domain.IntPtr(5),
		},
		{
			Title:       "Gestion de Projet",
			Professor:   "Mme. Moreau",
			Location:    "Salle D202",
			StartTime:   "10:00",
			EndTime:     "12:00",
			DayOfWeek:   4,
			Color:       "#10b981",
			Description: "Extrait du plan de cours - Méthodes agiles et Scrum",
			Credits:     domain.IntPtr(3),
		},
	}
}
