package intelligence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFromPath(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "plan.PDF")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0o644))

	doc, err := DocumentFromPath(pdf)
	require.NoError(t, err)
	assert.Equal(t, "plan.PDF", doc.Name)
	assert.Equal(t, "application/pdf", doc.MediaType)
	assert.Equal(t, int64(8), doc.Size)
	assert.False(t, doc.IsImage())

	xls := filepath.Join(dir, "plan.xls")
	require.NoError(t, os.WriteFile(xls, nil, 0o644))
	_, err = DocumentFromPath(xls)
	assert.ErrorIs(t, err, ErrUnsupportedDocument)

	_, err = DocumentFromPath(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)
}

func TestStubExtractor_ReturnsFixedDrafts(t *testing.T) {
	var stages []Stage
	ex := NewStubExtractor(WithNotifier(NotifierFunc(func(s Stage) { stages = append(stages, s) })))

	drafts, err := ex.Extract(context.Background(), Document{Name: "plan.txt", MediaType: "text/plain"})
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assert.Equal(t, "Analyse de Données", drafts[0].Title)
	assert.Equal(t, 5, *drafts[1].Credits)

	pct := make([]int, len(stages))
	for i, s := range stages {
		pct[i] = s.Percent
	}
	assert.Equal(t, []int{20, 45, 70, 90, 100}, pct)
}

func TestStubExtractor_ImagesStartWithOCR(t *testing.T) {
	var stages []Stage
	ex := NewStubExtractor(WithNotifier(NotifierFunc(func(s Stage) { stages = append(stages, s) })))

	_, err := ex.Extract(context.Background(), Document{Name: "edt.png", MediaType: "image/png"})
	require.NoError(t, err)
	require.NotEmpty(t, stages)
	assert.Equal(t, StageOCR, stages[0].Label)
	assert.Equal(t, 15, stages[0].Percent)
	assert.Equal(t, 100, stages[len(stages)-1].Percent)
}

func TestStubExtractor_RejectsUnsupported(t *testing.T) {
	_, err := NewStubExtractor().Extract(context.Background(), Document{Name: "x.zip", MediaType: "application/zip"})
	assert.ErrorIs(t, err, ErrUnsupportedDocument)
}

func TestStubExtractor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ex := NewStubExtractor(WithStageDelay(time.Hour))
	_, err := ex.Extract(ctx, Document{MediaType: "application/pdf"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStubDrafts_AreIndependentCopies(t *testing.T) {
	a := StubDrafts()
	*a[0].Credits = 99
	assert.Equal(t, 4, *StubDrafts()[0].Credits)
}

func TestStubExtractor_ContextNotifierWins(t *testing.T) {
	var own, fromCtx int
	ex := NewStubExtractor(WithNotifier(NotifierFunc(func(Stage) { own++ })))

	ctx := WithProgress(context.Background(), NotifierFunc(func(Stage) { fromCtx++ }))
	_, err := ex.Extract(ctx, Document{MediaType: "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, 0, own)
	assert.Equal(t, 5, fromCtx)

	_, err = ex.Extract(WithProgress(context.Background(), nil), Document{MediaType: "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, 5, own)
}
