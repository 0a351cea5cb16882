package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-docx/internal/layout"
	"github.com/jonathan/resume-docx/internal/rendering"
	"github.com/jonathan/resume-docx/internal/types"
)

const scenarioA = `<html><body><div class="a4-page">
<div class="name-header">Jane Doe</div>
<div class="contact-info">jane@x.com</div>
<div class="section-title">Experience</div>
<ul class="ul-section">
  <li><span class="dot"></span><b>Acme Corp</b> – Staff Engineer<span class="right-span">2020–2023</span></li>
</ul>
</div></body></html>`

func documentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			defer func() { _ = rc.Close() }()
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(content)
		}
	}
	t.Fatal("word/document.xml not found")
	return ""
}

func TestConvert_ScenarioA(t *testing.T) {
	result, err := Convert(context.Background(), scenarioA, nil)
	require.NoError(t, err)

	metrics := types.DefaultStyleMetrics()
	base := metrics.BodyFontSize()
	paras := result.Layout.Paragraphs
	require.Len(t, paras, 5)

	name := paras[0]
	assert.Equal(t, layout.AlignCenter, name.Alignment)
	assert.Equal(t, []layout.Run{{Text: "Jane Doe", SizePt: metrics.NameFontSize(), Bold: true}}, name.Runs)

	contact := paras[1]
	assert.Equal(t, layout.AlignCenter, contact.Alignment)
	assert.Equal(t, []layout.Run{{Text: "jane@x.com", SizePt: metrics.ContactFontSize()}}, contact.Runs)

	assert.Empty(t, paras[2].Runs)

	title := paras[3]
	require.NotNil(t, title.BottomBorder)
	assert.Equal(t, []layout.Run{{Text: "Experience", SizePt: metrics.TitleFontSize(), Bold: true}}, title.Runs)

	item := paras[4]
	assert.Equal(t, 0.3, item.LeftIndentInches)
	assert.Equal(t, []layout.Run{
		{Text: "• ", SizePt: base},
		{Text: "Acme Corp", SizePt: base, Bold: true},
		{Text: "– Staff Engineer", SizePt: base},
		{Text: "\t2020–2023", SizePt: base},
	}, item.Runs)
	assert.Equal(t, []layout.TabStop{{PositionInches: 6.0, Alignment: layout.TabRight}}, item.TabStops)

	xmlDoc := documentXML(t, result.DOCX)
	assert.Contains(t, xmlDoc, `<w:tab w:val="right" w:pos="8640">`)
	assert.Contains(t, xmlDoc, `<w:bottom w:val="single" w:sz="6" w:space="1" w:color="000000">`)
	assert.Contains(t, xmlDoc, "2020–2023")
	assert.Empty(t, result.OutputPath)
}

func TestConvert_ScenarioB(t *testing.T) {
	result, err := Convert(context.Background(),
		`<style>.a4-page{font-size:10.5pt;line-height:1.6}</style><div class="name-header">X</div>`, nil)
	require.NoError(t, err)

	assert.Equal(t, types.StyleMetrics{BaseFontSizePt: 10.5, LineHeightMultiplier: 1.6}, result.Resume.Metrics)
	assert.Equal(t, result.Resume.Metrics, result.Layout.Metrics)
	assert.InDelta(t, 10.5*2.38, result.Layout.Paragraphs[0].Runs[0].SizePt, 1e-9)
}

func TestConvert_ScenarioC(t *testing.T) {
	html := `<div class="section-title">One</div><ul class="ul-section"><li>a</li></ul>
		<div class="section-title">Two</div><ul class="ul-section"><li>b</li></ul>`

	result, err := Convert(context.Background(), html, nil)
	require.NoError(t, err)

	// header separator, One, a, separator, Two, b
	paras := result.Layout.Paragraphs
	require.Len(t, paras, 6)
	assert.Empty(t, paras[3].Runs)
	assert.Equal(t, 8.0, paras[3].SpaceAfterPt)
	assert.Equal(t, "b", paras[5].Text())
}

func TestConvert_ScenarioD(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\r\n"} {
		called := false
		opts := &Options{OnProgress: func(ProgressEvent) { called = true }}

		result, err := Convert(context.Background(), input, opts)

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyInput))
		var inputErr *InputError
		assert.True(t, errors.As(err, &inputErr))
		assert.False(t, called, "no work may start for input %q", input)
	}
}

func TestConvert_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Convert(ctx, scenarioA, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvert_PartialMarkup(t *testing.T) {
	result, err := Convert(context.Background(), `<div class="section-title">Skills<ul><li>unclosed`, nil)
	require.NoError(t, err)
	require.Len(t, result.Resume.Sections, 1)
	assert.NotEmpty(t, result.DOCX)
}

func TestConvert_ProgressEvents(t *testing.T) {
	var steps []string
	opts := &Options{OnProgress: func(e ProgressEvent) { steps = append(steps, e.Step) }}

	_, err := ConvertToFile(context.Background(), scenarioA, filepath.Join(t.TempDir(), "out.docx"), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{StepParse, StepLayout, StepRender, StepSave}, steps)
}

func TestConvertToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "resume.docx")

	result, err := ConvertToFile(context.Background(), scenarioA, path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, result.OutputPath)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, result.DOCX, written)
	assert.True(t, strings.Contains(documentXML(t, written), "Jane Doe"))
}

func TestConvertToFile_EmissionFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := ConvertToFile(context.Background(), scenarioA, filepath.Join(blocker, "out.docx"), nil)
	require.Error(t, err)

	var emissionErr *rendering.EmissionError
	assert.True(t, errors.As(err, &emissionErr))
	var inputErr *InputError
	assert.False(t, errors.As(err, &inputErr))
}

func TestConvertToFile_EmptyInputWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.docx")

	_, err := ConvertToFile(context.Background(), " ", path, nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
