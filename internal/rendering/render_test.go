package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-generator/internal/templates"
	"github.com/jonathan/resume-generator/internal/types"
)

func sampleRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		Name:  "Test Person",
		Title: "Software Engineer",
		Contact: types.Contact{
			Email:    "test@example.com",
			LinkedIn: "linkedin.com/in/test",
			Location: "Test City, TC",
			Phone:    "+1 234 567 8900",
			Website:  "test.com",
		},
		Summary: "A test summary for the resume.",
		Experience: []types.ExperienceEntry{
			{
				Company:   "Test Company",
				Title:     "Test Title",
				StartDate: "Jan 2020",
				EndDate:   "Present",
				Highlights: []types.Highlight{
					{Label: "Achievement:", Description: "Did something great"},
				},
			},
		},
		Skills:              []string{"Go", "Testing", "CI/CD"},
		Certifications:      []string{"Test Certification"},
		CertificationsTitle: "Certifications",
		Education: []types.EducationEntry{
			{School: "Test University", Degree: "BS, Computer Science", StartYear: "2015", EndYear: "2019"},
		},
	}
}

func renderStyle(t *testing.T, record *types.ResumeRecord, style string, hiddenText string) string {
	t.Helper()
	handle, err := templates.Resolve(style)
	require.NoError(t, err)
	markup, err := Render(record, handle, hiddenText)
	require.NoError(t, err)
	return markup
}

// docText extracts the full visible-plus-hidden text stream of markup.
func docText(t *testing.T, markup string) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc.Find("body").Text()
}

func TestRender_AllTemplatesContainRecordText(t *testing.T) {
	record := sampleRecord()
	for _, info := range templates.List() {
		markup := renderStyle(t, record, info.Name, "")
		text := docText(t, markup)

		assert.Contains(t, text, "Test Person", "template %s", info.Name)
		assert.Contains(t, text, "Software Engineer", "template %s", info.Name)
		assert.Contains(t, text, "test@example.com", "template %s", info.Name)
		assert.Contains(t, text, "A test summary for the resume.", "template %s", info.Name)
		assert.Contains(t, text, "Test University", "template %s", info.Name)
	}
}

func TestRender_MinimalRecordScenario(t *testing.T) {
	record := &types.ResumeRecord{
		Name:                "A",
		Title:               "B",
		Summary:             "S",
		Experience:          []types.ExperienceEntry{},
		Skills:              []string{"X"},
		Certifications:      []string{},
		CertificationsTitle: "Certifications",
		Education:           []types.EducationEntry{},
	}

	markup := renderStyle(t, record, "default", "")
	text := docText(t, markup)

	assert.Contains(t, text, "A")
	assert.Contains(t, text, "B")
	assert.Contains(t, text, "S")
	assert.Contains(t, text, "X")
	assert.NotContains(t, text, "Certifications")
}

func TestRender_EmptyCertificationsOmitsSection(t *testing.T) {
	record := sampleRecord()
	record.Certifications = []string{}

	for _, info := range templates.List() {
		markup := renderStyle(t, record, info.Name, "")
		text := docText(t, markup)
		assert.NotContains(t, text, "Certifications", "template %s", info.Name)
	}
}

func TestRender_NonEmptyCertificationsKeepsAllEntriesInOrder(t *testing.T) {
	record := sampleRecord()
	record.Certifications = []string{"Cert Zulu", "Cert Alpha", "Cert Mike"}
	record.CertificationsTitle = "Licenses"

	markup := renderStyle(t, record, "default", "")
	text := docText(t, markup)

	assert.Contains(t, text, "Licenses")
	zulu := strings.Index(text, "Cert Zulu")
	alpha := strings.Index(text, "Cert Alpha")
	mike := strings.Index(text, "Cert Mike")
	require.NotEqual(t, -1, zulu)
	require.NotEqual(t, -1, alpha)
	require.NotEqual(t, -1, mike)
	assert.Less(t, zulu, alpha)
	assert.Less(t, alpha, mike)
}

func TestRender_HighlightsPrecedenceOverDescription(t *testing.T) {
	record := sampleRecord()
	record.Experience = []types.ExperienceEntry{
		{
			Company:     "Test Company",
			Title:       "Test Title",
			StartDate:   "Jan 2020",
			EndDate:     "Present",
			Description: "THIS DESCRIPTION MUST NOT RENDER",
			Highlights: []types.Highlight{
				{Label: "", Description: "highlight one"},
				{Label: "Impact:", Description: "highlight two"},
			},
		},
	}

	for _, info := range templates.List() {
		markup := renderStyle(t, record, info.Name, "")
		text := docText(t, markup)

		assert.Contains(t, text, "highlight one", "template %s", info.Name)
		assert.Contains(t, text, "highlight two", "template %s", info.Name)
		assert.NotContains(t, text, "THIS DESCRIPTION MUST NOT RENDER", "template %s", info.Name)
	}
}

func TestRender_DescriptionUsedWithoutHighlights(t *testing.T) {
	record := sampleRecord()
	record.Experience = []types.ExperienceEntry{
		{
			Company:     "Test Company",
			Title:       "Test Title",
			StartDate:   "Jan 2020",
			EndDate:     "Present",
			Description: "Free-text role description.",
		},
	}

	markup := renderStyle(t, record, "default", "")
	assert.Contains(t, docText(t, markup), "Free-text role description.")
}

func TestRender_EmptyHighlightLabelOmitted(t *testing.T) {
	record := sampleRecord()
	record.Experience[0].Highlights = []types.Highlight{
		{Label: "", Description: "no label here"},
	}

	markup := renderStyle(t, record, "default", "")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)

	item := doc.Find("ul.highlights li").First()
	assert.Equal(t, 0, item.Find("strong").Length())
	assert.Contains(t, item.Text(), "no label here")
}

func TestRender_HighlightLabelRenderedBold(t *testing.T) {
	markup := renderStyle(t, sampleRecord(), "default", "")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)

	label := doc.Find("ul.highlights li strong").First()
	assert.Equal(t, "Achievement:", label.Text())
}

func TestRender_ContactFieldsOmittedWhenEmpty(t *testing.T) {
	record := sampleRecord()
	record.Contact = types.Contact{Email: "only@example.com"}

	markup := renderStyle(t, record, "default", "")
	text := docText(t, markup)

	assert.Contains(t, text, "only@example.com")
	assert.NotContains(t, text, "linkedin.com/in/test")
	assert.NotContains(t, text, "+1 234 567 8900")
}

func TestRender_SkillsPreserveInputOrder(t *testing.T) {
	record := sampleRecord()
	record.Skills = []string{"Zebra", "Apple", "Zebra"}

	markup := renderStyle(t, record, "default", "")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)

	var got []string
	doc.Find(".skills span").Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.Text())
	})
	assert.Equal(t, []string{"Zebra", "Apple", "Zebra"}, got)
}

func TestRender_HiddenTextPresentInAllTemplates(t *testing.T) {
	record := sampleRecord()
	for _, info := range templates.List() {
		markup := renderStyle(t, record, info.Name, "kw1 kw2")
		text := docText(t, markup)
		assert.Contains(t, text, "kw1 kw2", "template %s", info.Name)
	}
}

func TestRender_HiddenTextAbsentWhenEmpty(t *testing.T) {
	markup := renderStyle(t, sampleRecord(), "default", "")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find(".embedded-keywords").Length())
}

func TestRender_HiddenTextMarkupNeutralized(t *testing.T) {
	markup := renderStyle(t, sampleRecord(), "default", `</div><script>alert("x")</script>`)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Contains(t, doc.Find(".embedded-keywords").Text(), "alert")
}

func TestRender_Deterministic(t *testing.T) {
	record := sampleRecord()
	first := renderStyle(t, record, "modern", "kw1")
	second := renderStyle(t, record, "modern", "kw1")
	assert.Equal(t, first, second)
}

func TestRender_RecordNotMutated(t *testing.T) {
	record := sampleRecord()
	want := *record
	_ = renderStyle(t, record, "classic", "kw")
	assert.Equal(t, want.Name, record.Name)
	assert.Equal(t, want.CertificationsTitle, record.CertificationsTitle)
	assert.Len(t, record.Skills, len(want.Skills))
}

func TestRender_BadTemplateSourceFails(t *testing.T) {
	handle := &templates.Handle{Style: "default", Source: "{{.FieldThatDoesNotExist}}"}
	_, err := Render(sampleRecord(), handle, "")

	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Contains(t, re.Error(), "internal render error")
}
