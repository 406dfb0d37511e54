package importer

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestPromote(t *testing.T) {
	drafts := []domain.CourseDraft{
		testutil.NewTestDraft("A"),
		testutil.NewTestDraft("B", testutil.WithoutCredits()),
	}
	drafts[1].Color = ""

	courses := Promote(drafts, sequentialIDs())
	require.Len(t, courses, 2)
	assert.Equal(t, "id-1", courses[0].ID)
	assert.Equal(t, "A", courses[0].Title)
	assert.Equal(t, "id-2", courses[1].ID)
	assert.Nil(t, courses[1].Credits)
	assert.Equal(t, domain.DefaultColor, courses[1].Color)
}

func TestPromote_DefaultIDsAreUUIDs(t *testing.T) {
	courses := Promote([]domain.CourseDraft{testutil.NewTestDraft("A"), testutil.NewTestDraft("B")}, nil)
	require.Len(t, courses, 2)
	for _, c := range courses {
		_, err := uuid.Parse(c.ID)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, courses[0].ID, courses[1].ID)
}

func TestPromote_CreditsAreCopied(t *testing.T) {
	drafts := []domain.CourseDraft{testutil.NewTestDraft("A", testutil.WithCredits(4))}
	courses := Promote(drafts, nil)

	*drafts[0].Credits = 99
	assert.Equal(t, 4, courses[0].CreditValue())
}

func TestAssignMissingIDs(t *testing.T) {
	in := []domain.Course{
		testutil.NewTestCourse("A", testutil.WithID("keep")),
		testutil.NewTestCourse("B", testutil.WithID("")),
	}
	in[1].Color = ""

	out := AssignMissingIDs(in, sequentialIDs())
	assert.Equal(t, "keep", out[0].ID)
	assert.Equal(t, "id-1", out[1].ID)
	assert.Equal(t, domain.DefaultColor, out[1].Color)
	assert.Equal(t, "", in[1].ID, "input must not be modified")
}
