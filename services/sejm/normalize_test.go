package sejm

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFormatMPID(t *testing.T) {
	testCases := []struct {
		id       int
		expected string
	}{
		{7, "007"},
		{15, "015"},
		{241, "241"},
		{1, "001"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, FormatMPID(test.id))
	}
}

func TestNormalizeMPDefaults(t *testing.T) {
	got := normalizeMP(rawMP{
		ID:        7,
		FirstName: "Jan",
		LastName:  "Kowalski",
	})
	expected := MP{
		ID:            7,
		FirstName:     "Jan",
		LastName:      "Kowalski",
		FirstLastName: "Jan Kowalski",
		Club:          "Niezrzeszony",
		Active:        true,
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("normalized MP mismatch (-expected +got):\n%s", diff)
	}
}

func TestNormalizeMPActiveRule(t *testing.T) {
	truth := true
	falsity := false

	testCases := []struct {
		active   *bool
		expected bool
	}{
		{nil, true},
		{&truth, true},
		{&falsity, false},
	}

	for _, test := range testCases {
		mp := normalizeMP(rawMP{ID: 1, Active: test.active})
		require.Equal(t, test.expected, mp.Active)
	}
}

func TestNormalizeMPKeepsExplicitFields(t *testing.T) {
	mp := normalizeMP(rawMP{
		ID:            3,
		FirstLastName: "Maria Anna Nowak",
		Club:          "KO",
		Voivodeship:   "mazowieckie",
		Email:         "maria.nowak@sejm.gov.pl",
	})
	require.Equal(t, "Maria Anna Nowak", mp.FirstLastName)
	require.Equal(t, "KO", mp.Club)
	require.Equal(t, "mazowieckie", mp.Voivodeship)
	require.Equal(t, "maria.nowak@sejm.gov.pl", mp.Email)
}

func TestNormalizeInterpellationDefaults(t *testing.T) {
	in := Interpellation{Num: 12}
	normalizeInterpellation(&in)
	require.Equal(t, "Brak tytułu", in.Title)
	require.NotNil(t, in.From)
	require.NotNil(t, in.To)
}

func TestAgeFromBirthDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		birthDate string
		expected  int
		ok        bool
	}{
		{"1970-01-15", 54, true},
		{"1970-07-01", 53, true},
		{"1970-06-15", 54, true},
		{"1970-06-16", 53, true},
		{"", 0, false},
		{"not-a-date", 0, false},
	}

	for _, test := range testCases {
		age, ok := ageFromBirthDate(test.birthDate, now)
		require.Equal(t, test.ok, ok, "birthDate=%q", test.birthDate)
		require.Equal(t, test.expected, age, "birthDate=%q", test.birthDate)
	}
}
