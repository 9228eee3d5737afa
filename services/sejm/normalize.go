package sejm

import (
	"fmt"
	"strings"
	"time"
)

// defaults applied when upstream records omit optional fields
const (
	defaultClub  = "Niezrzeszony"
	defaultTitle = "Brak tytułu"
)

// FormatMPID renders an MP id in the zero-padded 3-digit form the
// list endpoints' `from` filter expects (15 -> "015").
func FormatMPID(id int) string {
	return fmt.Sprintf("%03d", id)
}

// rawMP mirrors the upstream MP record; Active is a pointer so that
// an omitted flag is distinguishable from an explicit false.
type rawMP struct {
	ID             int    `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	FirstLastName  string `json:"firstLastName"`
	Club           string `json:"club"`
	DistrictNum    int    `json:"districtNum"`
	DistrictName   string `json:"districtName"`
	Voivodeship    string `json:"voivodeship"`
	NumberOfVotes  int    `json:"numberOfVotes"`
	Email          string `json:"email"`
	Active         *bool  `json:"active"`
	BirthDate      string `json:"birthDate"`
	BirthLocation  string `json:"birthLocation"`
	Profession     string `json:"profession"`
	EducationLevel string `json:"educationLevel"`
	InactiveCause  string `json:"inactiveCause"`
}

func normalizeMP(raw rawMP) MP {
	mp := MP{
		ID:             raw.ID,
		FirstName:      raw.FirstName,
		LastName:       raw.LastName,
		FirstLastName:  raw.FirstLastName,
		Club:           raw.Club,
		DistrictNum:    raw.DistrictNum,
		DistrictName:   raw.DistrictName,
		Voivodeship:    raw.Voivodeship,
		NumberOfVotes:  raw.NumberOfVotes,
		Email:          raw.Email,
		BirthDate:      raw.BirthDate,
		BirthLocation:  raw.BirthLocation,
		Profession:     raw.Profession,
		EducationLevel: raw.EducationLevel,
		InactiveCause:  raw.InactiveCause,
	}
	if mp.Club == "" {
		mp.Club = defaultClub
	}
	if mp.FirstLastName == "" {
		mp.FirstLastName = strings.TrimSpace(raw.FirstName + " " + raw.LastName)
	}
	// active unless explicitly marked inactive
	mp.Active = raw.Active == nil || *raw.Active
	return mp
}

func normalizeInterpellation(in *Interpellation) {
	if in.Title == "" {
		in.Title = defaultTitle
	}
	if in.From == nil {
		in.From = []string{}
	}
	if in.To == nil {
		in.To = []string{}
	}
}

func normalizeWrittenQuestion(q *WrittenQuestion) {
	if q.Title == "" {
		q.Title = defaultTitle
	}
}

// ageFromBirthDate derives an age from an upstream "2006-01-02" date.
func ageFromBirthDate(birthDate string, now time.Time) (int, bool) {
	if birthDate == "" {
		return 0, false
	}
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0, false
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age, true
}
